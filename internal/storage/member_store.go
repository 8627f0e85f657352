// Package storage holds the in-memory member store.
package storage

import (
	"iter"

	"github.com/maruel/memberstore/internal/errors"
	"github.com/maruel/memberstore/internal/jsonldb"
	"github.com/maruel/memberstore/internal/models"
)

// Lookup is the result of MemberStore.Member.
type Lookup struct {
	Found  bool
	Member *models.Member
}

// MemberStore holds an ordered sequence of members.
//
// Construct one with NewMemberStore and share the pointer. Every member
// crossing the API is a copy; callers never reach the stored records.
// It is safe for concurrent use.
type MemberStore struct {
	table *jsonldb.Table[int64, *models.Member]
}

// NewMemberStore returns an empty store.
func NewMemberStore() *MemberStore {
	return &MemberStore{table: jsonldb.NewTable[int64, *models.Member]()}
}

// SetMembers replaces the whole content of the store with copies of members.
//
// Duplicate ids are kept as given. Nil members and members without an id are
// rejected, in which case the store is left unchanged.
func (s *MemberStore) SetMembers(members []*models.Member) error {
	for _, m := range members {
		if err := validate(m); err != nil {
			return err
		}
	}
	s.table.Replace(members)
	return nil
}

// Members returns copies of all members in insertion order.
func (s *MemberStore) Members() []*models.Member {
	return s.table.Rows()
}

// All iterates over copies of the members in insertion order.
//
// The store is read-locked while iterating; do not modify it from within the
// loop.
func (s *MemberStore) All() iter.Seq[*models.Member] {
	return s.table.All()
}

// Len returns the number of stored members.
func (s *MemberStore) Len() int {
	return s.table.Len()
}

// Member looks a member up by id.
//
// Found is true only if exactly one member has this id.
func (s *MemberStore) Member(id int64) (Lookup, error) {
	if id == 0 {
		return Lookup{}, errors.MissingArgument()
	}
	m, ok := s.table.Get(id)
	if !ok {
		return Lookup{}, nil
	}
	return Lookup{Found: true, Member: m}, nil
}

// PutMember appends a copy of m.
func (s *MemberStore) PutMember(m *models.Member) error {
	if err := validate(m); err != nil {
		return err
	}
	if !s.table.Insert(m) {
		return errors.AlreadyExists(m.ID)
	}
	return nil
}

// UpdateMember replaces the stored member having m's id with a copy of m,
// keeping its position.
func (s *MemberStore) UpdateMember(m *models.Member) error {
	if err := validate(m); err != nil {
		return err
	}
	if !s.table.Update(m) {
		return errors.NotFound(m.ID)
	}
	return nil
}

func validate(m *models.Member) error {
	if m == nil {
		return errors.MissingArgument()
	}
	if m.ID == 0 {
		return errors.MissingID()
	}
	return nil
}
