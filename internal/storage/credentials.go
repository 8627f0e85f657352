package storage

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"github.com/maruel/memberstore/internal/errors"
	"github.com/maruel/memberstore/internal/models"
)

// Authenticate returns the member with id if password matches its stored
// password.
//
// Stored bcrypt hashes are verified with bcrypt; anything else is compared
// as plain text in constant time.
func Authenticate(s *MemberStore, id int64, password string) (*models.Member, error) {
	res, err := s.Member(id)
	if err != nil {
		return nil, err
	}
	if !res.Found {
		return nil, errors.NotFound(id)
	}
	m := res.Member
	if m.HasPasswordHash() {
		if err := bcrypt.CompareHashAndPassword([]byte(m.Password), []byte(password)); err != nil {
			return nil, errors.InvalidArgument("invalid credentials")
		}
		return m, nil
	}
	if subtle.ConstantTimeCompare([]byte(m.Password), []byte(password)) != 1 {
		return nil, errors.InvalidArgument("invalid credentials")
	}
	return m, nil
}
