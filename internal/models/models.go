// Package models defines the core data structures used throughout the application.
package models

import (
	"fmt"
	"maps"
	"strings"

	"github.com/invopop/jsonschema"
	"golang.org/x/crypto/bcrypt"
)

// Member is a stored record keyed by ID.
//
// A zero ID is treated as absent.
type Member struct {
	ID         int64             `json:"id" yaml:"id" jsonschema:"description=Unique member identifier; must be non-zero"`
	Password   string            `json:"password,omitempty" yaml:"password,omitempty" jsonschema:"description=Credential; either plain text or a bcrypt hash"`
	Attributes map[string]string `json:"attributes,omitempty" yaml:"attributes,omitempty" jsonschema:"description=Arbitrary additional fields"`
}

// Clone returns a copy of the Member.
//
// The Attributes map is copied too, so the clone shares no mutable state
// with the original.
func (m *Member) Clone() *Member {
	c := *m
	if m.Attributes != nil {
		c.Attributes = maps.Clone(m.Attributes)
	}
	return &c
}

// GetID returns the Member's ID.
func (m *Member) GetID() int64 {
	return m.ID
}

// String returns a short representation that never includes the password.
func (m *Member) String() string {
	if len(m.Attributes) == 0 {
		return fmt.Sprintf("member %d", m.ID)
	}
	return fmt.Sprintf("member %d %v", m.ID, m.Attributes)
}

// HasPasswordHash reports whether the stored password is a bcrypt hash.
func (m *Member) HasPasswordHash() bool {
	return IsPasswordHash(m.Password)
}

// IsPasswordHash reports whether s looks like a bcrypt hash.
func IsPasswordHash(s string) bool {
	for _, p := range []string{"$2a$", "$2b$", "$2y$"} {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// HashPassword returns a bcrypt hash of password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Schema returns the JSON Schema of a Member as found in seed files.
func Schema() *jsonschema.Schema {
	r := jsonschema.Reflector{Anonymous: true, DoNotReference: true}
	return r.Reflect(&Member{})
}
