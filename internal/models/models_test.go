package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestMember(t *testing.T) {
	t.Run("Clone", func(t *testing.T) {
		t.Run("copies fields", func(t *testing.T) {
			original := &Member{ID: 1, Password: "123", Attributes: map[string]string{"role": "admin"}}
			clone := original.Clone()
			assert.Equal(t, original, clone)
			assert.NotSame(t, original, clone)
		})

		t.Run("attributes are independent", func(t *testing.T) {
			original := &Member{ID: 1, Attributes: map[string]string{"role": "admin"}}
			clone := original.Clone()
			clone.Attributes["role"] = "viewer"
			clone.Attributes["new"] = "x"
			assert.Equal(t, map[string]string{"role": "admin"}, original.Attributes)
		})

		t.Run("nil attributes stay nil", func(t *testing.T) {
			clone := (&Member{ID: 2}).Clone()
			assert.Nil(t, clone.Attributes)
		})
	})

	t.Run("GetID", func(t *testing.T) {
		assert.Equal(t, int64(9), (&Member{ID: 9}).GetID())
	})

	t.Run("String hides password", func(t *testing.T) {
		m := &Member{ID: 3, Password: "secret"}
		assert.Equal(t, "member 3", m.String())
		assert.NotContains(t, m.String(), "secret")
	})
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	assert.True(t, IsPasswordHash(hash))
	assert.True(t, (&Member{Password: hash}).HasPasswordHash())
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("hunter2")))

	tests := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"123", false},
		{"$2a$10$abc", true},
		{"$2b$12$abc", true},
		{"$2y$04$abc", true},
		{"$1$md5", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPasswordHash(tt.in))
		})
	}
}

func TestSchema(t *testing.T) {
	s := Schema()
	require.NotNil(t, s)
	assert.Equal(t, "object", s.Type)
	assert.Contains(t, s.Required, "id")
	assert.NotContains(t, s.Required, "password")

	id, ok := s.Properties.Get("id")
	require.True(t, ok)
	assert.Equal(t, "integer", id.Type)
	assert.Contains(t, id.Description, "identifier")

	_, ok = s.Properties.Get("attributes")
	assert.True(t, ok)
}
