package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maruel/memberstore/internal/errors"
	"github.com/maruel/memberstore/internal/models"
)

func TestAuthenticate(t *testing.T) {
	hash, err := models.HashPassword("hunter2")
	require.NoError(t, err)

	s := NewMemberStore()
	require.NoError(t, s.SetMembers([]*models.Member{
		{ID: 1, Password: "123"},
		{ID: 2, Password: hash},
	}))

	tests := []struct {
		name     string
		id       int64
		password string
		wantCode errors.ErrorCode
	}{
		{"plain match", 1, "123", ""},
		{"plain mismatch", 1, "1234", errors.ErrCodeInvalidArgument},
		{"bcrypt match", 2, "hunter2", ""},
		{"bcrypt mismatch", 2, "hunter3", errors.ErrCodeInvalidArgument},
		{"hash is not a password", 2, hash, errors.ErrCodeInvalidArgument},
		{"unknown member", 3, "x", errors.ErrCodeNotFound},
		{"zero id", 0, "x", errors.ErrCodeInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Authenticate(s, tt.id, tt.password)
			if tt.wantCode == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.id, m.ID)
				return
			}
			require.Error(t, err)
			assert.Nil(t, m)
			assert.Equal(t, tt.wantCode, errors.CodeOf(err))
		})
	}
}
