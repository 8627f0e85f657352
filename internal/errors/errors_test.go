package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreError(t *testing.T) {
	t.Run("constructors", func(t *testing.T) {
		tests := []struct {
			name     string
			err      *StoreError
			wantCode ErrorCode
			wantMsg  string
		}{
			{"MissingArgument", MissingArgument(), ErrCodeInvalidArgument, "undefined passed as argument to store"},
			{"MissingID", MissingID(), ErrCodeInvalidArgument, "undefined id on member passed as argument to store"},
			{"InvalidArgument", InvalidArgument("invalid credentials"), ErrCodeInvalidArgument, "invalid credentials"},
			{"AlreadyExists", AlreadyExists(int64(1)), ErrCodeAlreadyExists, "1 already exists"},
			{"NotFound", NotFound(int64(42)), ErrCodeNotFound, "42 does not exist"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.Equal(t, tt.wantCode, tt.err.Code())
				assert.Equal(t, tt.wantMsg, tt.err.Error())
			})
		}
	})

	t.Run("Is matches by code", func(t *testing.T) {
		assert.ErrorIs(t, AlreadyExists(1), ErrAlreadyExists)
		assert.ErrorIs(t, NotFound(1), ErrNotFound)
		assert.ErrorIs(t, MissingID(), ErrInvalidArgument)
		assert.NotErrorIs(t, NotFound(1), ErrAlreadyExists)
		assert.NotErrorIs(t, stderrors.New("other"), ErrNotFound)
	})

	t.Run("Is through wrapping", func(t *testing.T) {
		err := fmt.Errorf("putting member: %w", AlreadyExists(3))
		assert.ErrorIs(t, err, ErrAlreadyExists)
		assert.Equal(t, ErrCodeAlreadyExists, CodeOf(err))
	})

	t.Run("Wrap", func(t *testing.T) {
		cause := stderrors.New("boom")
		err := InvalidArgument("bad seed").Wrap(cause)
		assert.Equal(t, "bad seed: boom", err.Error())
		require.ErrorIs(t, err, cause)
		assert.Equal(t, cause, err.Unwrap())
	})

	t.Run("details", func(t *testing.T) {
		err := NotFound(int64(7))
		assert.Equal(t, int64(7), err.Details()["id"])
	})

	t.Run("sentinels stay unchanged", func(t *testing.T) {
		withDetail := ErrNotFound.WithDetail("id", int64(9))
		wrapped := ErrInvalidArgument.Wrap(stderrors.New("boom"))
		assert.NotSame(t, ErrNotFound, withDetail)
		assert.Equal(t, int64(9), withDetail.Details()["id"])
		assert.Empty(t, ErrNotFound.Details())
		assert.Equal(t, "invalid argument: boom", wrapped.Error())
		assert.Equal(t, "invalid argument", ErrInvalidArgument.Error())
		assert.NoError(t, ErrInvalidArgument.Unwrap())
	})

	t.Run("WithDetail keeps earlier details", func(t *testing.T) {
		base := NotFound(int64(7))
		err := base.WithDetail("op", "update")
		assert.Equal(t, map[string]any{"id": int64(7), "op": "update"}, err.Details())
		assert.Equal(t, map[string]any{"id": int64(7)}, base.Details())
	})

	t.Run("CodeOf plain error", func(t *testing.T) {
		assert.Equal(t, ErrorCode(""), CodeOf(stderrors.New("x")))
		assert.Equal(t, ErrorCode(""), CodeOf(nil))
	})
}
