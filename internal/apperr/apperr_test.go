package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Kind
		want string
	}{
		{KindNotFound, "not_found"},
		{KindInvalidArgument, "invalid_argument"},
		{KindUnauthorized, "unauthorized"},
		{KindConflict, "conflict"},
		{KindUnsupported, "unsupported"},
		{KindTimeout, "timeout"},
		{KindInternal, "internal"},
		{Kind(99), "internal"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.kind.String())
		})
	}
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{
			name: "tagged error returns its kind",
			err:  NotFound("stock not found"),
			want: KindNotFound,
		},
		{
			name: "wrapped tagged error is unwrapped",
			err:  fmt.Errorf("listing portfolio: %w", Conflict("duplicate")),
			want: KindConflict,
		},
		{
			name: "plain error is internal",
			err:  errors.New("database connection failed"),
			want: KindInternal,
		},
		{
			name: "tagged error wrapping a cause keeps its own kind",
			err:  Wrap(KindTimeout, "store timed out", errors.New("deadline exceeded")),
			want: KindTimeout,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestIsKind(t *testing.T) {
	t.Parallel()

	assert.True(t, IsKind(NotFound("x"), KindNotFound))
	assert.False(t, IsKind(NotFound("x"), KindConflict))
	assert.False(t, IsKind(nil, KindInternal), "nil error has no kind")
}

func TestError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("row lock timeout")
	err := Wrap(KindTimeout, "store timed out", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "timeout")
	assert.Contains(t, err.Error(), "store timed out")
	assert.Contains(t, err.Error(), "row lock timeout")
}

func TestError_Message(t *testing.T) {
	t.Parallel()

	err := InvalidArgument("username cannot be empty")
	assert.Equal(t, "invalid_argument: username cannot be empty", err.Error())
}
