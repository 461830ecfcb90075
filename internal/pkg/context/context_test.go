package context

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRequestID(t *testing.T) {
	t.Run("keeps provided ID", func(t *testing.T) {
		ctx := WithRequestID(context.Background(), "req-42")
		assert.Equal(t, "req-42", GetRequestID(ctx))
	})

	t.Run("mints ID for queue-originated work", func(t *testing.T) {
		ctx := WithRequestID(context.Background(), "")

		id := GetRequestID(ctx)
		require.NotEmpty(t, id)
		_, err := uuid.Parse(id)
		assert.NoError(t, err, "minted request ID must be a UUID")
	})

	t.Run("mints distinct IDs per delivery", func(t *testing.T) {
		first := GetRequestID(WithRequestID(context.Background(), ""))
		second := GetRequestID(WithRequestID(context.Background(), ""))
		assert.NotEqual(t, first, second)
	})
}

func TestGetRequestID_Unset(t *testing.T) {
	assert.Empty(t, GetRequestID(context.Background()))
}
