//go:build unit

package delivery_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"laborlink/internal/delivery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastPolicy() delivery.BackoffPolicy {
	return delivery.BackoffPolicy{
		MaxAttempts: 3,
		BaseDelay:   time.Millisecond,
	}
}

func TestRetry(t *testing.T) {
	ctx := context.Background()
	transient := errors.New("connection reset")

	t.Run("first attempt succeeds", func(t *testing.T) {
		calls := 0
		attempts, err := delivery.Retry(ctx, fastPolicy(), func(context.Context) error {
			calls++
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, attempts)
		assert.Equal(t, 1, calls)
	})

	t.Run("succeeds on the final attempt", func(t *testing.T) {
		calls := 0
		attempts, err := delivery.Retry(ctx, fastPolicy(), func(context.Context) error {
			calls++
			if calls < 3 {
				return transient
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, attempts)
		assert.Equal(t, 3, calls)
	})

	t.Run("exhausts the attempt budget", func(t *testing.T) {
		calls := 0
		attempts, err := delivery.Retry(ctx, fastPolicy(), func(context.Context) error {
			calls++
			return transient
		})
		require.ErrorIs(t, err, transient)
		assert.Equal(t, 3, attempts)
		assert.Equal(t, 3, calls)
	})

	t.Run("permanent error short-circuits", func(t *testing.T) {
		calls := 0
		attempts, err := delivery.Retry(ctx, fastPolicy(), func(context.Context) error {
			calls++
			return delivery.Permanent(errors.New("invalid recipient"))
		})
		require.Error(t, err)
		assert.True(t, delivery.IsPermanent(err))
		assert.Equal(t, 1, attempts)
		assert.Equal(t, 1, calls)
	})

	t.Run("zero max attempts still runs once", func(t *testing.T) {
		policy := delivery.BackoffPolicy{}
		calls := 0
		attempts, err := delivery.Retry(ctx, policy, func(context.Context) error {
			calls++
			return transient
		})
		require.ErrorIs(t, err, transient)
		assert.Equal(t, 1, attempts)
		assert.Equal(t, 1, calls)
	})

	t.Run("cancelled context stops the loop between attempts", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		calls := 0
		_, err := delivery.Retry(cancelled, fastPolicy(), func(context.Context) error {
			calls++
			return transient
		})
		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	})
}

func TestPermanent(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, delivery.Permanent(nil))
	})

	t.Run("wrapping preserves the cause", func(t *testing.T) {
		cause := errors.New("rejected")
		err := delivery.Permanent(cause)
		require.ErrorIs(t, err, cause)
		assert.True(t, delivery.IsPermanent(err))
	})

	t.Run("plain error is not permanent", func(t *testing.T) {
		assert.False(t, delivery.IsPermanent(errors.New("timeout")))
	})
}
