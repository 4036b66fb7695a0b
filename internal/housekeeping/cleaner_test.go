//go:build unit

package housekeeping_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"laborlink/internal/housekeeping"
	"laborlink/internal/pkg/clock"
	"laborlink/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePurger struct {
	calls int
}

func (f *fakePurger) DeleteReadOlderThan(context.Context, time.Time) (int64, error) {
	f.calls++
	return 0, nil
}

func newCleaner(cfg config.HousekeepingConfig) (*housekeeping.Cleaner, *fakePurger) {
	purger := &fakePurger{}
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 3, 0, 0, 0, time.UTC))
	return housekeeping.NewCleaner(purger, cfg, clk, slog.New(slog.NewTextHandler(io.Discard, nil))), purger
}

func TestCleaner(t *testing.T) {
	t.Run("disabled config never schedules", func(t *testing.T) {
		cleaner, purger := newCleaner(config.HousekeepingConfig{Enabled: false})
		require.NoError(t, cleaner.Start())
		cleaner.Stop()
		assert.Equal(t, 0, purger.calls)
	})

	t.Run("valid schedule starts and stops cleanly", func(t *testing.T) {
		cleaner, _ := newCleaner(config.HousekeepingConfig{
			Enabled:       true,
			Schedule:      "0 3 * * *",
			RetentionDays: 30,
		})
		require.NoError(t, cleaner.Start())
		cleaner.Stop()
	})

	t.Run("invalid schedule fails fast", func(t *testing.T) {
		cleaner, _ := newCleaner(config.HousekeepingConfig{
			Enabled:  true,
			Schedule: "not a cron expression",
		})
		require.Error(t, cleaner.Start())
	})
}
