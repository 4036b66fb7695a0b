// Package housekeeping runs periodic retention jobs outside the matching and
// delivery core.
package housekeeping

import (
	"context"
	"log/slog"
	"time"

	"laborlink/internal/pkg/clock"
	"laborlink/internal/pkg/config"

	"github.com/robfig/cron/v3"
)

type NotificationPurger interface {
	DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// Cleaner deletes read notifications older than the retention window on a
// cron schedule.
type Cleaner struct {
	purger NotificationPurger
	cfg    config.HousekeepingConfig
	clock  clock.Clock
	cron   *cron.Cron
	logger *slog.Logger
}

func NewCleaner(purger NotificationPurger, cfg config.HousekeepingConfig, clk clock.Clock, logger *slog.Logger) *Cleaner {
	return &Cleaner{
		purger: purger,
		cfg:    cfg,
		clock:  clk,
		cron:   cron.New(),
		logger: logger,
	}
}

func (c *Cleaner) Start() error {
	if !c.cfg.Enabled {
		c.logger.Info("notification housekeeping disabled")
		return nil
	}

	_, err := c.cron.AddFunc(c.cfg.Schedule, c.runOnce)
	if err != nil {
		return err
	}

	c.cron.Start()
	c.logger.Info("notification housekeeping scheduled", "schedule", c.cfg.Schedule, "retention_days", c.cfg.RetentionDays)
	return nil
}

func (c *Cleaner) Stop() {
	ctx := c.cron.Stop()
	<-ctx.Done()
}

func (c *Cleaner) runOnce() {
	cutoff := c.clock.Now().AddDate(0, 0, -c.cfg.RetentionDays)

	count, err := c.purger.DeleteReadOlderThan(context.Background(), cutoff)
	if err != nil {
		c.logger.Error("notification cleanup failed", "error", err)
		return
	}

	c.logger.Info("cleaned up old notifications", "count", count, "cutoff", cutoff)
}
