package components

import (
	"laborlink/internal/pkg/clock"
	"laborlink/internal/usecase"
	"laborlink/internal/usecase/commands"
	"laborlink/internal/usecase/queries"

	"go.uber.org/fx"
)

var UsecaseModule = fx.Module("usecase",
	fx.Provide(
		NewClock,

		// Commands
		commands.NewMatchingCommands,
		NewJobCreatedHook,
		commands.NewJobCommands,
		commands.NewNotificationCommands,

		// Queries
		queries.NewJobQueries,
		queries.NewNotificationQueries,

		// Auth
		usecase.NewTokenValidator,
	),
)

func NewClock() clock.Clock {
	return clock.NewRealClock()
}

// NewJobCreatedHook exposes the matcher as the job-creation hook so the
// command side depends on the narrow interface only.
func NewJobCreatedHook(mc commands.MatchingCommands) commands.JobCreatedHook {
	return mc
}
