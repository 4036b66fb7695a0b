package components

import (
	"laborlink/internal/delivery"
	"laborlink/internal/housekeeping"
	"laborlink/internal/infra/readstore"
	"laborlink/internal/infra/repository"
	"laborlink/internal/usecase/commands"
	"laborlink/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	repositoryModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Job
		fx.Annotate(
			readstore.NewJobReadStore,
			fx.As(new(queries.JobReadStore)),
			fx.As(new(commands.JobMatchReadStore)),
		),
		// Laborer
		fx.Annotate(
			readstore.NewLaborerReadStore,
			fx.As(new(commands.LaborerReadStore)),
		),
		// Notification
		fx.Annotate(
			readstore.NewNotificationReadStore,
			fx.As(new(queries.NotificationReadStore)),
			fx.As(new(delivery.NotificationReader)),
		),
		// User contact (delivery side)
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(delivery.ContactReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// Job
		fx.Annotate(
			repository.NewJobRepository,
			fx.As(new(commands.JobRepository)),
		),
		// Notification
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(commands.NotificationRepository)),
			fx.As(new(delivery.StatusWriter)),
			fx.As(new(housekeeping.NotificationPurger)),
		),
	),
)
