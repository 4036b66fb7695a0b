package bootstrap

import (
	"laborlink/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RedisModule,
	JWTModule,
	components.PersistenceModule,
	components.UsecaseModule,
	components.DeliveryModule,
	components.HandlerModule,
)
