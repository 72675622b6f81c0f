package bootstrap

import (
	"room-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
