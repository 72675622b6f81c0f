package components

import (
	"room-booking/internal/infra/repository"
	"room-booking/internal/infra/uow"

	"go.uber.org/fx"
)

// The store lives only in process memory; one repository per application instance.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		repository.NewReservationRepository,
		uow.NewMemoryUoW,
	),
)
