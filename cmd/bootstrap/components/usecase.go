package components

import (
	"room-booking/internal/domain/reservation"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/config"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewBookingPolicy,
	NewReservationFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
	),
)

func NewBookingPolicy(cfg config.Config) reservation.Policy {
	b := cfg.Booking
	return reservation.Policy{
		Rooms:              reservation.Bounds{Min: b.RoomMin, Max: b.RoomMax},
		Guests:             reservation.Bounds{Min: b.GuestMin, Max: b.GuestMax},
		GuestCountRequired: b.GuestCountRequired,
		HorizonEnabled:     b.HorizonEnabled,
		HorizonYears:       b.HorizonYears,
	}
}

func NewReservationFactory(clk clock.Clock, policy reservation.Policy, cfg config.Config) (*reservation.Factory, error) {
	loc, err := cfg.Booking.Location()
	if err != nil {
		return nil, err
	}
	return reservation.NewFactory(clk, policy, loc), nil
}
