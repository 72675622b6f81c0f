package bootstrap

import (
	"log/slog"

	"room-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logBookingRules),
)

func logBookingRules(cfg config.Config, logger *slog.Logger) {
	b := cfg.Booking
	logger.Info("booking rules loaded",
		"rooms", []int{b.RoomMin, b.RoomMax},
		"guests", []int{b.GuestMin, b.GuestMax},
		"guest_count_required", b.GuestCountRequired,
		"horizon_enabled", b.HorizonEnabled,
		"horizon_years", b.HorizonYears,
		"timezone", b.TimeZone)
}
