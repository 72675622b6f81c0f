package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, etc.)
// - default: Values common across all environments (booking rules, timezone, log format)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	CORS    CORSConfig
	Log     LogConfig
	Booking BookingConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// BookingConfig holds the admission rules. The defaults are the standard
// rules: rooms 101-199, 1-4 guests, bookings at most one year ahead.
type BookingConfig struct {
	RoomMin            int    `envconfig:"BOOKING_ROOM_MIN" default:"101"`
	RoomMax            int    `envconfig:"BOOKING_ROOM_MAX" default:"199"`
	GuestMin           int    `envconfig:"BOOKING_GUEST_MIN" default:"1"`
	GuestMax           int    `envconfig:"BOOKING_GUEST_MAX" default:"4"`
	GuestCountRequired bool   `envconfig:"BOOKING_GUEST_COUNT_REQUIRED" default:"true"`
	HorizonEnabled     bool   `envconfig:"BOOKING_HORIZON_ENABLED" default:"true"`
	HorizonYears       int    `envconfig:"BOOKING_HORIZON_YEARS" default:"1"`
	TimeZone           string `envconfig:"BOOKING_TIMEZONE" default:"UTC"`
}

func (c BookingConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid BOOKING_TIMEZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func (c BookingConfig) validate() error {
	if c.RoomMin > c.RoomMax {
		return fmt.Errorf("BOOKING_ROOM_MIN (%d) exceeds BOOKING_ROOM_MAX (%d)", c.RoomMin, c.RoomMax)
	}
	if c.GuestMin > c.GuestMax {
		return fmt.Errorf("BOOKING_GUEST_MIN (%d) exceeds BOOKING_GUEST_MAX (%d)", c.GuestMin, c.GuestMax)
	}
	if c.HorizonEnabled && c.HorizonYears < 0 {
		return fmt.Errorf("BOOKING_HORIZON_YEARS must not be negative, got %d", c.HorizonYears)
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Booking.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8080"},
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Booking: BookingConfig{
			RoomMin:            101,
			RoomMax:            199,
			GuestMin:           1,
			GuestMax:           4,
			GuestCountRequired: true,
			HorizonEnabled:     true,
			HorizonYears:       1,
			TimeZone:           "UTC",
		},
	}
}
