package shared

import (
	"context"

	"room-booking/internal/domain/reservation"
)

type UnitOfWork interface {
	// Within: exclusive transaction for write operations; check-then-act inside fn is atomic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: shared access for consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads ReservationReader) error) error
}

type Tx interface {
	Reservations() ReservationRepository
}

type ReservationReader interface {
	reservation.Occupancy
	FindFirst(customerName string, room reservation.RoomNumber) (reservation.Reservation, bool)
	All() reservation.List
}

type ReservationRepository interface {
	ReservationReader
	Insert(res reservation.Reservation) error
	RemoveFirst(match func(reservation.Reservation) bool) bool
}
