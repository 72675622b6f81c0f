package queries

import (
	"context"
	"time"

	"room-booking/internal/domain/reservation"
	"room-booking/internal/pkg/patch"
	"room-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// Read model (DTO for read side)
type ReservationView struct {
	ID           uuid.UUID `json:"id"`
	CustomerName string    `json:"customer_name"`
	Date         string    `json:"date"`
	RoomNumber   int       `json:"room_number"`
	GuestCount   *int      `json:"guest_count,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewReservationView(r reservation.Reservation) *ReservationView {
	view := &ReservationView{
		ID:           r.ID(),
		CustomerName: r.CustomerName(),
		Date:         r.Date().String(),
		RoomNumber:   r.RoomNumber().Int(),
		CreatedAt:    r.CreatedAt(),
	}
	if guests, ok := r.GuestCount(); ok {
		view.GuestCount = patch.Ref(guests.Int())
	}
	return view
}

type ReservationQueries interface {
	// Find returns false when nothing matches; absence is not an error.
	Find(ctx context.Context, customerName string, roomNumber int) (*ReservationView, bool, error)
	ListAll(ctx context.Context) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewReservationQueries(uow shared.UnitOfWork) ReservationQueries {
	return &reservationQueriesImpl{uow: uow}
}

func (q *reservationQueriesImpl) Find(ctx context.Context, customerName string, roomNumber int) (*ReservationView, bool, error) {
	var (
		found reservation.Reservation
		ok    bool
	)
	err := q.uow.WithinReadOnly(ctx, func(_ context.Context, reads shared.ReservationReader) error {
		found, ok = reads.FindFirst(customerName, reservation.RoomNumber(roomNumber))
		return nil
	})
	if err != nil || !ok {
		return nil, false, err
	}
	return NewReservationView(found), true, nil
}

func (q *reservationQueriesImpl) ListAll(ctx context.Context) ([]*ReservationView, error) {
	var all reservation.List
	err := q.uow.WithinReadOnly(ctx, func(_ context.Context, reads shared.ReservationReader) error {
		all = reads.All()
		return nil
	})
	if err != nil {
		return nil, err
	}

	views := make([]*ReservationView, len(all))
	for i, r := range all {
		views[i] = NewReservationView(r)
	}
	return views, nil
}
