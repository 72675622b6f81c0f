package infra

import (
	"fmt"
	"log/slog"

	"room-booking/internal/domain/reservation"
	"room-booking/internal/pkg/errs"
)

type StoreErrorKind string

const (
	// KindSlotTaken means a write reached the store for a (room, date) that is already held.
	KindSlotTaken StoreErrorKind = "SLOT_TAKEN"
)

// StoreError is returned when the reservation store refuses a write.
type StoreError struct {
	Kind StoreErrorKind
	Slot reservation.Slot
	err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: room %d on %s: %v", e.Kind, e.Slot.Room.Int(), e.Slot.Date, e.err)
}

func (e *StoreError) Unwrap() error {
	return e.err
}

// NewStoreError logs the refusal and returns it with a stack attached.
func NewStoreError(logger *slog.Logger, kind StoreErrorKind, slot reservation.Slot, msg string) error {
	logger.Warn("reservation store refused write",
		slog.String("kind", string(kind)),
		slog.Int("room", slot.Room.Int()),
		slog.String("date", slot.Date.String()),
		slog.String("reason", msg))

	return &StoreError{Kind: kind, Slot: slot, err: errs.New(msg)}
}

func IsKind(err error, kind StoreErrorKind) bool {
	var e *StoreError
	if errs.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
