package reservation

import (
	"room-booking/internal/pkg/errs"
)

const (
	MissingFieldsMessage = "Name, Date-Time, Room Number and/or Guest Count fields must be filled."

	roomNumberMessage = "Room number must be selected between %d-%d (%d and %d included)."
	guestCountMessage = "Guest count must be between %d-%d. (%d and %d included)"
)

var (
	ErrMissingFields     = errs.Mark(errs.New(MissingFieldsMessage), errs.ErrInvalidArgument)
	ErrInvalidDateFormat = errs.Mark(errs.New("date must be formatted as YYYY-MM-DD"), errs.ErrInvalidArgument)

	ErrRoomNumberOutOfRange = errs.New("room number out of range")
	ErrGuestCountOutOfRange = errs.New("guest count out of range")
)

func newRoomNumberError(b Bounds) error {
	err := errs.Newf(roomNumberMessage, b.Min, b.Max, b.Min, b.Max)
	return errs.Mark(errs.Mark(err, ErrRoomNumberOutOfRange), errs.ErrOutOfRange)
}

func newGuestCountError(b Bounds) error {
	err := errs.Newf(guestCountMessage, b.Min, b.Max, b.Min, b.Max)
	return errs.Mark(errs.Mark(err, ErrGuestCountOutOfRange), errs.ErrOutOfRange)
}
