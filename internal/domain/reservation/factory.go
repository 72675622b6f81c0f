package reservation

import (
	"strings"
	"time"

	"room-booking/internal/pkg/clock"
)

// Request carries the raw fields of a booking attempt. Nil pointers and the zero
// Date mean the field was not supplied.
type Request struct {
	CustomerName string
	Date         Date
	RoomNumber   *int
	GuestCount   *int
}

// Factory runs the stateless part of admission: presence, date window and range checks.
type Factory struct {
	Clock     clock.Clock
	Policy    Policy
	Location  *time.Location
	validator *Validator
}

func NewFactory(clock clock.Clock, policy Policy, location *time.Location) *Factory {
	if location == nil {
		location = time.UTC
	}
	return &Factory{
		Clock:     clock,
		Policy:    policy,
		Location:  location,
		validator: NewValidator(policy),
	}
}

func (f *Factory) Today() Date {
	return DateOf(f.Clock.Now().In(f.Location))
}

// Admit returns the candidate reservation, or a decline reason, or an input error.
// Checks run in order and the first failure wins. Slot conflicts are left to the caller,
// which owns the collection.
func (f *Factory) Admit(req Request) (*Reservation, DeclineReason, error) {
	if strings.TrimSpace(req.CustomerName) == "" ||
		req.Date.IsZero() ||
		req.RoomNumber == nil ||
		(f.Policy.GuestCountRequired && req.GuestCount == nil) {
		return nil, ReasonNone, ErrMissingFields
	}

	today := f.Today()
	if req.Date.Before(today) {
		return nil, ReasonPastDate, nil
	}
	// the window is measured back from the requested date, so a Feb 29 booking
	// is in range when its clamped anniversary a year earlier is not after today
	if f.Policy.HorizonEnabled && req.Date.AddYears(-f.Policy.HorizonYears).After(today) {
		return nil, ReasonBeyondHorizon, nil
	}

	if !f.validator.IsValidRoomNumber(*req.RoomNumber) {
		return nil, ReasonNone, newRoomNumberError(f.Policy.Rooms)
	}

	var guests *GuestCount
	if req.GuestCount != nil {
		if !f.validator.IsValidGuestCount(*req.GuestCount) {
			return nil, ReasonNone, newGuestCountError(f.Policy.Guests)
		}
		g := GuestCount(*req.GuestCount)
		guests = &g
	}

	r := NewReservation(req.CustomerName, req.Date, RoomNumber(*req.RoomNumber), guests, f.Clock.Now())
	return &r, ReasonNone, nil
}
