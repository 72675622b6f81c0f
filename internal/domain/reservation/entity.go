package reservation

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Reservation is immutable once created. It is handled by value so that a copy
// can never change what the store holds.
type Reservation struct {
	id           uuid.UUID
	customerName string
	date         Date
	roomNumber   RoomNumber
	guestCount   GuestCount
	hasGuests    bool
	createdAt    time.Time
}

func NewReservation(customerName string, date Date, roomNumber RoomNumber, guestCount *GuestCount, createdAt time.Time) Reservation {
	r := Reservation{
		id:           uuid.New(),
		customerName: customerName,
		date:         date,
		roomNumber:   roomNumber,
		createdAt:    createdAt,
	}
	if guestCount != nil {
		r.guestCount = *guestCount
		r.hasGuests = true
	}
	return r
}

func (r Reservation) ID() uuid.UUID          { return r.id }
func (r Reservation) CustomerName() string   { return r.customerName }
func (r Reservation) Date() Date             { return r.date }
func (r Reservation) RoomNumber() RoomNumber { return r.roomNumber }
func (r Reservation) CreatedAt() time.Time   { return r.createdAt }

func (r Reservation) GuestCount() (GuestCount, bool) {
	return r.guestCount, r.hasGuests
}

func (r Reservation) Slot() Slot {
	return NewSlot(r.roomNumber, r.date)
}

// Matches compares every identifying field. A nil guestCount is not compared.
func (r Reservation) Matches(customerName string, date Date, roomNumber RoomNumber, guestCount *int) bool {
	if r.customerName != customerName || r.date != date || r.roomNumber != roomNumber {
		return false
	}
	if guestCount == nil {
		return true
	}
	return r.hasGuests && r.guestCount.Int() == *guestCount
}

func (r Reservation) String() string {
	s := fmt.Sprintf("Reservation {customerName='%s', dateTime=%s, roomNumber='%d'", r.customerName, r.date, r.roomNumber)
	if r.hasGuests {
		s += fmt.Sprintf(", guestCount='%d'", r.guestCount)
	}
	return s + "}"
}
