//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"room-booking/internal/domain/reservation"
	"room-booking/tests/common/builder"
	"room-booking/tests/common/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestReservation(t *testing.T) {
	day := reservation.NewDate(2026, time.December, 21)

	t.Run("basic success case", func(t *testing.T) {
		r := builder.NewReservationBuilder().WithDate(day).BuildDomain()

		assert.NotEqual(t, uuid.Nil, r.ID())
		assert.Equal(t, "John Smith", r.CustomerName())
		assert.Equal(t, day, r.Date())
		assert.Equal(t, reservation.RoomNumber(150), r.RoomNumber())
		guests, ok := r.GuestCount()
		assert.True(t, ok)
		assert.Equal(t, reservation.GuestCount(2), guests)
		assert.Equal(t, reservation.NewSlot(150, day), r.Slot())
		assert.False(t, r.CreatedAt().IsZero())
	})

	t.Run("each reservation gets its own id", func(t *testing.T) {
		a := builder.NewReservationBuilder().BuildDomain()
		b := builder.NewReservationBuilder().BuildDomain()
		assert.NotEqual(t, a.ID(), b.ID())
	})

	t.Run("String", func(t *testing.T) {
		room := 101
		r := builder.NewReservationBuilder().
			WithCustomerName("Ayberk").
			WithDate(day).
			WithRoomNumber(&room).
			WithGuestCount(testutil.IntPtr(3)).
			BuildDomain()
		assert.Equal(t, "Reservation {customerName='Ayberk', dateTime=2026-12-21, roomNumber='101', guestCount='3'}", r.String())

		noGuests := builder.NewReservationBuilder().
			WithCustomerName("Ayberk").
			WithDate(day).
			WithRoomNumber(&room).
			WithGuestCount(nil).
			BuildDomain()
		assert.Equal(t, "Reservation {customerName='Ayberk', dateTime=2026-12-21, roomNumber='101'}", noGuests.String())
	})
}

func TestReservation_Matches(t *testing.T) {
	day := reservation.NewDate(2026, time.December, 21)
	r := builder.NewReservationBuilder().WithDate(day).BuildDomain()

	cases := []struct {
		name   string
		cname  string
		date   reservation.Date
		room   reservation.RoomNumber
		guests *int
		want   bool
	}{
		{name: "all fields equal", cname: "John Smith", date: day, room: 150, guests: testutil.IntPtr(2), want: true},
		{name: "guest count omitted", cname: "John Smith", date: day, room: 150, guests: nil, want: true},
		{name: "different guest count", cname: "John Smith", date: day, room: 150, guests: testutil.IntPtr(3), want: false},
		{name: "different name", cname: "john smith", date: day, room: 150, guests: nil, want: false},
		{name: "different date", cname: "John Smith", date: day.AddDays(1), room: 150, guests: nil, want: false},
		{name: "different room", cname: "John Smith", date: day, room: 151, guests: nil, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.Matches(tc.cname, tc.date, tc.room, tc.guests))
		})
	}

	t.Run("guest count given but none stored", func(t *testing.T) {
		noGuests := builder.NewReservationBuilder().WithDate(day).WithGuestCount(nil).BuildDomain()
		assert.False(t, noGuests.Matches("John Smith", day, 150, testutil.IntPtr(2)))
		assert.True(t, noGuests.Matches("John Smith", day, 150, nil))
	})
}
