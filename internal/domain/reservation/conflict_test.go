//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"room-booking/internal/domain/reservation"
	"room-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

func TestHasConflict(t *testing.T) {
	day := reservation.NewDate(2026, time.April, 9)
	room := 101
	existing := reservation.List{
		builder.NewReservationBuilder().WithDate(day).WithRoomNumber(&room).BuildDomain(),
	}

	cases := []struct {
		name string
		room reservation.RoomNumber
		date reservation.Date
		want bool
	}{
		{name: "same room and date", room: 101, date: day, want: true},
		{name: "same room, next day", room: 101, date: day.AddDays(1), want: false},
		{name: "same room, previous day", room: 101, date: day.AddDays(-1), want: false},
		{name: "other room, same date", room: 102, date: day, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, reservation.HasConflict(existing, tc.room, tc.date))
		})
	}

	t.Run("empty and nil collections never conflict", func(t *testing.T) {
		assert.False(t, reservation.HasConflict(reservation.List{}, 101, day))
		assert.False(t, reservation.HasConflict(reservation.List(nil), 101, day))
		assert.False(t, reservation.HasConflict(nil, 101, day))
	})

	t.Run("guest count and name do not matter", func(t *testing.T) {
		other := builder.NewReservationBuilder().
			WithCustomerName("Someone Else").
			WithDate(day).
			WithRoomNumber(&room).
			WithGuestCount(nil).
			BuildDomain()
		assert.True(t, reservation.HasConflict(reservation.List{other}, 101, day))
	})
}
