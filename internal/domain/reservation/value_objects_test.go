//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"room-booking/internal/domain/reservation"
	"room-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		d, err := reservation.ParseDate("2026-11-18")
		require.NoError(t, err)
		assert.Equal(t, reservation.NewDate(2026, time.November, 18), d)
		assert.Equal(t, "2026-11-18", d.String())
	})

	t.Run("surrounding whitespace is ignored", func(t *testing.T) {
		d, err := reservation.ParseDate("  2026-01-05 ")
		require.NoError(t, err)
		assert.Equal(t, reservation.NewDate(2026, time.January, 5), d)
	})

	for _, raw := range []string{"18/11/2026", "2026-13-01", "2026-02-30", "tomorrow", ""} {
		t.Run("invalid format: "+raw, func(t *testing.T) {
			d, err := reservation.ParseDate(raw)
			require.Error(t, err)
			assert.True(t, d.IsZero())
			assert.True(t, errs.Is(err, reservation.ErrInvalidDateFormat))
			assert.True(t, errs.Is(err, errs.ErrInvalidArgument))
		})
	}
}

func TestDate(t *testing.T) {
	t.Run("zero value is unset", func(t *testing.T) {
		var d reservation.Date
		assert.True(t, d.IsZero())
		assert.Equal(t, "", d.String())
		assert.False(t, reservation.NewDate(2026, time.March, 10).IsZero())
	})

	t.Run("ordering", func(t *testing.T) {
		a := reservation.NewDate(2026, time.March, 10)
		b := reservation.NewDate(2026, time.March, 11)
		assert.True(t, a.Before(b))
		assert.False(t, b.Before(a))
		assert.True(t, b.After(a))
		assert.False(t, a.Before(a))
		assert.False(t, a.After(a))
	})

	t.Run("AddDays crosses month and year ends", func(t *testing.T) {
		assert.Equal(t, reservation.NewDate(2027, time.January, 1), reservation.NewDate(2026, time.December, 31).AddDays(1))
		assert.Equal(t, reservation.NewDate(2026, time.February, 28), reservation.NewDate(2026, time.March, 1).AddDays(-1))
	})

	t.Run("AddYears clamps Feb 29", func(t *testing.T) {
		leap := reservation.NewDate(2028, time.February, 29)
		assert.Equal(t, reservation.NewDate(2029, time.February, 28), leap.AddYears(1))
		assert.Equal(t, reservation.NewDate(2032, time.February, 29), leap.AddYears(4))
	})

	t.Run("DateOf uses the time's own location", func(t *testing.T) {
		tokyo := time.FixedZone("JST", 9*60*60)
		instant := time.Date(2026, time.March, 10, 20, 0, 0, 0, time.UTC)
		assert.Equal(t, reservation.NewDate(2026, time.March, 10), reservation.DateOf(instant))
		assert.Equal(t, reservation.NewDate(2026, time.March, 11), reservation.DateOf(instant.In(tokyo)))
	})

	t.Run("usable as a map key", func(t *testing.T) {
		m := map[reservation.Slot]bool{
			reservation.NewSlot(101, reservation.NewDate(2026, time.March, 10)): true,
		}
		assert.True(t, m[reservation.NewSlot(101, reservation.NewDate(2026, time.March, 10))])
		assert.False(t, m[reservation.NewSlot(102, reservation.NewDate(2026, time.March, 10))])
	})
}
