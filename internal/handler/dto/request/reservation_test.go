//go:build unit

package request_test

import (
	"testing"
	"time"

	"room-booking/internal/domain/reservation"
	"room-booking/internal/handler/dto/request"
	"room-booking/internal/pkg/errs"
	"room-booking/tests/common/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReservationRequest_ToParams(t *testing.T) {
	t.Run("all fields", func(t *testing.T) {
		req := request.CreateReservationRequest{
			CustomerName: testutil.StringPtr("Ayberk"),
			Date:         testutil.StringPtr("2026-11-18"),
			RoomNumber:   testutil.IntPtr(101),
			GuestCount:   testutil.IntPtr(2),
		}
		params, err := req.ToParams()
		require.NoError(t, err)
		assert.Equal(t, "Ayberk", params.CustomerName)
		assert.Equal(t, reservation.NewDate(2026, time.November, 18), params.Date)
		assert.Equal(t, 101, *params.RoomNumber)
		assert.Equal(t, 2, *params.GuestCount)
	})

	t.Run("absent and blank fields stay unset", func(t *testing.T) {
		params, err := request.CreateReservationRequest{Date: testutil.StringPtr("  ")}.ToParams()
		require.NoError(t, err)
		assert.Empty(t, params.CustomerName)
		assert.True(t, params.Date.IsZero())
		assert.Nil(t, params.RoomNumber)
		assert.Nil(t, params.GuestCount)
	})

	t.Run("malformed date is an invalid argument", func(t *testing.T) {
		_, err := request.CreateReservationRequest{
			CustomerName: testutil.StringPtr("Ayberk"),
			Date:         testutil.StringPtr("11/18/2026"),
			RoomNumber:   testutil.IntPtr(101),
		}.ToParams()
		require.Error(t, err)
		assert.True(t, errs.Is(err, reservation.ErrInvalidDateFormat))
		assert.True(t, errs.Is(err, errs.ErrInvalidArgument))
	})

	t.Run("missing fields win over a malformed date", func(t *testing.T) {
		cases := map[string]request.CreateReservationRequest{
			"no name":    {Date: testutil.StringPtr("11/18/2026"), RoomNumber: testutil.IntPtr(101)},
			"no room":    {CustomerName: testutil.StringPtr("Ayberk"), Date: testutil.StringPtr("11/18/2026")},
			"nothing":    {Date: testutil.StringPtr("11/18/2026")},
			"blank name": {CustomerName: testutil.StringPtr("  "), Date: testutil.StringPtr("bad"), RoomNumber: testutil.IntPtr(101)},
		}
		for name, req := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := req.ToParams()
				require.Error(t, err)
				assert.True(t, errs.Is(err, reservation.ErrMissingFields))
				assert.Equal(t, "Name, Date-Time, Room Number and/or Guest Count fields must be filled.", err.Error())
			})
		}
	})
}

func TestCancelReservationRequest_ToParams(t *testing.T) {
	params, err := request.CancelReservationRequest{
		CustomerName: testutil.StringPtr("Ayberk"),
		Date:         testutil.StringPtr("2026-11-18"),
		RoomNumber:   testutil.IntPtr(101),
	}.ToParams()
	require.NoError(t, err)
	assert.Equal(t, "Ayberk", params.CustomerName)
	assert.Nil(t, params.GuestCount)

	_, err = request.CancelReservationRequest{Date: testutil.StringPtr("tomorrow")}.ToParams()
	assert.True(t, errs.Is(err, reservation.ErrInvalidDateFormat))
}
