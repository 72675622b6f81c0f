package request

import (
	"strings"

	"room-booking/internal/domain/reservation"
	"room-booking/internal/pkg/patch"
	"room-booking/internal/usecase/commands"
)

// Fields are pointers so that an omitted field reaches the admission pipeline
// as "missing" rather than as a zero value.
type CreateReservationRequest struct {
	CustomerName *string `json:"customerName"`
	Date         *string `json:"date" example:"2026-11-18"`
	RoomNumber   *int    `json:"roomNumber" example:"150"`
	GuestCount   *int    `json:"guestCount,omitempty" example:"2"`
}

// ToParams reports absent fields ahead of a malformed date. Whether guestCount
// is required depends on the booking policy, so that check stays in the pipeline.
func (r CreateReservationRequest) ToParams() (commands.AddReservationParams, error) {
	date, err := parseOptionalDate(r.Date)
	if err != nil {
		if strings.TrimSpace(patch.Coalesce(r.CustomerName, "")) == "" || r.RoomNumber == nil {
			return commands.AddReservationParams{}, reservation.ErrMissingFields
		}
		return commands.AddReservationParams{}, err
	}
	return commands.AddReservationParams{
		CustomerName: patch.Coalesce(r.CustomerName, ""),
		Date:         date,
		RoomNumber:   r.RoomNumber,
		GuestCount:   r.GuestCount,
	}, nil
}

type CancelReservationRequest struct {
	CustomerName *string `json:"customerName"`
	Date         *string `json:"date" example:"2026-11-18"`
	RoomNumber   *int    `json:"roomNumber" example:"150"`
	GuestCount   *int    `json:"guestCount,omitempty" example:"2"`
}

func (r CancelReservationRequest) ToParams() (commands.CancelReservationParams, error) {
	date, err := parseOptionalDate(r.Date)
	if err != nil {
		return commands.CancelReservationParams{}, err
	}
	return commands.CancelReservationParams{
		CustomerName: patch.Coalesce(r.CustomerName, ""),
		Date:         date,
		RoomNumber:   r.RoomNumber,
		GuestCount:   r.GuestCount,
	}, nil
}

// an absent or blank date stays zero and is reported by the pipeline as missing
func parseOptionalDate(value *string) (reservation.Date, error) {
	raw := strings.TrimSpace(patch.Coalesce(value, ""))
	if raw == "" {
		return reservation.Date{}, nil
	}
	return reservation.ParseDate(raw)
}
