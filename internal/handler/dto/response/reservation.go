package response

import (
	"time"

	"room-booking/internal/pkg/patch"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID           uuid.UUID `json:"id"`
	CustomerName string    `json:"customerName"`
	Date         string    `json:"date"`
	RoomNumber   int       `json:"roomNumber"`
	GuestCount   *int      `json:"guestCount,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type AddReservationResponse struct {
	Accepted    bool                 `json:"accepted"`
	Outcome     string               `json:"outcome"`
	Reason      string               `json:"reason,omitempty"`
	Reservation *ReservationResponse `json:"reservation,omitempty"`
}

type CancelReservationResponse struct {
	Cancelled bool `json:"cancelled"`
}

func FromReservationView(view *queries.ReservationView) *ReservationResponse {
	var resp ReservationResponse
	// field names and types line up one to one
	_ = copier.Copy(&resp, view)
	if view.GuestCount != nil {
		resp.GuestCount = patch.Ref(*view.GuestCount)
	}
	return &resp
}

func FromAddResult(result *commands.AddResult) *AddReservationResponse {
	resp := &AddReservationResponse{
		Accepted: result.Accepted(),
		Outcome:  result.Outcome.String(),
		Reason:   result.Reason.String(),
	}
	if result.Reservation != nil {
		resp.Reservation = FromReservationView(queries.NewReservationView(*result.Reservation))
	}
	return resp
}
