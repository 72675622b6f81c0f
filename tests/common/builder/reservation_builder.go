//go:build unit || e2e

package builder

import (
	"time"

	"room-booking/internal/domain/reservation"
	reqdto "room-booking/internal/handler/dto/request"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

// Today is the fixed "now" used by builders and mock clocks in tests.
var Today = time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC)

type ReservationBuilder struct {
	CustomerName string
	Date         reservation.Date
	RoomNumber   *int
	GuestCount   *int
}

func NewReservationBuilder() *ReservationBuilder {
	room, guests := 150, 2
	return &ReservationBuilder{
		CustomerName: "John Smith",
		Date:         reservation.DateOf(Today).AddDays(30),
		RoomNumber:   &room,
		GuestCount:   &guests,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ReservationBuilder) BuildRequest() reservation.Request {
	return reservation.Request{
		CustomerName: b.CustomerName,
		Date:         b.Date,
		RoomNumber:   b.RoomNumber,
		GuestCount:   b.GuestCount,
	}
}

func (b *ReservationBuilder) BuildAddParams() commands.AddReservationParams {
	return commands.AddReservationParams{
		CustomerName: b.CustomerName,
		Date:         b.Date,
		RoomNumber:   b.RoomNumber,
		GuestCount:   b.GuestCount,
	}
}

func (b *ReservationBuilder) BuildCancelParams() commands.CancelReservationParams {
	return commands.CancelReservationParams{
		CustomerName: b.CustomerName,
		Date:         b.Date,
		RoomNumber:   b.RoomNumber,
		GuestCount:   b.GuestCount,
	}
}

// BuildDomain builds the entity directly, bypassing admission checks.
func (b *ReservationBuilder) BuildDomain() reservation.Reservation {
	var guests *reservation.GuestCount
	if b.GuestCount != nil {
		g := reservation.GuestCount(*b.GuestCount)
		guests = &g
	}
	room := 0
	if b.RoomNumber != nil {
		room = *b.RoomNumber
	}
	return reservation.NewReservation(b.CustomerName, b.Date, reservation.RoomNumber(room), guests, Today)
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	name := b.CustomerName
	date := b.Date.String()
	return reqdto.CreateReservationRequest{
		CustomerName: &name,
		Date:         &date,
		RoomNumber:   b.RoomNumber,
		GuestCount:   b.GuestCount,
	}
}

func (b *ReservationBuilder) BuildCancelRequestDTO() reqdto.CancelReservationRequest {
	name := b.CustomerName
	date := b.Date.String()
	return reqdto.CancelReservationRequest{
		CustomerName: &name,
		Date:         &date,
		RoomNumber:   b.RoomNumber,
		GuestCount:   b.GuestCount,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	room := 0
	if b.RoomNumber != nil {
		room = *b.RoomNumber
	}
	return &queries.ReservationView{
		ID:           uuid.New(),
		CustomerName: b.CustomerName,
		Date:         b.Date.String(),
		RoomNumber:   room,
		GuestCount:   b.GuestCount,
		CreatedAt:    Today,
	}
}

// Fluent builder methods
func (b *ReservationBuilder) WithCustomerName(name string) *ReservationBuilder {
	b.CustomerName = name
	return b
}

func (b *ReservationBuilder) WithDate(date reservation.Date) *ReservationBuilder {
	b.Date = date
	return b
}

func (b *ReservationBuilder) WithDaysFromToday(days int) *ReservationBuilder {
	b.Date = reservation.DateOf(Today).AddDays(days)
	return b
}

func (b *ReservationBuilder) WithRoomNumber(room *int) *ReservationBuilder {
	b.RoomNumber = room
	return b
}

func (b *ReservationBuilder) WithGuestCount(guests *int) *ReservationBuilder {
	b.GuestCount = guests
	return b
}
