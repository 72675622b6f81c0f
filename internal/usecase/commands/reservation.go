package commands

import (
	"context"
	"log/slog"

	"room-booking/internal/domain/reservation"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/shared"
)

type AddReservationParams struct {
	CustomerName string
	Date         reservation.Date
	RoomNumber   *int
	GuestCount   *int
}

func (p AddReservationParams) toRequest() reservation.Request {
	return reservation.Request{
		CustomerName: p.CustomerName,
		Date:         p.Date,
		RoomNumber:   p.RoomNumber,
		GuestCount:   p.GuestCount,
	}
}

type CancelReservationParams struct {
	CustomerName string
	Date         reservation.Date
	RoomNumber   *int
	GuestCount   *int
}

// AddResult is returned for well-formed requests. Malformed input is reported
// through the error instead, marked with errs.ErrInvalidArgument or errs.ErrOutOfRange.
type AddResult struct {
	Outcome     reservation.Outcome
	Reason      reservation.DeclineReason
	Reservation *reservation.Reservation
}

func (r *AddResult) Accepted() bool {
	return r != nil && r.Outcome == reservation.OutcomeAccepted
}

func accepted(res reservation.Reservation) *AddResult {
	return &AddResult{Outcome: reservation.OutcomeAccepted, Reservation: &res}
}

func declined(reason reservation.DeclineReason) *AddResult {
	return &AddResult{Outcome: reservation.OutcomeDeclined, Reason: reason}
}

type ReservationCommands interface {
	Add(ctx context.Context, params AddReservationParams) (*AddResult, error)
	Cancel(ctx context.Context, params CancelReservationParams) (bool, error)
}

type reservationCommandsImpl struct {
	uow     shared.UnitOfWork
	factory *reservation.Factory
	logger  *slog.Logger
}

func NewReservationCommands(uow shared.UnitOfWork, factory *reservation.Factory, logger *slog.Logger) ReservationCommands {
	return &reservationCommandsImpl{
		uow:     uow,
		factory: factory,
		logger:  logger,
	}
}

func (c *reservationCommandsImpl) Add(ctx context.Context, params AddReservationParams) (*AddResult, error) {
	candidate, reason, err := c.factory.Admit(params.toRequest())
	if err != nil {
		c.logger.Warn("reservation rejected",
			"customer", params.CustomerName,
			"date", params.Date.String(),
			"error", err.Error())
		return nil, err
	}
	if reason != reservation.ReasonNone {
		c.logInfoDeclined(params, reason)
		return declined(reason), nil
	}

	var result *AddResult
	err = c.uow.Within(ctx, func(_ context.Context, tx shared.Tx) error {
		repo := tx.Reservations()
		if reservation.HasConflict(repo, candidate.RoomNumber(), candidate.Date()) {
			result = declined(reservation.ReasonSlotTaken)
			return nil
		}
		if err := repo.Insert(*candidate); err != nil {
			return errs.Wrap(err, "failed to store reservation")
		}
		result = accepted(*candidate)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !result.Accepted() {
		c.logInfoDeclined(params, result.Reason)
		return result, nil
	}

	c.logger.Info("reservation accepted",
		"id", candidate.ID().String(),
		"customer", candidate.CustomerName(),
		"room", candidate.RoomNumber().Int(),
		"date", candidate.Date().String())
	return result, nil
}

func (c *reservationCommandsImpl) Cancel(ctx context.Context, params CancelReservationParams) (bool, error) {
	if params.RoomNumber == nil {
		return false, nil
	}
	room := reservation.RoomNumber(*params.RoomNumber)

	var removed bool
	err := c.uow.Within(ctx, func(_ context.Context, tx shared.Tx) error {
		removed = tx.Reservations().RemoveFirst(func(r reservation.Reservation) bool {
			return r.Matches(params.CustomerName, params.Date, room, params.GuestCount)
		})
		return nil
	})
	if err != nil {
		return false, err
	}

	if removed {
		c.logger.Info("reservation cancelled",
			"customer", params.CustomerName,
			"room", room.Int(),
			"date", params.Date.String())
	}
	return removed, nil
}

func (c *reservationCommandsImpl) logInfoDeclined(params AddReservationParams, reason reservation.DeclineReason) {
	c.logger.Info("reservation declined",
		"customer", params.CustomerName,
		"date", params.Date.String(),
		"reason", reason.String())
}
