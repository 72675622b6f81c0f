package repository

import (
	"log/slog"

	"room-booking/internal/domain/reservation"
	"room-booking/internal/infra"

	"github.com/google/uuid"
)

// ReservationRepository owns the in-memory collection. It is not safe for concurrent
// use on its own; callers go through the unit of work, which serializes access.
type ReservationRepository struct {
	entries []reservation.Reservation
	bySlot  map[reservation.Slot]uuid.UUID
	byName  map[string]reservation.List
	logger  *slog.Logger
}

func NewReservationRepository(logger *slog.Logger) *ReservationRepository {
	return &ReservationRepository{
		bySlot: make(map[reservation.Slot]uuid.UUID),
		byName: make(map[string]reservation.List),
		logger: logger,
	}
}

func (r *ReservationRepository) Occupied(slot reservation.Slot) bool {
	_, ok := r.bySlot[slot]
	return ok
}

func (r *ReservationRepository) Insert(res reservation.Reservation) error {
	if r.Occupied(res.Slot()) {
		return infra.NewStoreError(r.logger, infra.KindSlotTaken, res.Slot(), "slot already held")
	}

	r.entries = append(r.entries, res)
	r.bySlot[res.Slot()] = res.ID()
	r.byName[res.CustomerName()] = append(r.byName[res.CustomerName()], res)
	return nil
}

// RemoveFirst deletes the first entry, in insertion order, for which match returns true.
func (r *ReservationRepository) RemoveFirst(match func(reservation.Reservation) bool) bool {
	for i, res := range r.entries {
		if !match(res) {
			continue
		}
		r.entries = append(r.entries[:i], r.entries[i+1:]...)
		delete(r.bySlot, res.Slot())
		r.dropFromNameIndex(res)
		return true
	}
	return false
}

// FindFirst returns the earliest inserted entry for the customer in the given room.
func (r *ReservationRepository) FindFirst(customerName string, room reservation.RoomNumber) (reservation.Reservation, bool) {
	for _, res := range r.byName[customerName] {
		if res.RoomNumber() == room {
			return res, true
		}
	}
	return reservation.Reservation{}, false
}

// All returns a copy of the collection in insertion order.
func (r *ReservationRepository) All() reservation.List {
	out := make(reservation.List, len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *ReservationRepository) Len() int {
	return len(r.entries)
}

func (r *ReservationRepository) dropFromNameIndex(res reservation.Reservation) {
	list := r.byName[res.CustomerName()]
	for i, entry := range list {
		if entry.ID() == res.ID() {
			list = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(list) == 0 {
		delete(r.byName, res.CustomerName())
		return
	}
	r.byName[res.CustomerName()] = list
}
