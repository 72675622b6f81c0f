package reservation

// Occupancy reports whether a slot is already held.
type Occupancy interface {
	Occupied(slot Slot) bool
}

// HasConflict compares by value equality on (room, date); overlapping times are not considered.
func HasConflict(existing Occupancy, room RoomNumber, date Date) bool {
	if existing == nil {
		return false
	}
	return existing.Occupied(NewSlot(room, date))
}

// List is an ordered collection of reservations.
type List []Reservation

func (l List) Occupied(slot Slot) bool {
	for _, r := range l {
		if r.Slot() == slot {
			return true
		}
	}
	return false
}
