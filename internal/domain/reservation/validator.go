package reservation

func IsValidRoomNumber(roomNumber int) bool {
	return DefaultPolicy().Rooms.Contains(roomNumber)
}

func IsValidGuestCount(guestCount int) bool {
	return DefaultPolicy().Guests.Contains(guestCount)
}

// Validator checks room numbers and guest counts against a policy's bounds.
type Validator struct {
	rooms  Bounds
	guests Bounds
}

func NewValidator(policy Policy) *Validator {
	return &Validator{rooms: policy.Rooms, guests: policy.Guests}
}

func (v *Validator) IsValidRoomNumber(roomNumber int) bool {
	return v.rooms.Contains(roomNumber)
}

func (v *Validator) IsValidGuestCount(guestCount int) bool {
	return v.guests.Contains(guestCount)
}
