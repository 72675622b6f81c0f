package reservation

// Bounds is an inclusive integer range.
type Bounds struct {
	Min int
	Max int
}

func (b Bounds) Contains(n int) bool {
	return n >= b.Min && n <= b.Max
}

// Policy selects which admission rules are active and the limits they enforce.
type Policy struct {
	Rooms              Bounds
	Guests             Bounds
	GuestCountRequired bool
	HorizonEnabled     bool
	HorizonYears       int
}

func DefaultPolicy() Policy {
	return Policy{
		Rooms:              Bounds{Min: 101, Max: 199},
		Guests:             Bounds{Min: 1, Max: 4},
		GuestCountRequired: true,
		HorizonEnabled:     true,
		HorizonYears:       1,
	}
}
