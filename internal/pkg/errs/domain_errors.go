package errs

// Input error categories. Domain errors are marked with one of these so that
// outer layers can classify them with Is without knowing the concrete error.
var (
	// A required field was not supplied; the caller must resupply it.
	ErrInvalidArgument = New("invalid argument")

	// A supplied value violates a static domain bound.
	ErrOutOfRange = New("value out of range")
)
