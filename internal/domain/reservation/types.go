package reservation

type Outcome string

const (
	OutcomeAccepted Outcome = "accepted"
	OutcomeDeclined Outcome = "declined"
)

func (o Outcome) String() string {
	return string(o)
}

// DeclineReason explains a declined request that was well formed but cannot be scheduled.
type DeclineReason string

const (
	ReasonNone          DeclineReason = ""
	ReasonPastDate      DeclineReason = "past_date"
	ReasonBeyondHorizon DeclineReason = "beyond_horizon"
	ReasonSlotTaken     DeclineReason = "slot_taken"
)

func (r DeclineReason) String() string {
	return string(r)
}
