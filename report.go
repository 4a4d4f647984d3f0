package gomold

// Outcome records what the decode pipeline did with a single field.
// Optional wins over default when labeling a failure: a field that is
// both optional and defaulted reports OutcomeSkippedOptional, keeping the
// default applied at construction.
type Outcome int

const (
	OutcomeNotDecoded        Outcome = iota // Field was never visited (zero value).
	OutcomeAssigned                         // Raw value resolved, converted and assigned.
	OutcomeSkippedOptional                  // Optional field absorbed a failure and was left untouched.
	OutcomeDefaultedOnFailure               // Required field kept its declared default after a failure.
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAssigned:
		return "assigned"
	case OutcomeSkippedOptional:
		return "skipped_optional"
	case OutcomeDefaultedOnFailure:
		return "defaulted_on_failure"
	default:
		return "not_decoded"
	}
}

// Report maps field names to the outcome of their last decode.
type Report map[string]Outcome
