package selection

import "fmt"

// Status classifies a credit total against a CreditRange.
type Status int

const (
	Under Status = iota
	Valid
	Over
)

func (s Status) String() string {
	switch s {
	case Under:
		return "under"
	case Valid:
		return "valid"
	case Over:
		return "over"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// CreditRange is an inclusive [Min, Max] window.
type CreditRange struct {
	Min int
	Max int
}

// Classify places total below, inside or above the range.
func (r CreditRange) Classify(total int) Status {
	switch {
	case total < r.Min:
		return Under
	case total > r.Max:
		return Over
	default:
		return Valid
	}
}

// Reasons lists what the user must change for total to fall in range.
// At most one reason is returned; nil means total is valid.
func (r CreditRange) Reasons(total int) []string {
	switch r.Classify(total) {
	case Under:
		return []string{fmt.Sprintf("add %d more credit(s) to reach minimum %d", r.Min-total, r.Min)}
	case Over:
		return []string{fmt.Sprintf("remove %d credit(s) to be at most %d", total-r.Max, r.Max)}
	default:
		return nil
	}
}

// Hint is the short status line shown next to the running total.
func (r CreditRange) Hint(total int) string {
	switch r.Classify(total) {
	case Under:
		return fmt.Sprintf("Under minimum: add %d credit(s).", r.Min-total)
	case Over:
		return fmt.Sprintf("Over maximum: remove %d credit(s).", total-r.Max)
	default:
		return "Good, within allowed range."
	}
}
