package insertion

import "errors"

// Outcome labels the result of an invocation.
type Outcome string

const (
	OutcomeOK          Outcome = "ok"
	OutcomeNoop        Outcome = "noop"
	OutcomeError       Outcome = "error"
	OutcomeAccessError Outcome = "access_error"
	OutcomePanic       Outcome = "panic"
)

// Metrics observes resolutions and invocations.
type Metrics interface {
	Resolved(kind Kind)
	Invoked(kind Kind, outcome Outcome)
}

type nopMetrics struct{}

func (nopMetrics) Resolved(Kind)         {}
func (nopMetrics) Invoked(Kind, Outcome) {}

// NopMetrics returns a Metrics implementation that discards everything.
func NopMetrics() Metrics { return nopMetrics{} }

func outcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, ErrAccess):
		return OutcomeAccessError
	default:
		return OutcomeError
	}
}
