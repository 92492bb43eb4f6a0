// Package completion decides when an interview may terminate.
package completion

import "zyglio-be/pkg/store"

// Evaluator applies the completion rule: the interview is complete iff the
// set of required topics is non-empty AND every required topic is
// thoroughly covered. Optional topics never affect the decision.
type Evaluator struct{}

func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// IsComplete evaluates the rule without side effects.
func (e *Evaluator) IsComplete(session *store.Session) bool {
	required := 0
	for _, t := range session.Topics {
		if !t.IsRequired {
			continue
		}
		required++
		if t.Status != store.StatusThoroughlyCovered {
			return false
		}
	}
	return required > 0
}

// Evaluate records a false->true transition on the session. Re-evaluating an
// already-complete session is a no-op, and a completed session never reverts.
func (e *Evaluator) Evaluate(session *store.Session) bool {
	if session.InterviewCompleted {
		return true
	}
	if e.IsComplete(session) {
		session.InterviewCompleted = true
		return true
	}
	return false
}
