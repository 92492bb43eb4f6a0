// Package selector picks the next-best unused question from the bank by
// keyword-overlap scoring against the SME's latest answer.
package selector

import (
	"log"
	"math/rand"

	"zyglio-be/pkg/interview/textmatch"
	"zyglio-be/pkg/store"
)

type Selector struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewSelector creates a selector. The random source drives the no-match
// fallback branch and is injectable for deterministic tests.
func NewSelector(rng *rand.Rand, logger *log.Logger) *Selector {
	return &Selector{
		rng:    rng,
		logger: logger,
	}
}

// SelectNext returns the best unused question and marks it used, or nil when
// the bank is exhausted.
//
// Total order: match score descending, then bank insertion index ascending.
// When the best score is 0 the pick is uniform among unused questions instead
// of the insertion-order default, so a non-matching answer doesn't always
// surface the same first question.
func (s *Selector) SelectNext(session *store.Session, latestResponse string) *store.Question {
	unused := session.UnusedQuestions()
	if len(unused) == 0 {
		return nil
	}

	words := textmatch.Tokenize(latestResponse)

	best := unused[0]
	bestScore := textmatch.KeywordScore(words, best.Keywords)
	for _, q := range unused[1:] {
		// Strictly-greater keeps the first-seen question on ties.
		if score := textmatch.KeywordScore(words, q.Keywords); score > bestScore {
			best = q
			bestScore = score
		}
	}

	if bestScore == 0 {
		best = unused[s.rng.Intn(len(unused))]
		s.logger.Printf("[SELECTOR] No keyword overlap, random fallback picked %q", best.Id)
	} else {
		s.logger.Printf("[SELECTOR] Picked %q with score %d", best.Id, bestScore)
	}

	best.Used = true
	return best
}
