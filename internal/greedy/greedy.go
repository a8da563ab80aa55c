package greedy

import (
	"errors"
	"fmt"
)

var (
	// ErrNoProgress is returned when no remaining candidate covers any of the
	// uncovered elements.
	ErrNoProgress = errors.New("no candidate covers the remaining elements")

	// ErrBudgetExhausted is returned when every round was used and elements
	// remain uncovered.
	ErrBudgetExhausted = errors.New("round budget exhausted")
)

// UncoverableError reports a broken coverage invariant.
type UncoverableError struct {
	Round     int
	Remaining int
	cause     error
}

func (e *UncoverableError) Error() string {
	return fmt.Sprintf("round %d: %d elements left uncovered: %v", e.Round, e.Remaining, e.cause)
}

func (e *UncoverableError) Unwrap() error { return e.cause }

// Scorer measures candidate sets against the currently uncovered elements.
//
// Score stages the intersection of candidate i with the uncovered elements and
// returns its size. The staged intersection is only valid until the next Score
// call; Keep snapshots it as the round's best, and Commit removes the last kept
// snapshot from the uncovered elements.
type Scorer interface {
	Candidates() int
	Uncovered() int
	Score(i int) int
	Keep()
	Commit()
}

// Result is the outcome of a greedy run.
type Result struct {
	// Order holds the chosen candidate indices in selection order.
	Order []int
	// Rounds is the number of rounds that selected a candidate.
	Rounds int
	// Evaluations is the total number of Score calls.
	Evaluations int
}

// Run executes the greedy loop. It performs at most Candidates() rounds; each
// round selects the first unchosen candidate with the strictly largest gain.
func Run(s Scorer) (Result, error) {
	n := s.Candidates()
	chosen := make([]bool, n)

	var res Result
	for round := range n {
		remaining := s.Uncovered()
		if remaining == 0 {
			break
		}

		best, bestGain := -1, 0
		for i := range n {
			if chosen[i] {
				continue
			}
			res.Evaluations++
			if gain := s.Score(i); gain > bestGain {
				best, bestGain = i, gain
				s.Keep()
				if gain == remaining {
					// Nothing later can be strictly greater.
					break
				}
			}
		}

		if best < 0 {
			return res, &UncoverableError{Round: round, Remaining: remaining, cause: ErrNoProgress}
		}

		s.Commit()
		chosen[best] = true
		res.Order = append(res.Order, best)
		res.Rounds++
	}

	if remaining := s.Uncovered(); remaining > 0 {
		return res, &UncoverableError{Round: res.Rounds, Remaining: remaining, cause: ErrBudgetExhausted}
	}

	return res, nil
}
