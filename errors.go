package setcover

import (
	"errors"
	"fmt"

	"github.com/hupe1980/setcover/internal/greedy"
)

var (
	// ErrConfiguration is the class of caller configuration errors.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrUncoverable is the class of coverage invariant failures.
	ErrUncoverable = errors.New("input cannot be covered")
)

// ErrInvalidMode indicates an unrecognized selector mode.
type ErrInvalidMode struct {
	Mode Mode
}

func (e *ErrInvalidMode) Error() string {
	return fmt.Sprintf("invalid mode: %d (must be %s or %s)", e.Mode, ModeNaive, ModeBitset)
}

// Is makes errors.Is(err, ErrConfiguration) match.
func (e *ErrInvalidMode) Is(target error) bool { return target == ErrConfiguration }

// ErrInvalidBitmap indicates an unrecognized bitmap kind.
type ErrInvalidBitmap struct {
	Bitmap Bitmap
}

func (e *ErrInvalidBitmap) Error() string {
	return fmt.Sprintf("invalid bitmap kind: %d", e.Bitmap)
}

// Is makes errors.Is(err, ErrConfiguration) match.
func (e *ErrInvalidBitmap) Is(target error) bool { return target == ErrConfiguration }

// ErrDuplicateSetID indicates that an ordered collection repeats a set ID.
type ErrDuplicateSetID struct {
	ID any
}

func (e *ErrDuplicateSetID) Error() string {
	return fmt.Sprintf("duplicate set id: %v", e.ID)
}

// Is makes errors.Is(err, ErrConfiguration) match.
func (e *ErrDuplicateSetID) Is(target error) bool { return target == ErrConfiguration }

// ErrInvalidElement indicates an element that does not equal itself, such as
// a floating-point NaN. Such elements can never be marked covered.
type ErrInvalidElement struct {
	ID      any
	Element any
}

func (e *ErrInvalidElement) Error() string {
	return fmt.Sprintf("set %v: element %v does not equal itself", e.ID, e.Element)
}

// Is makes errors.Is(err, ErrConfiguration) match.
func (e *ErrInvalidElement) Is(target error) bool { return target == ErrConfiguration }

// maxListedUncovered caps the elements spelled out in ErrUncoverableInput.Error.
const maxListedUncovered = 16

// ErrUncoverableInput indicates that the greedy search could not reach full
// coverage within its round budget.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrUncoverableInput struct {
	Mode      Mode
	Round     int
	Remaining int
	// Uncovered lists the elements left uncovered, in first-seen order.
	Uncovered []any
	cause     error
}

func (e *ErrUncoverableInput) Error() string {
	msg := fmt.Sprintf("%s: %d elements uncovered after %d rounds", e.Mode, e.Remaining, e.Round)
	if len(e.Uncovered) == 0 {
		return msg
	}
	listed := e.Uncovered[:min(len(e.Uncovered), maxListedUncovered)]
	if len(listed) < len(e.Uncovered) {
		return fmt.Sprintf("%s: %v ...", msg, listed)
	}
	return fmt.Sprintf("%s: %v", msg, listed)
}

func (e *ErrUncoverableInput) Unwrap() error { return e.cause }

// Is makes errors.Is(err, ErrUncoverable) match.
func (e *ErrUncoverableInput) Is(target error) bool { return target == ErrUncoverable }

// ErrIncompleteCover is returned by Verify when a cover misses elements or
// references unknown sets.
type ErrIncompleteCover struct {
	Missing   int
	UnknownID any
}

func (e *ErrIncompleteCover) Error() string {
	if e.UnknownID != nil {
		return fmt.Sprintf("cover references unknown set id: %v", e.UnknownID)
	}
	return fmt.Sprintf("cover misses %d elements", e.Missing)
}

// Is makes errors.Is(err, ErrUncoverable) match.
func (e *ErrIncompleteCover) Is(target error) bool { return target == ErrUncoverable }

// translateError maps engine errors to public ones. leftover, if set, is
// only called for uncoverable input.
func translateError[T any](mode Mode, err error, leftover func() []T) error {
	if err == nil {
		return nil
	}

	var ue *greedy.UncoverableError
	if errors.As(err, &ue) {
		out := &ErrUncoverableInput{Mode: mode, Round: ue.Round, Remaining: ue.Remaining, cause: err}
		if leftover != nil {
			for _, e := range leftover() {
				out.Uncovered = append(out.Uncovered, e)
			}
		}
		return out
	}

	return err
}
