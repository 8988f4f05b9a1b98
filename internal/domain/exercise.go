// internal/domain/exercise.go
package domain

import (
	"fmt"
	"strings"

	"github.com/alcyxob/fitcoach/internal/validation"
)

// Exercise is an immutable exercise prescription. The only way to obtain a
// non-zero Exercise is through NewExercise or CreateExercise, so every
// non-zero value has a valid name, reps and sets.
type Exercise struct {
	name string
	reps int
	sets int
}

func (e Exercise) Name() string { return e.name }
func (e Exercise) Reps() int    { return e.reps }
func (e Exercise) Sets() int    { return e.sets }

// IsZero reports whether e was never constructed.
func (e Exercise) IsZero() bool { return e == Exercise{} }

// NewExercise checks name, reps and sets together and fails as a whole.
func NewExercise(name string, reps, sets int) (Exercise, error) {
	var errs validation.Errors
	errs.Check("name", name, validation.IsValidExerciseName(name), "must be 1-100 characters")
	errs.Check("reps", reps, validation.IsValidReps(reps), "must be between 1 and 100")
	errs.Check("sets", sets, validation.IsValidSets(sets), "must be between 1 and 10")
	if err := errs.Err(); err != nil {
		return Exercise{}, err
	}
	return Exercise{name: strings.TrimSpace(name), reps: reps, sets: sets}, nil
}

// CreateExercise is the non-failing form of NewExercise.
func CreateExercise(name string, reps, sets int) (Exercise, bool) {
	e, err := NewExercise(name, reps, sets)
	return e, err == nil
}

// ExerciseIdentity keys exercises by name.
func ExerciseIdentity(e Exercise) string {
	return e.name
}

func (e Exercise) String() string {
	return fmt.Sprintf("Exercise{name='%s', reps=%d, sets=%d}", e.name, e.reps, e.sets)
}
