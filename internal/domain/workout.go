package domain

import (
	"fmt"
	"slices"
	"strings"

	"github.com/alcyxob/fitcoach/internal/validation"
)

// Workout is an immutable session: a title, a duration, an intensity and
// an ordered list of exercises copied at construction.
type Workout struct {
	title           string
	durationMinutes int
	intensity       Intensity
	exercises       []Exercise
}

func (w Workout) Title() string         { return w.title }
func (w Workout) DurationMinutes() int  { return w.durationMinutes }
func (w Workout) Intensity() Intensity  { return w.intensity }
func (w Workout) ExerciseCount() int    { return len(w.exercises) }
func (w Workout) Exercises() []Exercise { return slices.Clone(w.exercises) }
func (w Workout) IsZero() bool          { return w.title == "" && w.durationMinutes == 0 && !w.intensity.Valid() }

// Equal compares every field including the exercise list, in order.
func (w Workout) Equal(other Workout) bool {
	return w.title == other.title &&
		w.durationMinutes == other.durationMinutes &&
		w.intensity == other.intensity &&
		slices.Equal(w.exercises, other.exercises)
}

// NewWorkout validates all fields and copies exercises. Zero-value
// exercises in the list are rejected.
func NewWorkout(title string, durationMinutes int, intensity Intensity, exercises []Exercise) (Workout, error) {
	var errs validation.Errors
	errs.Check("title", title, validation.IsValidTitle(title), "must be 3-50 characters")
	errs.Check("durationMinutes", durationMinutes, validation.IsValidDuration(durationMinutes), "must be between 5 and 180")
	errs.Check("intensity", intensity, intensity.Valid(), "must be LOW, MEDIUM or HIGH")
	for i, e := range exercises {
		errs.Check(fmt.Sprintf("exercises[%d]", i), e, !e.IsZero(), "must be a constructed exercise")
	}
	if err := errs.Err(); err != nil {
		return Workout{}, err
	}
	copied := make([]Exercise, len(exercises))
	copy(copied, exercises)
	return Workout{
		title:           strings.TrimSpace(title),
		durationMinutes: durationMinutes,
		intensity:       intensity,
		exercises:       copied,
	}, nil
}

// CreateWorkout is the non-failing form of NewWorkout.
func CreateWorkout(title string, durationMinutes int, intensity Intensity, exercises []Exercise) (Workout, bool) {
	w, err := NewWorkout(title, durationMinutes, intensity, exercises)
	return w, err == nil
}

// CreateWorkoutFromString parses the intensity token first.
func CreateWorkoutFromString(title string, durationMinutes int, intensityToken string, exercises []Exercise) (Workout, bool) {
	intensity, ok := ParseIntensity(intensityToken)
	if !ok {
		return Workout{}, false
	}
	return CreateWorkout(title, durationMinutes, intensity, exercises)
}

// WorkoutIdentity keys workouts by title.
func WorkoutIdentity(w Workout) string {
	return w.title
}

func (w Workout) String() string {
	return fmt.Sprintf("Workout{title='%s', durationMinutes=%d, intensity='%s', exercises=%d}",
		w.title, w.durationMinutes, w.intensity, len(w.exercises))
}
