package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alcyxob/fitcoach/internal/domain"
)

// AddExercise validates and stores an exercise.
func (s *rosterService) AddExercise(ctx context.Context, name string, reps, sets int) (domain.Exercise, error) {
	e, err := domain.NewExercise(name, reps, sets)
	if err != nil {
		return domain.Exercise{}, invalid("exercise", err)
	}
	if err := addError("exercise", e.Name(), s.repos.Exercises.Add(e)); err != nil {
		return domain.Exercise{}, err
	}
	return e, nil
}

// AddWorkout builds a workout from stored exercises, in the given order.
func (s *rosterService) AddWorkout(ctx context.Context, title string, durationMinutes int, intensity domain.Intensity, exerciseNames []string) (domain.Workout, error) {
	exercises := make([]domain.Exercise, 0, len(exerciseNames))
	for _, name := range exerciseNames {
		e, ok := s.repos.Exercises.FindByIdentity(name)
		if !ok {
			return domain.Workout{}, fmt.Errorf("%w: %s", ErrExerciseNotFound, name)
		}
		exercises = append(exercises, e)
	}
	w, err := domain.NewWorkout(title, durationMinutes, intensity, exercises)
	if err != nil {
		return domain.Workout{}, invalid("workout", err)
	}
	if err := addError("workout", w.Title(), s.repos.Workouts.Add(w)); err != nil {
		return domain.Workout{}, err
	}
	s.logger.Info("workout added", slog.String("title", w.Title()), slog.Int("exercises", w.ExerciseCount()))
	return w, nil
}
