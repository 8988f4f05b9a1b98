package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/alcyxob/fitcoach/internal/domain"
	"github.com/alcyxob/fitcoach/internal/importer"
	"github.com/alcyxob/fitcoach/internal/repository"
)

// --- Error Definitions ---
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrDuplicate        = errors.New("identity already registered")
	ErrCoachNotFound    = errors.New("coach not found")
	ErrClientNotFound   = errors.New("client not found")
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrWorkoutNotFound  = errors.New("workout not found")
)

// --- Service Interface ---
type RosterService interface {
	// People
	RegisterUser(ctx context.Context, firstName, lastName, email string) (*domain.User, error)
	RegisterCoach(ctx context.Context, firstName, lastName, email string, experienceYears int) (*domain.Coach, error)
	EnrollClient(ctx context.Context, firstName, lastName, email string, level domain.Level, coachEmail string) (*domain.Client, error)
	CoachOf(ctx context.Context, clientEmail string) (*domain.Coach, error)
	RemoveCoach(ctx context.Context, coachEmail string) error
	RemoveClient(ctx context.Context, clientEmail string) error

	// Training content
	AddExercise(ctx context.Context, name string, reps, sets int) (domain.Exercise, error)
	AddWorkout(ctx context.Context, title string, durationMinutes int, intensity domain.Intensity, exerciseNames []string) (domain.Workout, error)
	SchedulePlan(ctx context.Context, clientEmail string, startDate time.Time, workoutTitles []string) (*domain.Plan, error)
	PlansFor(ctx context.Context, clientEmail string) ([]*domain.Plan, error)

	// Progress log
	RecordProgress(ctx context.Context, clientEmail string, date time.Time, weight, bmi float64) (*domain.Progress, error)
	ProgressFor(ctx context.Context, clientEmail string) ([]*domain.Progress, error)

	// Bulk load
	Seed(ctx context.Context, ds *importer.Dataset) SeedSummary

	// Listings
	Users(ctx context.Context) []*domain.User
	Coaches(ctx context.Context) []*domain.Coach
	Clients(ctx context.Context) []*domain.Client
	Exercises(ctx context.Context) []domain.Exercise
	Workouts(ctx context.Context) []domain.Workout
}

// SeedSummary counts how an imported dataset landed in the repositories.
type SeedSummary struct {
	Added      int
	Duplicates int
	Invalid    int
}

func (s *SeedSummary) count(r repository.AddResult) {
	switch r {
	case repository.Added:
		s.Added++
	case repository.RejectedDuplicate:
		s.Duplicates++
	default:
		s.Invalid++
	}
}

// Repositories bundles the stores the roster service writes to.
type Repositories struct {
	Users     repository.UserRepository
	Coaches   repository.CoachRepository
	Clients   repository.ClientRepository
	Exercises repository.ExerciseRepository
	Workouts  repository.WorkoutRepository
}

// NewMemoryRepositories builds in-memory stores keyed the usual way:
// people by email, exercises by name, workouts by title.
func NewMemoryRepositories(logger *slog.Logger, recorder repository.Recorder) (Repositories, error) {
	opts := func(name string) []repository.Option {
		o := []repository.Option{repository.WithName(name)}
		if logger != nil {
			o = append(o, repository.WithLogger(logger))
		}
		if recorder != nil {
			o = append(o, repository.WithMetrics(recorder))
		}
		return o
	}

	users, err := repository.NewMemory(domain.UserIdentity, opts("users")...)
	if err != nil {
		return Repositories{}, err
	}
	coaches, err := repository.NewMemory(domain.CoachIdentity, opts("coaches")...)
	if err != nil {
		return Repositories{}, err
	}
	clients, err := repository.NewMemory(domain.ClientIdentity, opts("clients")...)
	if err != nil {
		return Repositories{}, err
	}
	exercises, err := repository.NewMemory(domain.ExerciseIdentity, opts("exercises")...)
	if err != nil {
		return Repositories{}, err
	}
	workouts, err := repository.NewMemory(domain.WorkoutIdentity, opts("workouts")...)
	if err != nil {
		return Repositories{}, err
	}
	return Repositories{
		Users:     users,
		Coaches:   coaches,
		Clients:   clients,
		Exercises: exercises,
		Workouts:  workouts,
	}, nil
}

// --- Service Implementation ---

// rosterService implements the RosterService interface.
type rosterService struct {
	repos  Repositories
	logger *slog.Logger

	mu       sync.RWMutex
	plans    map[string][]*domain.Plan     // by client email
	progress map[string][]*domain.Progress // by client email, append-only
}

// NewRosterService creates a new instance of rosterService.
func NewRosterService(repos Repositories, logger *slog.Logger) RosterService {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &rosterService{
		repos:    repos,
		logger:   logger,
		plans:    make(map[string][]*domain.Plan),
		progress: make(map[string][]*domain.Progress),
	}
}

// addError turns a rejected add into an error.
func addError(kind, identity string, r repository.AddResult) error {
	switch r {
	case repository.Added:
		return nil
	case repository.RejectedDuplicate:
		return fmt.Errorf("%w: %s %q", ErrDuplicate, kind, identity)
	}
	return fmt.Errorf("%w: %s has no usable identity", ErrValidationFailed, kind)
}

func invalid(kind string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrValidationFailed, kind, err)
}

// === Bulk load ===

// Seed adds every imported user, coach and exercise. Duplicates keep the
// first stored value and are only counted.
func (s *rosterService) Seed(ctx context.Context, ds *importer.Dataset) SeedSummary {
	var sum SeedSummary
	if ds == nil {
		return sum
	}
	for _, u := range ds.Users {
		sum.count(s.repos.Users.Add(u))
	}
	for _, c := range ds.Coaches {
		sum.count(s.repos.Coaches.Add(c))
	}
	for _, e := range ds.Exercises {
		sum.count(s.repos.Exercises.Add(e))
	}
	s.logger.Info("dataset seeded",
		slog.String("run_id", ds.RunID),
		slog.Int("added", sum.Added),
		slog.Int("duplicates", sum.Duplicates),
		slog.Int("invalid", sum.Invalid),
	)
	return sum
}

// === Listings ===

func (s *rosterService) Users(ctx context.Context) []*domain.User        { return s.repos.Users.GetAll() }
func (s *rosterService) Coaches(ctx context.Context) []*domain.Coach     { return s.repos.Coaches.GetAll() }
func (s *rosterService) Clients(ctx context.Context) []*domain.Client    { return s.repos.Clients.GetAll() }
func (s *rosterService) Exercises(ctx context.Context) []domain.Exercise { return s.repos.Exercises.GetAll() }
func (s *rosterService) Workouts(ctx context.Context) []domain.Workout   { return s.repos.Workouts.GetAll() }
