package repository

import (
	"github.com/alcyxob/fitcoach/internal/domain"
)

// Error constants for the repository layer
var (
	ErrNilIdentityFunc = RepositoryError("identity function is nil")
	ErrNotFound        = RepositoryError("not found")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// IdentityFunc derives the key an item is stored under. An empty or
// whitespace-only result marks the item as unusable.
type IdentityFunc[T any] func(item T) string

// AddResult reports what Add did with an item.
type AddResult int

const (
	Added AddResult = iota
	RejectedInvalid
	RejectedDuplicate
)

func (r AddResult) String() string {
	switch r {
	case Added:
		return "added"
	case RejectedInvalid:
		return "rejected_invalid"
	case RejectedDuplicate:
		return "rejected_duplicate"
	}
	return "unknown"
}

// Recorder receives one call per repository write. metrics.Collector
// satisfies it.
type Recorder interface {
	RecordAdd(repository string, result string)
	RecordDelete(repository string, found bool)
}

// Store is the contract every identity-keyed repository satisfies.
type Store[T any] interface {
	Add(item T) AddResult
	Delete(identity string) bool
	FindByIdentity(identity string) (T, bool)
	GetAll() []T
	Len() int
}

// UserRepository stores users keyed by email.
type UserRepository interface {
	Store[*domain.User]
}

// CoachRepository stores coaches keyed by email.
type CoachRepository interface {
	Store[*domain.Coach]
}

// ClientRepository stores clients keyed by email.
type ClientRepository interface {
	Store[*domain.Client]
}

// ExerciseRepository stores exercises keyed by name.
type ExerciseRepository interface {
	Store[domain.Exercise]
}

// WorkoutRepository stores workouts keyed by title.
type WorkoutRepository interface {
	Store[domain.Workout]
}
