package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidDataError(t *testing.T) {
	err := NewInvalidDataError("Invalid reps value in exercises.csv at line 3", "reps", "0")
	assert.Equal(t, "Invalid reps value in exercises.csv at line 3 [Field: reps, Invalid Value: '0']", err.Error())
	assert.True(t, errors.Is(err, ErrInvalid))

	_, verr := NewExercise("Squat", 0, 3)
	ide, ok := AsInvalidData(verr)
	require.True(t, ok)
	assert.Equal(t, "reps", ide.Field)
	assert.Equal(t, "0", ide.Value)

	_, ok = AsInvalidData(errors.New("boom"))
	assert.False(t, ok)
}
