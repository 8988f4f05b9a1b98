package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alcyxob/fitcoach/internal/validation"
)

func TestProgress(t *testing.T) {
	when := time.Now()
	p, err := NewProgress(when, 80.0, 24.0, "bob.brown@university.edu")
	require.NoError(t, err)
	assert.Equal(t, 80.0, p.Weight())
	assert.Equal(t, 24.0, p.BMI())

	_, err = NewProgress(time.Time{}, 20, 60, "")
	var errs validation.Errors
	require.True(t, errors.As(err, &errs))
	assert.Equal(t, []string{"date", "weight", "bmi"}, errs.Fields())

	_, ok := CreateProgress(when.Add(-365*24*time.Hour), 75.5, 22.5, "")
	assert.True(t, ok)

	var gated Progress
	assert.True(t, gated.SetWeight(75.5))
	assert.False(t, gated.SetWeight(301))
	assert.False(t, gated.SetBMI(9.99))
	assert.False(t, gated.SetDate(time.Time{}))
	assert.Equal(t, 75.5, gated.Weight())
	assert.Equal(t, 0.0, gated.BMI())
	assert.Contains(t, gated.String(), "client=No Client")
}
