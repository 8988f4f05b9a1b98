package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelParsing(t *testing.T) {
	level, ok := ParseLevel("beg")
	require.True(t, ok)
	assert.Equal(t, LevelBeginner, level)

	_, ok = ParseLevel("xyz")
	assert.False(t, ok)

	for token, want := range map[string]Level{
		"Beginner": LevelBeginner, "INTERMEDIATE": LevelIntermediate, " inter": LevelIntermediate,
		"advanced": LevelAdvanced, "Adv ": LevelAdvanced,
	} {
		got, ok := ParseLevel(token)
		require.True(t, ok, token)
		assert.Equal(t, want, got, token)
	}

	strict, ok := LevelFromName("ADVANCED")
	require.True(t, ok)
	assert.Equal(t, LevelAdvanced, strict)
	_, ok = LevelFromName("advanced")
	assert.False(t, ok)

	assert.Equal(t, []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}, Levels())
	assert.Equal(t, "UNKNOWN", Level(0).String())
}

func TestIntensityParsing(t *testing.T) {
	for token, want := range map[string]Intensity{
		"low": IntensityLow, "MED": IntensityMedium, "Medium": IntensityMedium, " high ": IntensityHigh,
	} {
		got, ok := ParseIntensity(token)
		require.True(t, ok, token)
		assert.Equal(t, want, got, token)
	}
	_, ok := ParseIntensity("extreme")
	assert.False(t, ok)

	strict, ok := IntensityFromName("HIGH")
	require.True(t, ok)
	assert.Equal(t, IntensityHigh, strict)
	assert.Len(t, Intensities(), 3)
}
