package domain

import "strings"

// Level is a client's training level. The zero value means unset.
type Level int

const (
	LevelBeginner Level = iota + 1
	LevelIntermediate
	LevelAdvanced
)

var levelNames = map[Level]string{
	LevelBeginner:     "BEGINNER",
	LevelIntermediate: "INTERMEDIATE",
	LevelAdvanced:     "ADVANCED",
}

// Levels returns every level in ascending order.
func Levels() []Level {
	return []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "UNKNOWN"
}

func (l Level) Valid() bool {
	_, ok := levelNames[l]
	return ok
}

// ParseLevel accepts full names and short forms (beg, inter, adv) in any case.
func ParseLevel(value string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "beginner", "beg":
		return LevelBeginner, true
	case "intermediate", "inter":
		return LevelIntermediate, true
	case "advanced", "adv":
		return LevelAdvanced, true
	}
	return 0, false
}

// LevelFromName is the strict lookup by exact enum name ("BEGINNER").
func LevelFromName(name string) (Level, bool) {
	for l, n := range levelNames {
		if n == name {
			return l, true
		}
	}
	return 0, false
}

// Intensity is a workout's effort level. The zero value means unset.
type Intensity int

const (
	IntensityLow Intensity = iota + 1
	IntensityMedium
	IntensityHigh
)

var intensityNames = map[Intensity]string{
	IntensityLow:    "LOW",
	IntensityMedium: "MEDIUM",
	IntensityHigh:   "HIGH",
}

// Intensities returns every intensity in ascending order.
func Intensities() []Intensity {
	return []Intensity{IntensityLow, IntensityMedium, IntensityHigh}
}

func (i Intensity) String() string {
	if name, ok := intensityNames[i]; ok {
		return name
	}
	return "UNKNOWN"
}

func (i Intensity) Valid() bool {
	_, ok := intensityNames[i]
	return ok
}

// ParseIntensity accepts low, medium/med and high in any case.
func ParseIntensity(value string) (Intensity, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "low":
		return IntensityLow, true
	case "medium", "med":
		return IntensityMedium, true
	case "high":
		return IntensityHigh, true
	}
	return 0, false
}

// IntensityFromName is the strict lookup by exact enum name ("LOW").
func IntensityFromName(name string) (Intensity, bool) {
	for i, n := range intensityNames {
		if n == name {
			return i, true
		}
	}
	return 0, false
}
