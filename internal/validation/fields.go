package validation

import (
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Field bounds. Changing any of these changes what the importer and the
// domain constructors accept.
const (
	MinNameLength = 2
	MaxNameLength = 50

	MinExperienceYears = 0
	MaxExperienceYears = 50

	MinExerciseNameLength = 1
	MaxExerciseNameLength = 100
	MinReps               = 1
	MaxReps               = 100
	MinSets               = 1
	MaxSets               = 10

	MinTitleLength = 3
	MaxTitleLength = 50
	MinDuration    = 5
	MaxDuration    = 180

	MinWeight = 30.0
	MaxWeight = 300.0
	MinBMI    = 10.0
	MaxBMI    = 50.0
)

// GeneratedEmailDomain is appended by GenerateEmailFromNames.
const GeneratedEmailDomain = "university.edu"

var emailPattern = regexp.MustCompile(`^[\w.-]+@[\w-]+(\.[\w-]+)*\.[a-zA-Z]{2,}$`)

// Casers are stateful, so each call gets its own.
func lower(s string) string { return cases.Lower(language.Und).String(s) }
func upper(s string) string { return cases.Upper(language.Und).String(s) }

func IsValidName(name string) bool {
	return LengthBetween(name, MinNameLength, MaxNameLength)
}

// IsValidEmail expects an already formatted address (see FormatEmail).
func IsValidEmail(email string) bool {
	return MatchesPattern(email, emailPattern)
}

// FormatEmail trims and lower-cases an address.
func FormatEmail(email string) string {
	return lower(strings.TrimSpace(email))
}

func IsValidExperienceYears(years int) bool {
	return IntInRange(years, MinExperienceYears, MaxExperienceYears)
}

func IsValidExerciseName(name string) bool {
	return LengthBetween(name, MinExerciseNameLength, MaxExerciseNameLength)
}

func IsValidReps(reps int) bool {
	return IntInRange(reps, MinReps, MaxReps)
}

func IsValidSets(sets int) bool {
	return IntInRange(sets, MinSets, MaxSets)
}

func IsValidTitle(title string) bool {
	return LengthBetween(title, MinTitleLength, MaxTitleLength)
}

func IsValidDuration(minutes int) bool {
	return IntInRange(minutes, MinDuration, MaxDuration)
}

// IsValidStartDate requires start to be strictly after now. Equal is rejected.
func IsValidStartDate(start, now time.Time) bool {
	if start.IsZero() {
		return false
	}
	return start.After(now)
}

func IsValidWeight(weight float64) bool {
	return FloatInRange(weight, MinWeight, MaxWeight)
}

func IsValidBMI(bmi float64) bool {
	return FloatInRange(bmi, MinBMI, MaxBMI)
}

// IsValidProgressDate only rejects the zero time.
func IsValidProgressDate(date time.Time) bool {
	return !date.IsZero()
}

// CapitalizeText trims text, upper-cases its first rune and lower-cases the
// rest. Whitespace-only input is returned untouched.
func CapitalizeText(text string) string {
	if text == "" || strings.IndexFunc(text, func(r rune) bool { return !unicode.IsSpace(r) }) < 0 {
		return text
	}
	trimmed := strings.TrimSpace(text)
	_, size := utf8.DecodeRuneInString(trimmed)
	return upper(trimmed[:size]) + lower(trimmed[size:])
}

// GenerateEmailFromNames builds first.last@university.edu from trimmed,
// lower-cased names. ok is false when either name is blank.
func GenerateEmailFromNames(firstName, lastName string) (string, bool) {
	first := strings.TrimSpace(firstName)
	last := strings.TrimSpace(lastName)
	if first == "" || last == "" {
		return "", false
	}
	return lower(first) + "." + lower(last) + "@" + GeneratedEmailDomain, true
}

// FormatFullName joins the non-empty parts with a single space.
func FormatFullName(firstName, lastName string) string {
	parts := make([]string, 0, 2)
	for _, p := range []string{firstName, lastName} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
