package importer

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/alcyxob/fitcoach/internal/domain"
	"github.com/alcyxob/fitcoach/internal/validation"
)

type userRow struct {
	FirstName string `csv:"firstName" validate:"person_name"`
	LastName  string `csv:"lastName" validate:"person_name"`
	Email     string `csv:"email" validate:"email_addr"`
}

type coachRow struct {
	FirstName       string `csv:"firstName" validate:"person_name"`
	LastName        string `csv:"lastName" validate:"person_name"`
	Email           string `csv:"email" validate:"email_addr"`
	ExperienceYears int    `csv:"experienceYears" validate:"experience_years"`
}

type exerciseRow struct {
	Name string `csv:"name" validate:"exercise_name"`
	Reps int    `csv:"reps" validate:"reps"`
	Sets int    `csv:"sets" validate:"sets"`
}

// fieldLabels turn csv field names into the words used in row messages.
var fieldLabels = map[string]string{
	"firstName":       "first name",
	"lastName":        "last name",
	"email":           "email",
	"experienceYears": "experience years",
	"name":            "exercise name",
	"reps":            "reps value",
	"sets":            "sets value",
}

// newValidator registers the row tags on top of the validation package.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("csv"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	stringRule := func(fn func(string) bool) validator.Func {
		return func(fl validator.FieldLevel) bool { return fn(fl.Field().String()) }
	}
	intRule := func(fn func(int) bool) validator.Func {
		return func(fl validator.FieldLevel) bool { return fn(int(fl.Field().Int())) }
	}

	rules := map[string]validator.Func{
		"person_name":      stringRule(validation.IsValidName),
		"email_addr":       stringRule(func(s string) bool { return validation.IsValidEmail(validation.FormatEmail(s)) }),
		"exercise_name":    stringRule(validation.IsValidExerciseName),
		"experience_years": intRule(validation.IsValidExperienceYears),
		"reps":             intRule(validation.IsValidReps),
		"sets":             intRule(validation.IsValidSets),
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("importer: register %q: %v", tag, err))
		}
	}
	return v
}

// checkRow validates row and describes the first failing field.
func (im *Importer) checkRow(file string, line int, row any) *domain.InvalidDataError {
	err := im.validate.Struct(row)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &domain.InvalidDataError{
			Message: fmt.Sprintf("Invalid data in %s at line %d", file, line),
			Err:     err,
		}
	}
	fe := verrs[0]
	label, ok := fieldLabels[fe.Field()]
	if !ok {
		label = fe.Field()
	}
	return domain.NewInvalidDataError(
		fmt.Sprintf("Invalid %s in %s at line %d", label, file, line),
		fe.Field(), fmt.Sprint(fe.Value()),
	)
}
