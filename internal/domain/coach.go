package domain

import (
	"fmt"

	"github.com/alcyxob/fitcoach/internal/validation"
)

// Coach is a person who trains clients.
type Coach struct {
	Person
	experienceYears int
}

func (c *Coach) ExperienceYears() int { return c.experienceYears }

// SetExperienceYears applies years only when it is within 0-50.
func (c *Coach) SetExperienceYears(years int) bool {
	if !validation.IsValidExperienceYears(years) {
		return false
	}
	c.experienceYears = years
	return true
}

// NewCoach validates all fields before building the coach.
func NewCoach(firstName, lastName, email string, experienceYears int) (*Coach, error) {
	var errs validation.Errors
	checkPerson(&errs, firstName, lastName, email)
	errs.Check("experienceYears", experienceYears, validation.IsValidExperienceYears(experienceYears), "must be between 0 and 50")
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return &Coach{
		Person:          newPerson(firstName, lastName, email),
		experienceYears: experienceYears,
	}, nil
}

// CreateCoach derives the email from the names.
func CreateCoach(firstName, lastName string, experienceYears int) (*Coach, bool) {
	if !validation.IsValidExperienceYears(experienceYears) ||
		!validation.IsValidName(firstName) || !validation.IsValidName(lastName) {
		return nil, false
	}
	email, ok := validation.GenerateEmailFromNames(firstName, lastName)
	if !ok {
		return nil, false
	}
	c, err := NewCoach(firstName, lastName, email, experienceYears)
	return c, err == nil
}

// CoachIdentity keys coaches by email.
func CoachIdentity(c *Coach) string {
	if c == nil {
		return ""
	}
	return c.email
}

func (c *Coach) String() string {
	return fmt.Sprintf("Coach{firstName='%s', lastName='%s', email='%s', experienceYears=%d}",
		c.firstName, c.lastName, c.email, c.experienceYears)
}
