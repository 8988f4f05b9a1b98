package domain

import (
	"fmt"

	"github.com/alcyxob/fitcoach/internal/validation"
)

// Client is a person being coached. The coach is referenced by its email,
// the identity it is stored under; the client never owns the coach.
type Client struct {
	Person
	level      Level
	coachEmail string
}

func (c *Client) Level() Level       { return c.level }
func (c *Client) CoachEmail() string { return c.coachEmail }
func (c *Client) HasCoach() bool     { return c.coachEmail != "" }

// SetLevel ignores unknown levels.
func (c *Client) SetLevel(level Level) bool {
	if !level.Valid() {
		return false
	}
	c.level = level
	return true
}

// SetLevelString parses token with ParseLevel before applying it.
func (c *Client) SetLevelString(token string) bool {
	level, ok := ParseLevel(token)
	if !ok {
		return false
	}
	return c.SetLevel(level)
}

// AssignCoach points the client at the coach stored under email.
func (c *Client) AssignCoach(email string) bool {
	formatted := validation.FormatEmail(email)
	if !validation.IsValidEmail(formatted) {
		return false
	}
	c.coachEmail = formatted
	return true
}

func (c *Client) ClearCoach() {
	c.coachEmail = ""
}

// NewClient validates all fields before building the client. coachEmail
// may be empty for a client without a coach.
func NewClient(firstName, lastName, email string, level Level, coachEmail string) (*Client, error) {
	var errs validation.Errors
	checkPerson(&errs, firstName, lastName, email)
	errs.Check("level", level, level.Valid(), "must be BEGINNER, INTERMEDIATE or ADVANCED")
	if coachEmail != "" {
		errs.Check("coachEmail", coachEmail, validation.IsValidEmail(validation.FormatEmail(coachEmail)), "must be a valid email address")
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return &Client{
		Person:     newPerson(firstName, lastName, email),
		level:      level,
		coachEmail: validation.FormatEmail(coachEmail),
	}, nil
}

// CreateClient derives the email from the names.
func CreateClient(firstName, lastName string, level Level, coachEmail string) (*Client, bool) {
	if !level.Valid() || !validation.IsValidName(firstName) || !validation.IsValidName(lastName) {
		return nil, false
	}
	email, ok := validation.GenerateEmailFromNames(firstName, lastName)
	if !ok {
		return nil, false
	}
	c, err := NewClient(firstName, lastName, email, level, coachEmail)
	return c, err == nil
}

// CreateClientFromString is CreateClient with a level token such as "beg".
func CreateClientFromString(firstName, lastName, levelToken, coachEmail string) (*Client, bool) {
	level, ok := ParseLevel(levelToken)
	if !ok {
		return nil, false
	}
	return CreateClient(firstName, lastName, level, coachEmail)
}

// ClientIdentity keys clients by email.
func ClientIdentity(c *Client) string {
	if c == nil {
		return ""
	}
	return c.email
}

func (c *Client) String() string {
	coach := c.coachEmail
	if coach == "" {
		coach = "No Coach"
	}
	return fmt.Sprintf("Client{firstName='%s', lastName='%s', email='%s', level='%s', coach=%s}",
		c.firstName, c.lastName, c.email, c.level, coach)
}
