package domain

import (
	"fmt"

	"github.com/alcyxob/fitcoach/internal/validation"
)

// Person holds the name and email shared by users, coaches and clients.
// Setters only apply values that pass validation and report whether they did.
type Person struct {
	firstName string
	lastName  string
	email     string
}

func (p *Person) FirstName() string { return p.firstName }
func (p *Person) LastName() string  { return p.lastName }
func (p *Person) Email() string     { return p.email }

// FullName is "First Last", or whichever part is set.
func (p *Person) FullName() string {
	return validation.FormatFullName(p.firstName, p.lastName)
}

// SetFirstName stores the capitalized name if it is valid.
func (p *Person) SetFirstName(name string) bool {
	if !validation.IsValidName(name) {
		return false
	}
	p.firstName = validation.CapitalizeText(name)
	return true
}

// SetLastName stores the capitalized name if it is valid.
func (p *Person) SetLastName(name string) bool {
	if !validation.IsValidName(name) {
		return false
	}
	p.lastName = validation.CapitalizeText(name)
	return true
}

// SetEmail stores the trimmed, lower-cased address if it is valid.
func (p *Person) SetEmail(email string) bool {
	formatted := validation.FormatEmail(email)
	if !validation.IsValidEmail(formatted) {
		return false
	}
	p.email = formatted
	return true
}

func checkPerson(errs *validation.Errors, firstName, lastName, email string) {
	errs.Check("firstName", firstName, validation.IsValidName(firstName), "must be 2-50 characters")
	errs.Check("lastName", lastName, validation.IsValidName(lastName), "must be 2-50 characters")
	errs.Check("email", email, validation.IsValidEmail(validation.FormatEmail(email)), "must be a valid email address")
}

func newPerson(firstName, lastName, email string) Person {
	return Person{
		firstName: validation.CapitalizeText(firstName),
		lastName:  validation.CapitalizeText(lastName),
		email:     validation.FormatEmail(email),
	}
}

// User is a plain account with no coaching role.
type User struct {
	Person
}

// NewUser validates every field and returns either a complete user or the
// full list of field failures.
func NewUser(firstName, lastName, email string) (*User, error) {
	var errs validation.Errors
	checkPerson(&errs, firstName, lastName, email)
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return &User{Person: newPerson(firstName, lastName, email)}, nil
}

// CreateUser derives the email from the names. ok is false if any check fails.
func CreateUser(firstName, lastName string) (*User, bool) {
	if !validation.IsValidName(firstName) || !validation.IsValidName(lastName) {
		return nil, false
	}
	email, ok := validation.GenerateEmailFromNames(firstName, lastName)
	if !ok {
		return nil, false
	}
	u, err := NewUser(firstName, lastName, email)
	return u, err == nil
}

// UserIdentity keys users by email.
func UserIdentity(u *User) string {
	if u == nil {
		return ""
	}
	return u.email
}

func (u *User) String() string {
	return fmt.Sprintf("User{firstName='%s', lastName='%s', email='%s'}", u.firstName, u.lastName, u.email)
}
