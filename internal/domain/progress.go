package domain

import (
	"fmt"
	"time"

	"github.com/alcyxob/fitcoach/internal/validation"
)

// Progress is one body measurement taken for a client.
type Progress struct {
	date        time.Time
	weight      float64
	bmi         float64
	clientEmail string
}

func (p *Progress) Date() time.Time     { return p.date }
func (p *Progress) Weight() float64     { return p.weight }
func (p *Progress) BMI() float64        { return p.bmi }
func (p *Progress) ClientEmail() string { return p.clientEmail }

func (p *Progress) SetDate(date time.Time) bool {
	if !validation.IsValidProgressDate(date) {
		return false
	}
	p.date = date
	return true
}

func (p *Progress) SetWeight(weight float64) bool {
	if !validation.IsValidWeight(weight) {
		return false
	}
	p.weight = weight
	return true
}

func (p *Progress) SetBMI(bmi float64) bool {
	if !validation.IsValidBMI(bmi) {
		return false
	}
	p.bmi = bmi
	return true
}

func (p *Progress) AssignClient(email string) bool {
	formatted := validation.FormatEmail(email)
	if !validation.IsValidEmail(formatted) {
		return false
	}
	p.clientEmail = formatted
	return true
}

// NewProgress validates every measurement before building the entry.
func NewProgress(date time.Time, weight, bmi float64, clientEmail string) (*Progress, error) {
	var errs validation.Errors
	errs.Check("date", date, validation.IsValidProgressDate(date), "is required")
	errs.Check("weight", weight, validation.IsValidWeight(weight), "must be between 30 and 300")
	errs.Check("bmi", bmi, validation.IsValidBMI(bmi), "must be between 10 and 50")
	if clientEmail != "" {
		errs.Check("clientEmail", clientEmail, validation.IsValidEmail(validation.FormatEmail(clientEmail)), "must be a valid email address")
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return &Progress{
		date:        date,
		weight:      weight,
		bmi:         bmi,
		clientEmail: validation.FormatEmail(clientEmail),
	}, nil
}

// CreateProgress is the non-failing form of NewProgress.
func CreateProgress(date time.Time, weight, bmi float64, clientEmail string) (*Progress, bool) {
	p, err := NewProgress(date, weight, bmi, clientEmail)
	return p, err == nil
}

func (p *Progress) String() string {
	client := p.clientEmail
	if client == "" {
		client = "No Client"
	}
	return fmt.Sprintf("Progress{date=%s, weight=%.1f, bmi=%.1f, client=%s}",
		p.date.Format(time.RFC3339), p.weight, p.bmi, client)
}
