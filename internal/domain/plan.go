package domain

import (
	"fmt"
	"slices"
	"time"

	"github.com/alcyxob/fitcoach/internal/validation"
)

// Plan schedules workouts for a client starting at a future date. The plan
// owns its workouts; the client is referenced by email only.
type Plan struct {
	startDate   time.Time
	clientEmail string
	workouts    []Workout
}

func (p *Plan) StartDate() time.Time { return p.startDate }
func (p *Plan) ClientEmail() string  { return p.clientEmail }
func (p *Plan) Workouts() []Workout  { return slices.Clone(p.workouts) }

// SetStartDate applies start only if it lies strictly after time.Now.
func (p *Plan) SetStartDate(start time.Time) bool {
	return p.SetStartDateAsOf(start, time.Now())
}

// SetStartDateAsOf applies start only if it lies strictly after now.
func (p *Plan) SetStartDateAsOf(start, now time.Time) bool {
	if !validation.IsValidStartDate(start, now) {
		return false
	}
	p.startDate = start
	return true
}

// AssignClient points the plan at the client stored under email.
func (p *Plan) AssignClient(email string) bool {
	formatted := validation.FormatEmail(email)
	if !validation.IsValidEmail(formatted) {
		return false
	}
	p.clientEmail = formatted
	return true
}

// AddWorkout appends w. Zero workouts are ignored.
func (p *Plan) AddWorkout(w Workout) bool {
	if w.IsZero() {
		return false
	}
	p.workouts = append(p.workouts, w)
	return true
}

// RemoveWorkout drops the first workout equal to w.
func (p *Plan) RemoveWorkout(w Workout) bool {
	i := slices.IndexFunc(p.workouts, w.Equal)
	if i < 0 {
		return false
	}
	p.workouts = slices.Delete(p.workouts, i, i+1)
	return true
}

// NewPlan validates the start date against time.Now.
func NewPlan(workouts []Workout, startDate time.Time, clientEmail string) (*Plan, error) {
	return NewPlanAsOf(time.Now(), workouts, startDate, clientEmail)
}

// NewPlanAsOf validates the start date against now. clientEmail may be
// empty for an unassigned plan.
func NewPlanAsOf(now time.Time, workouts []Workout, startDate time.Time, clientEmail string) (*Plan, error) {
	var errs validation.Errors
	errs.Check("startDate", startDate.Format(time.RFC3339), validation.IsValidStartDate(startDate, now), "must be in the future")
	if clientEmail != "" {
		errs.Check("clientEmail", clientEmail, validation.IsValidEmail(validation.FormatEmail(clientEmail)), "must be a valid email address")
	}
	for i, w := range workouts {
		errs.Check(fmt.Sprintf("workouts[%d]", i), w.title, !w.IsZero(), "must be a constructed workout")
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return &Plan{
		startDate:   startDate,
		clientEmail: validation.FormatEmail(clientEmail),
		workouts:    slices.Clone(workouts),
	}, nil
}

// CreatePlan is the non-failing form of NewPlan.
func CreatePlan(workouts []Workout, startDate time.Time, clientEmail string) (*Plan, bool) {
	p, err := NewPlan(workouts, startDate, clientEmail)
	return p, err == nil
}

func (p *Plan) String() string {
	client := p.clientEmail
	if client == "" {
		client = "No Client"
	}
	return fmt.Sprintf("Plan{startDate=%s, client=%s, workouts=%d}",
		p.startDate.Format(time.RFC3339), client, len(p.workouts))
}
