package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alcyxob/fitcoach/internal/domain"
)

// EnrollClient stores a client. A non-empty coachEmail must name a stored
// coach; the client keeps only that email.
func (s *rosterService) EnrollClient(ctx context.Context, firstName, lastName, email string, level domain.Level, coachEmail string) (*domain.Client, error) {
	c, err := domain.NewClient(firstName, lastName, email, level, coachEmail)
	if err != nil {
		return nil, invalid("client", err)
	}
	if c.HasCoach() {
		if _, ok := s.repos.Coaches.FindByIdentity(c.CoachEmail()); !ok {
			return nil, fmt.Errorf("%w: %s", ErrCoachNotFound, c.CoachEmail())
		}
	}
	if err := addError("client", c.Email(), s.repos.Clients.Add(c)); err != nil {
		return nil, err
	}
	s.logger.Info("client enrolled",
		slog.String("email", c.Email()),
		slog.String("level", c.Level().String()),
		slog.String("coach", c.CoachEmail()),
	)
	return c, nil
}

func (s *rosterService) findClient(email string) (*domain.Client, error) {
	c, ok := s.repos.Clients.FindByIdentity(email)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrClientNotFound, email)
	}
	return c, nil
}

// RemoveClient deletes the client together with its plans and progress
// log. The client's coach is untouched.
func (s *rosterService) RemoveClient(ctx context.Context, clientEmail string) error {
	if !s.repos.Clients.Delete(clientEmail) {
		return fmt.Errorf("%w: %s", ErrClientNotFound, clientEmail)
	}
	s.mu.Lock()
	delete(s.plans, clientEmail)
	delete(s.progress, clientEmail)
	s.mu.Unlock()
	s.logger.Info("client removed", slog.String("email", clientEmail))
	return nil
}

// SchedulePlan creates a plan for a stored client from stored workouts.
func (s *rosterService) SchedulePlan(ctx context.Context, clientEmail string, startDate time.Time, workoutTitles []string) (*domain.Plan, error) {
	client, err := s.findClient(clientEmail)
	if err != nil {
		return nil, err
	}
	workouts := make([]domain.Workout, 0, len(workoutTitles))
	for _, title := range workoutTitles {
		w, ok := s.repos.Workouts.FindByIdentity(title)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrWorkoutNotFound, title)
		}
		workouts = append(workouts, w)
	}
	plan, err := domain.NewPlan(workouts, startDate, client.Email())
	if err != nil {
		return nil, invalid("plan", err)
	}

	s.mu.Lock()
	s.plans[client.Email()] = append(s.plans[client.Email()], plan)
	s.mu.Unlock()

	s.logger.Info("plan scheduled",
		slog.String("client", client.Email()),
		slog.Time("start_date", plan.StartDate()),
		slog.Int("workouts", len(workouts)),
	)
	return plan, nil
}

// PlansFor lists a client's plans in scheduling order.
func (s *rosterService) PlansFor(ctx context.Context, clientEmail string) ([]*domain.Plan, error) {
	if _, err := s.findClient(clientEmail); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*domain.Plan(nil), s.plans[clientEmail]...), nil
}

// === Progress log ===

// RecordProgress appends a measurement to a stored client's log.
func (s *rosterService) RecordProgress(ctx context.Context, clientEmail string, date time.Time, weight, bmi float64) (*domain.Progress, error) {
	client, err := s.findClient(clientEmail)
	if err != nil {
		return nil, err
	}
	p, err := domain.NewProgress(date, weight, bmi, client.Email())
	if err != nil {
		return nil, invalid("progress", err)
	}

	s.mu.Lock()
	s.progress[client.Email()] = append(s.progress[client.Email()], p)
	s.mu.Unlock()

	s.logger.Debug("progress recorded", slog.String("client", client.Email()), slog.Float64("weight", weight), slog.Float64("bmi", bmi))
	return p, nil
}

// ProgressFor returns a client's measurements in the order they were recorded.
func (s *rosterService) ProgressFor(ctx context.Context, clientEmail string) ([]*domain.Progress, error) {
	if _, err := s.findClient(clientEmail); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*domain.Progress(nil), s.progress[clientEmail]...), nil
}
