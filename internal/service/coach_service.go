package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alcyxob/fitcoach/internal/domain"
)

// RegisterUser validates and stores a plain user.
func (s *rosterService) RegisterUser(ctx context.Context, firstName, lastName, email string) (*domain.User, error) {
	u, err := domain.NewUser(firstName, lastName, email)
	if err != nil {
		return nil, invalid("user", err)
	}
	if err := addError("user", u.Email(), s.repos.Users.Add(u)); err != nil {
		return nil, err
	}
	s.logger.Info("user registered", slog.String("email", u.Email()))
	return u, nil
}

// RegisterCoach validates and stores a coach.
func (s *rosterService) RegisterCoach(ctx context.Context, firstName, lastName, email string, experienceYears int) (*domain.Coach, error) {
	c, err := domain.NewCoach(firstName, lastName, email, experienceYears)
	if err != nil {
		return nil, invalid("coach", err)
	}
	if err := addError("coach", c.Email(), s.repos.Coaches.Add(c)); err != nil {
		return nil, err
	}
	s.logger.Info("coach registered", slog.String("email", c.Email()), slog.Int("experience_years", c.ExperienceYears()))
	return c, nil
}

// CoachOf resolves a client's coach reference.
func (s *rosterService) CoachOf(ctx context.Context, clientEmail string) (*domain.Coach, error) {
	client, err := s.findClient(clientEmail)
	if err != nil {
		return nil, err
	}
	if !client.HasCoach() {
		return nil, fmt.Errorf("%w: client %s has no coach", ErrCoachNotFound, clientEmail)
	}
	coach, ok := s.repos.Coaches.FindByIdentity(client.CoachEmail())
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCoachNotFound, client.CoachEmail())
	}
	return coach, nil
}

// RemoveCoach deletes the coach entry only. Clients keep their reference,
// which CoachOf then reports as ErrCoachNotFound.
func (s *rosterService) RemoveCoach(ctx context.Context, coachEmail string) error {
	if !s.repos.Coaches.Delete(coachEmail) {
		return fmt.Errorf("%w: %s", ErrCoachNotFound, coachEmail)
	}
	s.logger.Info("coach removed", slog.String("email", coachEmail))
	return nil
}
