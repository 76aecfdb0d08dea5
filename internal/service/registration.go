package service

import (
	"context"

	"liveusers/internal/events"
	"liveusers/internal/metrics"
	"liveusers/internal/models"
	"liveusers/internal/repository"

	"go.uber.org/zap"
)

// ValidationError reports a missing required field before any store call is
// made.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string { return e.Field + " is required" }

// Broadcaster is the realtime channel the service publishes to after a
// successful insert. Delivery is not guaranteed or retried.
type Broadcaster interface {
	Broadcast(event string, data any)
}

type RegistrationService struct {
	repo        repository.UserRepository
	broadcaster Broadcaster
	log         *zap.Logger
}

func NewRegistrationService(repo repository.UserRepository, b Broadcaster, log *zap.Logger) *RegistrationService {
	return &RegistrationService{repo: repo, broadcaster: b, log: log}
}

// Register validates the candidate record, persists it with the online flag
// forced to true, then notifies every connected viewer. The broadcast happens
// after persistence and its outcome does not affect the result.
func (s *RegistrationService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	u := &models.User{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Mobile:   req.Mobile,
		City:     req.City,
		State:    req.State,
		Country:  req.Country,
		UserID:   req.UserID,
		Password: req.Password,
		IsOnline: true,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.Inc()
	s.broadcaster.Broadcast(events.EventNewUser, events.NewUser{
		Name:     u.Name,
		Email:    u.Email,
		IsOnline: u.IsOnline,
	})
	s.log.Info("user registered",
		zap.String("user_id", u.UserID),
		zap.String("email", u.Email))
	return u, nil
}

func validateRequest(req *models.RegisterRequest) error {
	// userId first so its error message wins when several fields are empty
	if req.UserID == "" {
		return &ValidationError{Field: "User ID"}
	}
	required := []struct {
		field, value string
	}{
		{"name", req.Name},
		{"email", req.Email},
		{"mobile", req.Mobile},
		{"city", req.City},
		{"state", req.State},
		{"country", req.Country},
		{"password", req.Password},
	}
	for _, f := range required {
		if f.value == "" {
			return &ValidationError{Field: f.field}
		}
	}
	return nil
}
