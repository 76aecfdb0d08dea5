package service

import (
	"context"

	"liveusers/internal/models"
	"liveusers/internal/repository"

	"go.uber.org/zap"
)

type QueryService struct {
	repo repository.UserRepository
	log  *zap.Logger
}

func NewQueryService(repo repository.UserRepository, log *zap.Logger) *QueryService {
	return &QueryService{repo: repo, log: log}
}

// ListUsers returns every record, newest first. Unbounded on purpose.
func (s *QueryService) ListUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []*models.User{}
	}
	return users, nil
}

func (s *QueryService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.repo.FindByEmail(ctx, email)
}
