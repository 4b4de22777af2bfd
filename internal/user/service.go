package user

import (
	"context"

	"logisa-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	// Login verifies credentials against the seeded mock users and issues
	// a session token.
	Login(ctx context.Context, email, password string) (*User, string, error)
	Get(ctx context.Context, id string) (*User, error)
	Company(ctx context.Context, id string) (*Company, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Login(ctx context.Context, email, password string) (*User, string, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("service", "User"),
		zap.String("method", "Login"),
	)

	u, hash, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		log.Error("login lookup failed", zap.Error(err))
		return nil, "", err
	}
	if u == nil || !CheckPasswordHash(password, hash) {
		log.Warn("login rejected", zap.String("email", email))
		return nil, "", ErrInvalidCredentials
	}

	token, err := GenerateJWT(u)
	if err != nil {
		log.Error("token generation failed", zap.Error(err))
		return nil, "", err
	}

	log.Info("login success", zap.String("user_id", u.ID))
	return u, token, nil
}

func (s *service) Get(ctx context.Context, id string) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *service) Company(ctx context.Context, id string) (*Company, error) {
	c, err := s.repo.GetCompany(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrUserNotFound
	}
	return c, nil
}
