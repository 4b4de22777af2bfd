package address

import (
	"context"
	"fmt"

	"logisa-be/internal/logger"
	"logisa-be/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context) ([]*Address, error)
	Get(ctx context.Context, addressID string) (*Address, error)
	Create(ctx context.Context, input CreateAddressInput) (*Address, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]*Address, error) {
	u, ok := user.FromContext(ctx)
	if !ok {
		return nil, user.ErrUnauthenticated
	}

	return s.repo.GetByUserID(ctx, u.ID)
}

func (s *service) Get(ctx context.Context, addressID string) (*Address, error) {
	u, ok := user.FromContext(ctx)
	if !ok {
		return nil, user.ErrUnauthenticated
	}

	addr, err := s.repo.GetByID(ctx, addressID)
	if err != nil {
		return nil, err
	}
	if addr == nil || addr.UserID != u.ID {
		return nil, ErrAddressNotFound
	}

	return addr, nil
}

func (s *service) Create(ctx context.Context, input CreateAddressInput) (*Address, error) {
	u, ok := user.FromContext(ctx)
	if !ok {
		return nil, user.ErrUnauthenticated
	}

	log := logger.FromCtx(ctx).With(
		zap.String("service", "Address"),
		zap.String("method", "Create"),
		zap.String("user_id", u.ID),
	)

	if err := validate(input); err != nil {
		return nil, err
	}

	addr := &Address{
		ID:           uuid.New().String(),
		UserID:       u.ID,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		AddressLine1: input.AddressLine1,
		AddressLine2: input.AddressLine2,
		City:         input.City,
		District:     input.District,
		PostalCode:   input.PostalCode,
		Country:      input.Country,
		IsDefault:    input.SetAsDefault,
	}

	// One default per user is advisory: clearing first keeps it true for
	// writes through this path, but existing data is not revalidated.
	if input.SetAsDefault {
		_ = s.repo.ClearDefault(ctx, u.ID)
	}

	if err := s.repo.Create(ctx, addr); err != nil {
		log.Error("failed to create address", zap.Error(err))
		return nil, err
	}

	log.Info("address created", zap.String("address_id", addr.ID))
	return addr, nil
}

func validate(input CreateAddressInput) error {
	required := map[string]string{
		"first_name":    input.FirstName,
		"last_name":     input.LastName,
		"address_line1": input.AddressLine1,
		"city":          input.City,
		"postal_code":   input.PostalCode,
		"country":       input.Country,
	}
	for field, v := range required {
		if v == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, field)
		}
	}
	return nil
}
