package collection

import (
	"context"
	"fmt"
	"time"

	"logisa-be/internal/address"
	"logisa-be/internal/logger"
	"logisa-be/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CreateParams struct {
	User              *user.User
	CollectionDate    time.Time
	CollectionAddress address.Address
	RequestQuote      bool
	Price             float64
}

type QuoteParams struct {
	Price   float64
	QuoteBy string
}

type Service interface {
	Create(ctx context.Context, params CreateParams) (*CollectionDetails, error)
	Get(ctx context.Context, id string) (*CollectionDetails, error)
	ListAll(ctx context.Context) []CollectionDetails
	ListForUser(ctx context.Context, userID string) []CollectionDetails
	SubmitQuote(ctx context.Context, id string, params QuoteParams) (*CollectionDetails, error)
	Approve(ctx context.Context, id string) (*CollectionDetails, error)
	Reject(ctx context.Context, id string) (*CollectionDetails, error)
	MarkCollected(ctx context.Context, id string, actualDate time.Time) (*CollectionDetails, error)
	Complete(ctx context.Context, id string) (*CollectionDetails, error)
	Cancel(ctx context.Context, id string) (*CollectionDetails, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Create(ctx context.Context, params CreateParams) (*CollectionDetails, error) {
	if address.Format(params.CollectionAddress) == "" {
		return nil, fmt.Errorf("%w: collection_address", ErrMissingField)
	}
	if params.CollectionDate.IsZero() {
		return nil, fmt.Errorf("%w: collection_date", ErrMissingField)
	}

	status := StatusProcessing
	if params.RequestQuote {
		status = StatusAwaitingQuote
	}

	c := CollectionDetails{
		ID:                uuid.New().String(),
		UserID:            params.User.ID,
		User:              params.User,
		CompanyID:         params.User.CompanyID,
		Status:            status,
		RequestedQuote:    params.RequestQuote,
		CollectionDate:    params.CollectionDate,
		Price:             params.Price,
		CollectionAddress: params.CollectionAddress,
		CreatedAt:         s.now(),
	}

	if err := s.repo.Append(ctx, c); err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("collection requested",
		zap.String("collection_id", c.ID),
		zap.String("status", string(c.Status)),
	)
	return &c, nil
}

func (s *service) Get(ctx context.Context, id string) (*CollectionDetails, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCollectionNotFound
	}
	return c, nil
}

func (s *service) ListAll(ctx context.Context) []CollectionDetails {
	return s.repo.GetAll(ctx)
}

func (s *service) ListForUser(ctx context.Context, userID string) []CollectionDetails {
	var out []CollectionDetails
	for _, c := range s.repo.GetAll(ctx) {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out
}

// SubmitQuote records the quoted price and moves the request to approval.
func (s *service) SubmitQuote(ctx context.Context, id string, params QuoteParams) (*CollectionDetails, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ValidTransition(c.Status, StatusAwaitingApproval) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, c.Status, StatusAwaitingApproval)
	}

	quoteDate := s.now()
	c.Status = StatusAwaitingApproval
	c.Price = params.Price
	c.QuoteBy = params.QuoteBy
	c.QuoteDate = &quoteDate

	if err := s.repo.Update(ctx, *c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Approve(ctx context.Context, id string) (*CollectionDetails, error) {
	return s.transition(ctx, id, StatusApproved)
}

func (s *service) Reject(ctx context.Context, id string) (*CollectionDetails, error) {
	return s.transition(ctx, id, StatusRejected)
}

func (s *service) MarkCollected(ctx context.Context, id string, actualDate time.Time) (*CollectionDetails, error) {
	if actualDate.IsZero() {
		actualDate = s.now()
	}

	c, err := s.transition(ctx, id, StatusCollected)
	if err != nil {
		return nil, err
	}

	c.ActualCollectionDate = &actualDate
	if err := s.repo.Update(ctx, *c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Complete(ctx context.Context, id string) (*CollectionDetails, error) {
	return s.transition(ctx, id, StatusCompleted)
}

// Cancel is valid any time before the goods are collected.
func (s *service) Cancel(ctx context.Context, id string) (*CollectionDetails, error) {
	return s.transition(ctx, id, StatusCancelled)
}

func (s *service) transition(ctx context.Context, id string, next Status) (*CollectionDetails, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ValidTransition(c.Status, next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, c.Status, next)
	}

	c.Status = next
	if err := s.repo.Update(ctx, *c); err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("collection status changed",
		zap.String("collection_id", c.ID),
		zap.String("status", string(next)),
	)
	return c, nil
}
