package order

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"logisa-be/internal/address"
	"logisa-be/internal/cart"
	"logisa-be/internal/delivery"
	"logisa-be/internal/logger"
	"logisa-be/internal/user"

	"go.uber.org/zap"
)

type CreateOrderParams struct {
	User           *user.User
	Items          []cart.CartItem
	Address        address.Address
	DeliveryMethod delivery.Method
	Total          float64
}

type Service interface {
	Create(ctx context.Context, params CreateOrderParams) (*Order, error)
	Get(ctx context.Context, id string, requester *user.User) (*Order, error)
	ListForUser(ctx context.Context, userID string) []Order
	ListAll(ctx context.Context) []Order
	Approve(ctx context.Context, id string, approver *user.User) (*Order, error)
	Reject(ctx context.Context, id string, approver *user.User) (*Order, error)
	Advance(ctx context.Context, id string, next Status) (*Order, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

const firstOrderNumber = 1000

// nextID scans the existing collection for the highest ORD-NNNN suffix and
// issues the next one.
func nextID(orders []Order) string {
	highest := firstOrderNumber - 1
	for _, o := range orders {
		raw, ok := strings.CutPrefix(o.ID, "ORD-")
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(raw); err == nil && n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("ORD-%d", highest+1)
}

func (s *service) Create(ctx context.Context, params CreateOrderParams) (*Order, error) {
	if len(params.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	o := Order{
		ID:             nextID(s.repo.GetAll(ctx)),
		UserID:         params.User.ID,
		User:           params.User,
		CompanyID:      params.User.CompanyID,
		Items:          params.Items,
		Address:        params.Address,
		DeliveryMethod: params.DeliveryMethod,
		Status:         StatusPending,
		Total:          params.Total,
		CreatedAt:      s.now(),
	}

	if err := s.repo.Append(ctx, o); err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("order created",
		zap.String("order_id", o.ID),
		zap.String("user_id", o.UserID),
		zap.Float64("total", o.Total),
	)
	return &o, nil
}

func (s *service) Get(ctx context.Context, id string, requester *user.User) (*Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	if !requester.IsAdmin() && o.UserID != requester.ID {
		return nil, ErrUnauthorized
	}
	return o, nil
}

func (s *service) ListForUser(ctx context.Context, userID string) []Order {
	var out []Order
	for _, o := range s.repo.GetAll(ctx) {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}

func (s *service) ListAll(ctx context.Context) []Order {
	return s.repo.GetAll(ctx)
}

func (s *service) decide(ctx context.Context, id string, next Status, approver *user.User) (*Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	if !ValidTransition(o.Status, next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, next)
	}

	o.Status = next
	o.ApprovedByID = approver.ID
	o.ApprovedBy = approver
	if err := s.repo.Update(ctx, *o); err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("order decision recorded",
		zap.String("order_id", o.ID),
		zap.String("status", string(next)),
		zap.String("approved_by", approver.ID),
	)
	return o, nil
}

func (s *service) Approve(ctx context.Context, id string, approver *user.User) (*Order, error) {
	return s.decide(ctx, id, StatusApproved, approver)
}

func (s *service) Reject(ctx context.Context, id string, approver *user.User) (*Order, error) {
	return s.decide(ctx, id, StatusRejected, approver)
}

// Advance moves an order along the fulfillment chain after approval.
func (s *service) Advance(ctx context.Context, id string, next Status) (*Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	if !ValidTransition(o.Status, next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, next)
	}

	o.Status = next
	if err := s.repo.Update(ctx, *o); err != nil {
		return nil, err
	}
	return o, nil
}
