package checkout

import (
	"context"

	"logisa-be/internal/address"
	"logisa-be/internal/cart"
	"logisa-be/internal/catalog"
	"logisa-be/internal/logger"
	"logisa-be/internal/order"
	"logisa-be/internal/pricing"
	"logisa-be/internal/store"
	"logisa-be/internal/user"

	"go.uber.org/zap"
)

// PaymentOutcome is returned once a charge succeeds and the order is cut.
type PaymentOutcome struct {
	PaymentID string       `json:"payment_id"`
	Order     *order.Order `json:"order"`
}

// Service drives the checkout page flow. Entry guards for each step are
// enforced here; handlers translate *RedirectError into a redirect response.
type Service interface {
	Session(ctx context.Context, userID string) Session
	StartAddress(ctx context.Context, u *user.User) (Session, error)
	SubmitAddress(ctx context.Context, u *user.User, addr address.Address) (Session, error)
	Review(ctx context.Context, u *user.User) (*Summary, error)
	Pay(ctx context.Context, u *user.User) (*PaymentOutcome, error)
	Confirm(ctx context.Context, u *user.User, orderID string) (*order.Order, error)
}

type service struct {
	store   store.Store
	cart    cart.Service
	orders  order.Service
	catalog catalog.Service
	gateway Gateway
}

func NewService(st store.Store, cartSvc cart.Service, orderSvc order.Service, catalogSvc catalog.Service, gw Gateway) Service {
	return &service{
		store:   st,
		cart:    cartSvc,
		orders:  orderSvc,
		catalog: catalogSvc,
		gateway: gw,
	}
}

func (s *service) Session(ctx context.Context, userID string) Session {
	return store.Load(ctx, s.store, store.CheckoutKey(userID), Session{Step: StepCart})
}

func (s *service) saveSession(ctx context.Context, userID string, sess Session) error {
	return store.Save(ctx, s.store, store.CheckoutKey(userID), sess)
}

func (s *service) StartAddress(ctx context.Context, u *user.User) (Session, error) {
	state := s.cart.Get(ctx, u.ID)
	if len(state.Items) == 0 {
		return s.Session(ctx, u.ID), &RedirectError{Target: StepCart}
	}

	sess := s.Session(ctx, u.ID)
	sess.Step = StepAddress
	if err := s.saveSession(ctx, u.ID, sess); err != nil {
		return sess, err
	}
	return sess, nil
}

func (s *service) SubmitAddress(ctx context.Context, u *user.User, addr address.Address) (Session, error) {
	state := s.cart.Get(ctx, u.ID)
	if len(state.Items) == 0 {
		return s.Session(ctx, u.ID), &RedirectError{Target: StepCart}
	}

	if _, err := s.cart.SetAddress(ctx, u.ID, addr); err != nil {
		return s.Session(ctx, u.ID), err
	}

	sess := s.Session(ctx, u.ID)
	sess.Step = StepReview
	if err := s.saveSession(ctx, u.ID, sess); err != nil {
		return sess, err
	}
	return sess, nil
}

// Review builds the live order summary. The total includes the delivery
// surcharge only once a method is selected.
func (s *service) Review(ctx context.Context, u *user.User) (*Summary, error) {
	state := s.cart.Get(ctx, u.ID)
	if len(state.Items) == 0 {
		return nil, &RedirectError{Target: StepCart}
	}
	if state.SelectedAddress == nil {
		return nil, &RedirectError{Target: StepAddress}
	}

	sess := s.Session(ctx, u.ID)
	sess.Step = StepReview
	if err := s.saveSession(ctx, u.ID, sess); err != nil {
		return nil, err
	}

	return s.buildSummary(ctx, state)
}

func (s *service) buildSummary(ctx context.Context, state cart.State) (*Summary, error) {
	subtotal := pricing.Subtotal(state.Items)

	summary := &Summary{
		Items:          state.Items,
		Subtotal:       subtotal,
		DeliveryMethod: state.DeliveryMethod,
		Total:          subtotal,
	}

	if state.DeliveryMethod != "" {
		total, err := pricing.Total(state.Items, state.DeliveryMethod)
		if err != nil {
			return nil, err
		}
		summary.DeliveryPrice = total - subtotal
		summary.Total = total
	}

	if pricing.QualifiesForFreeItem(subtotal) {
		material, err := s.catalog.Get(ctx, pricing.FreeItemMaterialID)
		if err != nil {
			logger.FromCtx(ctx).Warn("free item material unavailable",
				zap.String("material_id", pricing.FreeItemMaterialID),
				zap.Error(err),
			)
		} else {
			summary.FreeItem = &SummaryLine{
				MaterialID: material.ID,
				Name:       material.Name,
				Quantity:   1,
				Price:      0,
			}
		}
	}

	return summary, nil
}

// Pay charges the frozen total and cuts the order. A decline leaves the
// cart and session untouched so the user can retry.
func (s *service) Pay(ctx context.Context, u *user.User) (*PaymentOutcome, error) {
	state := s.cart.Get(ctx, u.ID)
	if len(state.Items) == 0 {
		return nil, &RedirectError{Target: StepCart}
	}
	if state.SelectedAddress == nil {
		return nil, &RedirectError{Target: StepAddress}
	}
	if state.DeliveryMethod == "" {
		return nil, ErrDeliveryMethodRequired
	}

	total, err := pricing.Total(state.Items, state.DeliveryMethod)
	if err != nil {
		return nil, err
	}

	paymentID, err := s.gateway.Charge(ctx, u.ID, total)
	if err != nil {
		return nil, err
	}

	o, err := s.orders.Create(ctx, order.CreateOrderParams{
		User:           u,
		Items:          state.Items,
		Address:        *state.SelectedAddress,
		DeliveryMethod: state.DeliveryMethod,
		Total:          total,
	})
	if err != nil {
		return nil, err
	}

	sess := Session{Step: StepConfirmation, OrderID: o.ID}
	if err := s.saveSession(ctx, u.ID, sess); err != nil {
		return nil, err
	}

	return &PaymentOutcome{PaymentID: paymentID, Order: o}, nil
}

// Confirm resolves the confirmed order and performs the one confirmation
// side effect, clearing the cart, at most once per order.
func (s *service) Confirm(ctx context.Context, u *user.User, orderID string) (*order.Order, error) {
	sess := s.Session(ctx, u.ID)
	if orderID == "" || sess.OrderID != orderID {
		return nil, &RedirectError{Target: StepCart}
	}

	o, err := s.orders.Get(ctx, orderID, u)
	if err != nil {
		return nil, err
	}

	if !sess.CartCleared {
		if _, err := s.cart.Clear(ctx, u.ID); err != nil {
			return nil, err
		}
		sess.CartCleared = true
		if err := s.saveSession(ctx, u.ID, sess); err != nil {
			return nil, err
		}
	}

	return o, nil
}
