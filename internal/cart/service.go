package cart

import (
	"context"

	"logisa-be/internal/address"
	"logisa-be/internal/catalog"
	"logisa-be/internal/delivery"
	"logisa-be/internal/logger"
	"logisa-be/internal/store"

	"go.uber.org/zap"
)

// Service wraps the reducer with per-user persistence: state is loaded from
// the store on each call and rewritten in full after every successful
// transition.
type Service interface {
	Get(ctx context.Context, userID string) State
	AddItem(ctx context.Context, userID, materialID string, quantity int) (State, error)
	RemoveItem(ctx context.Context, userID, materialID string) (State, error)
	SetQuantity(ctx context.Context, userID, materialID string, quantity int) (State, error)
	Clear(ctx context.Context, userID string) (State, error)
	SetAddress(ctx context.Context, userID string, addr address.Address) (State, error)
	SetDeliveryMethod(ctx context.Context, userID string, method delivery.Method) (State, error)
}

type service struct {
	store   store.Store
	catalog catalog.Service
}

func NewService(st store.Store, catalogSvc catalog.Service) Service {
	return &service{store: st, catalog: catalogSvc}
}

func (s *service) Get(ctx context.Context, userID string) State {
	return store.Load(ctx, s.store, store.CartKey(userID), State{Items: []CartItem{}})
}

func (s *service) dispatch(ctx context.Context, userID string, a Action) (State, error) {
	state := s.Get(ctx, userID)

	next, err := Reduce(state, a)
	if err != nil {
		return state, err
	}

	if err := store.Save(ctx, s.store, store.CartKey(userID), next); err != nil {
		logger.FromCtx(ctx).Error("failed to persist cart",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return state, err
	}

	return next, nil
}

func (s *service) AddItem(ctx context.Context, userID, materialID string, quantity int) (State, error) {
	material, err := s.catalog.Get(ctx, materialID)
	if err != nil {
		return s.Get(ctx, userID), err
	}

	return s.dispatch(ctx, userID, AddItem{Material: *material, Quantity: quantity})
}

func (s *service) RemoveItem(ctx context.Context, userID, materialID string) (State, error) {
	return s.dispatch(ctx, userID, RemoveItem{MaterialID: materialID})
}

func (s *service) SetQuantity(ctx context.Context, userID, materialID string, quantity int) (State, error) {
	return s.dispatch(ctx, userID, SetQuantity{MaterialID: materialID, Quantity: quantity})
}

func (s *service) Clear(ctx context.Context, userID string) (State, error) {
	return s.dispatch(ctx, userID, Clear{})
}

func (s *service) SetAddress(ctx context.Context, userID string, addr address.Address) (State, error) {
	return s.dispatch(ctx, userID, SetAddress{Address: addr})
}

func (s *service) SetDeliveryMethod(ctx context.Context, userID string, method delivery.Method) (State, error) {
	return s.dispatch(ctx, userID, SetDeliveryMethod{Method: method})
}
