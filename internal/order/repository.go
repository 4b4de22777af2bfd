package order

import (
	"context"

	"logisa-be/internal/store"
)

// Repository keeps the full order collection under a single store key and
// rewrites it whole on every mutation.
type Repository interface {
	GetAll(ctx context.Context) []Order
	GetByID(ctx context.Context, id string) (*Order, error)
	Append(ctx context.Context, o Order) error
	Update(ctx context.Context, o Order) error
}

type repository struct {
	store store.Store
}

func NewRepository(st store.Store) Repository {
	return &repository{store: st}
}

func (r *repository) GetAll(ctx context.Context) []Order {
	return store.Load(ctx, r.store, store.KeyOrders, []Order{})
}

func (r *repository) GetByID(ctx context.Context, id string) (*Order, error) {
	for _, o := range r.GetAll(ctx) {
		if o.ID == id {
			return &o, nil
		}
	}
	return nil, nil
}

func (r *repository) Append(ctx context.Context, o Order) error {
	orders := r.GetAll(ctx)
	orders = append(orders, o)
	return store.Save(ctx, r.store, store.KeyOrders, orders)
}

func (r *repository) Update(ctx context.Context, o Order) error {
	orders := r.GetAll(ctx)
	for i := range orders {
		if orders[i].ID == o.ID {
			orders[i] = o
			return store.Save(ctx, r.store, store.KeyOrders, orders)
		}
	}
	return ErrOrderNotFound
}
