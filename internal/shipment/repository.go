package shipment

import (
	"context"

	"logisa-be/internal/store"
)

// Repository keeps the full notification collection under one store key;
// every mutation rewrites it whole.
type Repository interface {
	GetAll(ctx context.Context) []ShipNotification
	GetByID(ctx context.Context, id string) (*ShipNotification, error)
	Append(ctx context.Context, n ShipNotification) error
	Update(ctx context.Context, n ShipNotification) error
}

type repository struct {
	store store.Store
}

func NewRepository(st store.Store) Repository {
	return &repository{store: st}
}

func (r *repository) GetAll(ctx context.Context) []ShipNotification {
	return store.Load(ctx, r.store, store.KeyShipNotifications, []ShipNotification{})
}

func (r *repository) GetByID(ctx context.Context, id string) (*ShipNotification, error) {
	for _, n := range r.GetAll(ctx) {
		if n.ID == id {
			return &n, nil
		}
	}
	return nil, nil
}

func (r *repository) Append(ctx context.Context, n ShipNotification) error {
	notifications := r.GetAll(ctx)
	notifications = append(notifications, n)
	return store.Save(ctx, r.store, store.KeyShipNotifications, notifications)
}

func (r *repository) Update(ctx context.Context, n ShipNotification) error {
	notifications := r.GetAll(ctx)
	for i := range notifications {
		if notifications[i].ID == n.ID {
			notifications[i] = n
			return store.Save(ctx, r.store, store.KeyShipNotifications, notifications)
		}
	}
	return ErrNotificationNotFound
}
