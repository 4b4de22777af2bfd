package collection

import (
	"context"

	"logisa-be/internal/store"
)

type Repository interface {
	GetAll(ctx context.Context) []CollectionDetails
	GetByID(ctx context.Context, id string) (*CollectionDetails, error)
	Append(ctx context.Context, c CollectionDetails) error
	Update(ctx context.Context, c CollectionDetails) error
}

type repository struct {
	store store.Store
}

func NewRepository(st store.Store) Repository {
	return &repository{store: st}
}

func (r *repository) GetAll(ctx context.Context) []CollectionDetails {
	return store.Load(ctx, r.store, store.KeyCollections, []CollectionDetails{})
}

func (r *repository) GetByID(ctx context.Context, id string) (*CollectionDetails, error) {
	for _, c := range r.GetAll(ctx) {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, nil
}

func (r *repository) Append(ctx context.Context, c CollectionDetails) error {
	collections := r.GetAll(ctx)
	collections = append(collections, c)
	return store.Save(ctx, r.store, store.KeyCollections, collections)
}

func (r *repository) Update(ctx context.Context, c CollectionDetails) error {
	collections := r.GetAll(ctx)
	for i := range collections {
		if collections[i].ID == c.ID {
			collections[i] = c
			return store.Save(ctx, r.store, store.KeyCollections, collections)
		}
	}
	return ErrCollectionNotFound
}
