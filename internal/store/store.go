package store

import (
	"context"
	"encoding/json"
	"errors"

	"logisa-be/internal/logger"
	"logisa-be/internal/metrics"

	"go.uber.org/zap"
)

// Well-known keys. Each value is a JSON-serialized collection (or marker),
// always read and rewritten whole: last writer wins, no partial updates.
const (
	KeyOrders            = "orders"
	KeyShipNotifications = "ship_notifications"
	KeyCollections       = "collections"
	KeyInitialized       = "initialized"

	cartKeyPrefix     = "cart:"
	checkoutKeyPrefix = "checkout:"
)

// CartKey returns the per-user cart state key.
func CartKey(userID string) string {
	return cartKeyPrefix + userID
}

// CheckoutKey returns the per-user checkout session key.
func CheckoutKey(userID string) string {
	return checkoutKeyPrefix + userID
}

var ErrKeyNotFound = errors.New("store key not found")

// Store is a minimal key-value contract over the portal's persisted
// collections. Both backends treat values as opaque blobs.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Load reads and decodes the value under key. Any read or decode failure is
// logged and replaced by def; corruption never propagates to callers.
// Timestamp fields round-trip through RFC3339 strings and come back as
// time.Time at every nesting depth.
func Load[T any](ctx context.Context, s Store, key string, def T) T {
	metrics.StoreReads.Inc()

	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		logger.FromCtx(ctx).Error("store read failed",
			zap.String("key", key),
			zap.Error(err),
		)
		return def
	}
	if !ok {
		return def
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		metrics.StoreDecodeFailures.Inc()
		logger.FromCtx(ctx).Error("store payload malformed, using default",
			zap.String("key", key),
			zap.Error(err),
		)
		return def
	}

	return out
}

// Save serializes v and rewrites the value under key in full.
func Save[T any](ctx context.Context, s Store, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}

	metrics.StoreWrites.Inc()
	return s.Set(ctx, key, raw)
}
