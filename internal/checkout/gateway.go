package checkout

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"logisa-be/internal/logger"

	"go.uber.org/zap"
)

// Gateway charges a payment and returns a provider payment id.
type Gateway interface {
	Charge(ctx context.Context, userID string, amount float64) (string, error)
}

const (
	defaultLatency     = 2 * time.Second
	defaultSuccessRate = 0.9
)

// simulatedGateway stands in for a real payment provider: a fixed
// processing delay and a probabilistic outcome. Declines come back as
// ErrPaymentDeclined and are safe to retry.
type simulatedGateway struct {
	latency     time.Duration
	successRate float64
	roll        func() float64
}

// ----------------- Constructor -----------------

func NewSimulatedGateway() Gateway {
	return &simulatedGateway{
		latency:     defaultLatency,
		successRate: defaultSuccessRate,
		roll:        rand.Float64,
	}
}

// ----------------- Charge -----------------

func (g *simulatedGateway) Charge(ctx context.Context, userID string, amount float64) (string, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("user_id", userID),
		zap.Float64("amount", amount),
	)

	log.Info("processing payment")

	timer := time.NewTimer(g.latency)
	defer timer.Stop()

	// The context is consulted after the delay as well, so an abandoned
	// attempt never completes a charge.
	select {
	case <-ctx.Done():
		log.Warn("payment abandoned before completion", zap.Error(ctx.Err()))
		return "", ctx.Err()
	case <-timer.C:
	}
	if err := ctx.Err(); err != nil {
		log.Warn("payment abandoned before completion", zap.Error(err))
		return "", err
	}

	if g.roll() >= g.successRate {
		log.Warn("payment declined")
		return "", ErrPaymentDeclined
	}

	paymentID := fmt.Sprintf("pay_%d_%d", time.Now().Unix(), rand.Intn(1_000_000))
	log.Info("payment approved", zap.String("payment_id", paymentID))
	return paymentID, nil
}
