package checkout

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatedGateway_Charge(t *testing.T) {
	ctx := context.Background()

	t.Run("Approved", func(t *testing.T) {
		gw := &simulatedGateway{
			latency:     0,
			successRate: 0.9,
			roll:        func() float64 { return 0.1 },
		}

		id, err := gw.Charge(ctx, "2", 64.97)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(id, "pay_"))
	})

	t.Run("Declined", func(t *testing.T) {
		gw := &simulatedGateway{
			latency:     0,
			successRate: 0.9,
			roll:        func() float64 { return 0.95 },
		}

		_, err := gw.Charge(ctx, "2", 64.97)
		assert.ErrorIs(t, err, ErrPaymentDeclined)
	})

	t.Run("AbandonedDuringDelay", func(t *testing.T) {
		gw := &simulatedGateway{
			latency:     200 * time.Millisecond,
			successRate: 1,
			roll:        func() float64 { return 0 },
		}

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := gw.Charge(cancelled, "2", 64.97)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
