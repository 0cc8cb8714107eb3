package payment

import (
	"context"
	"time"
)

// Gateway is the external payment processor boundary. Charge blocks for the
// duration of the external call and must respect ctx cancellation.
type Gateway interface {
	Charge(ctx context.Context, amount float64, method string) error
}

// SimulatedGateway stands in for a real processor: it approves every charge
// after a fixed processing delay.
type SimulatedGateway struct {
	delay time.Duration
}

func NewSimulatedGateway(delay time.Duration) *SimulatedGateway {
	return &SimulatedGateway{delay: delay}
}

func (g *SimulatedGateway) Charge(ctx context.Context, amount float64, method string) error {
	timer := time.NewTimer(g.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

var _ Gateway = (*SimulatedGateway)(nil)
