package mockdata

import (
	"context"
	"time"

	"coop-admin/internal/core/domain"
)

// DefaultDelay simulates network latency of the aggregation endpoint
const DefaultDelay = 1000 * time.Millisecond

// Provider resolves the dashboard fixture after a fixed delay
type Provider struct {
	delay time.Duration
}

// NewProvider creates a mock provider; a negative delay falls back to DefaultDelay
func NewProvider(delay time.Duration) *Provider {
	if delay < 0 {
		delay = DefaultDelay
	}
	return &Provider{delay: delay}
}

// Delay returns the simulated latency
func (p *Provider) Delay() time.Duration {
	return p.delay
}

// FetchDashboardData waits out the delay and returns the fixture aggregate.
// It never fails by itself; the only error is ctx being done first.
func (p *Provider) FetchDashboardData(ctx context.Context) (domain.DashboardData, error) {
	timer := time.NewTimer(p.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return domain.DashboardData{}, ctx.Err()
	case <-timer.C:
		return Dashboard(), nil
	}
}
