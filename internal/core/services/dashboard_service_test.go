package services

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"coop-admin/internal/core/domain"
	"coop-admin/internal/core/loading"
	"coop-admin/internal/core/mockdata"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// manualClock holds scheduled callbacks until Fire is called
type manualClock struct {
	mu     sync.Mutex
	timers []*manualTimer
}

type manualTimer struct {
	f       func()
	stopped bool
}

func (t *manualTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

func (c *manualClock) AfterFunc(_ time.Duration, f func()) loading.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTimer{f: f}
	c.timers = append(c.timers, t)
	return t
}

func (c *manualClock) Fire() {
	c.mu.Lock()
	timers := c.timers
	c.timers = nil
	c.mu.Unlock()
	for _, t := range timers {
		if !t.stopped {
			t.f()
		}
	}
}

type stubProvider struct {
	mu    sync.Mutex
	data  domain.DashboardData
	err   error
	calls int
}

func (p *stubProvider) FetchDashboardData(ctx context.Context) (domain.DashboardData, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if p.err != nil {
		return domain.DashboardData{}, p.err
	}
	return p.data.Clone(), nil
}

func (p *stubProvider) set(data domain.DashboardData, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data, p.err = data, err
}

func TestDashboardService_GetFetchesOnFirstUse(t *testing.T) {
	clock := &manualClock{}
	provider := &stubProvider{data: mockdata.Dashboard()}
	svc := NewDashboardService(provider, quietLogger(), loading.WithClock(clock))
	defer svc.Close()

	view, err := svc.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, provider.calls)
	assert.True(t, view.Loading, "flag stays on until the stop delay elapses")
	assert.Equal(t, int64(1250), view.Data.TotalUsers)
	require.NotNil(t, view.RefreshedAt)
	assert.Empty(t, view.Error)

	clock.Fire()

	view, err = svc.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, view.Loading)
	assert.Equal(t, 1, provider.calls, "cached snapshot is reused")
}

func TestDashboardService_RefreshFailureKeepsSnapshot(t *testing.T) {
	provider := &stubProvider{data: mockdata.Dashboard()}
	svc := NewDashboardService(provider, quietLogger(), loading.WithClock(&manualClock{}))
	defer svc.Close()

	require.NoError(t, svc.Refresh(context.Background()))

	boom := errors.New("db down")
	provider.set(domain.DashboardData{}, boom)
	err := svc.Refresh(context.Background())
	assert.ErrorIs(t, err, boom)

	view, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1250), view.Data.TotalUsers)
	assert.Contains(t, view.Error, "db down")

	provider.set(mockdata.Dashboard(), nil)
	require.NoError(t, svc.Refresh(context.Background()))
	view, err = svc.Get(context.Background())
	require.NoError(t, err)
	assert.Empty(t, view.Error)
}

func TestDashboardService_GetWithoutAnySnapshot(t *testing.T) {
	provider := &stubProvider{err: errors.New("timeout")}
	svc := NewDashboardService(provider, quietLogger(), loading.WithClock(&manualClock{}))
	defer svc.Close()

	view, err := svc.Get(context.Background())

	assert.Nil(t, view)
	assert.ErrorIs(t, err, domain.ErrDashboardUnavailable)
}

func TestDashboardService_ViewIsCopy(t *testing.T) {
	svc := NewDashboardService(&stubProvider{data: mockdata.Dashboard()}, quietLogger(), loading.WithClock(&manualClock{}))
	defer svc.Close()

	view, err := svc.Get(context.Background())
	require.NoError(t, err)
	view.Data.SavingsTransactions[0] = -1
	view.Data.TotalUsers = 0

	again, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1250), again.Data.TotalUsers)
	assert.NotEqual(t, float64(-1), again.Data.SavingsTransactions[0])
}

func TestDashboardService_WithMockProvider(t *testing.T) {
	svc := NewDashboardService(mockdata.NewProvider(0), quietLogger(), loading.WithDelay(0))
	defer svc.Close()

	require.NoError(t, svc.Refresh(context.Background()))

	assert.Eventually(t, func() bool { return !svc.Loading() }, time.Second, 5*time.Millisecond)
	view, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, mockdata.Dashboard(), *view.Data)
}

func TestDashboardService_CancelledContext(t *testing.T) {
	svc := NewDashboardService(mockdata.NewProvider(time.Hour), quietLogger(), loading.WithClock(&manualClock{}))
	defer svc.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := svc.Refresh(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
