package services

import (
	"context"
	"sync"
	"time"

	"coop-admin/internal/core/domain"
	"coop-admin/internal/core/loading"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DashboardProvider resolves the dashboard aggregate. The fixture provider
// and the MySQL repository both satisfy it.
type DashboardProvider interface {
	FetchDashboardData(ctx context.Context) (domain.DashboardData, error)
}

// DashboardView is what the dashboard endpoint returns
type DashboardView struct {
	Loading     bool                  `json:"loading"`
	Data        *domain.DashboardData `json:"data"`
	RefreshedAt *time.Time            `json:"refreshedAt,omitempty"`
	Error       string                `json:"error,omitempty"`
}

// DashboardService keeps the last dashboard snapshot and its loading flag
type DashboardService struct {
	provider DashboardProvider
	loading  *loading.Controller
	log      logrus.FieldLogger
	now      func() time.Time

	// refreshMu serializes fetches so overlapping refreshes do not race
	// each other's start/stop calls.
	refreshMu sync.Mutex

	mu          sync.RWMutex
	data        *domain.DashboardData
	lastErr     error
	refreshedAt time.Time
}

// NewDashboardService creates a dashboard service. The loading flag starts
// true and clears after the controller delay, like the admin home page.
func NewDashboardService(provider DashboardProvider, log logrus.FieldLogger, opts ...loading.Option) *DashboardService {
	opts = append([]loading.Option{loading.WithInitialLoading(true)}, opts...)
	return &DashboardService{
		provider: provider,
		loading:  loading.New(opts...),
		log:      log.WithField("module", "dashboard"),
		now:      time.Now,
	}
}

// Refresh fetches a new snapshot. On failure the previous snapshot is kept
// and the error is returned.
func (s *DashboardService) Refresh(ctx context.Context) error {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	s.loading.StartLoading()
	data, err := s.provider.FetchDashboardData(ctx)
	s.loading.StopLoading()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.lastErr = errors.Wrap(err, "fetch dashboard data")
		s.log.WithError(err).Warn("⚠️ Dashboard refresh failed")
		return s.lastErr
	}

	snapshot := data.Clone()
	s.data = &snapshot
	s.lastErr = nil
	s.refreshedAt = s.now()

	s.log.WithField("total_users", data.TotalUsers).Debug("Dashboard refreshed")
	return nil
}

// Get returns the current view, fetching synchronously if nothing has been
// loaded yet.
func (s *DashboardService) Get(ctx context.Context) (*DashboardView, error) {
	if !s.hasData() {
		if err := s.Refresh(ctx); err != nil && !s.hasData() {
			return nil, errors.Wrap(domain.ErrDashboardUnavailable, err.Error())
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data := s.data.Clone()
	refreshedAt := s.refreshedAt
	view := &DashboardView{
		Loading:     s.loading.Loading(),
		Data:        &data,
		RefreshedAt: &refreshedAt,
	}
	if s.lastErr != nil {
		view.Error = s.lastErr.Error()
	}
	return view, nil
}

// Loading reports the debounced loading flag
func (s *DashboardService) Loading() bool {
	return s.loading.Loading()
}

// Close cancels the pending loading timer
func (s *DashboardService) Close() {
	s.loading.Close()
}

func (s *DashboardService) hasData() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data != nil
}
