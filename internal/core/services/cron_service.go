package services

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// refreshTimeout bounds a scheduled dashboard fetch
const refreshTimeout = 30 * time.Second

// CronService runs scheduled background jobs
type CronService struct {
	cron      *cron.Cron
	dashboard *DashboardService
	schedule  string
	log       logrus.FieldLogger
}

// NewCronService creates the scheduler for the dashboard refresh job
func NewCronService(schedule string, dashboard *DashboardService, log logrus.FieldLogger) *CronService {
	return &CronService{
		cron:      cron.New(),
		dashboard: dashboard,
		schedule:  schedule,
		log:       log.WithField("module", "cron"),
	}
}

// Start registers the jobs and starts the scheduler
func (s *CronService) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.refreshDashboard); err != nil {
		return errors.Wrapf(err, "invalid dashboard refresh schedule %q", s.schedule)
	}
	s.cron.Start()
	s.log.WithField("schedule", s.schedule).Info("⏰ Dashboard refresh scheduled")
	return nil
}

// Stop halts the scheduler and waits for a running job to finish
func (s *CronService) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info("⏰ Scheduler stopped")
}

// Entries reports how many jobs are registered
func (s *CronService) Entries() int {
	return len(s.cron.Entries())
}

func (s *CronService) refreshDashboard() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	if err := s.dashboard.Refresh(ctx); err != nil {
		s.log.WithError(err).Error("Scheduled dashboard refresh failed")
	}
}
