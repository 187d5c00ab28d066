package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mamadbah2/fleetboard/internal/config"
	"github.com/mamadbah2/fleetboard/internal/domain/models"
	"github.com/mamadbah2/fleetboard/internal/service/notify"
)

const runTimeout = 2 * time.Minute

// DigestBuilder computes the daily digest.
type DigestBuilder interface {
	BuildDigest(ctx context.Context, now time.Time) (models.DailyDigest, error)
}

// DigestStore persists digests, e.g. the MongoDB repository.
type DigestStore interface {
	SaveDailyDigest(ctx context.Context, digest models.DailyDigest) error
}

// Scheduler runs the daily digest job.
type Scheduler struct {
	cron     *cron.Cron
	schedule string
	location *time.Location
	builder  DigestBuilder
	store    DigestStore
	notifier notify.Notifier
	logger   *zap.Logger
	now      func() time.Time
}

// NewScheduler creates a scheduler in the configured timezone. store and
// notifier are optional.
func NewScheduler(cfg config.ReportingConfig, builder DigestBuilder, store DigestStore, notifier notify.Notifier, logger *zap.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
	}

	return &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		schedule: cfg.CronSchedule,
		location: loc,
		builder:  builder,
		store:    store,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}, nil
}

// Start registers the digest job and starts the cron loop.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.sendDailyDigest); err != nil {
		return fmt.Errorf("schedule daily digest %q: %w", s.schedule, err)
	}
	s.logger.Info("starting scheduler", zap.String("schedule", s.schedule), zap.String("timezone", s.location.String()))
	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) sendDailyDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	if err := s.RunOnce(ctx); err != nil {
		s.logger.Error("daily digest failed", zap.Error(err))
	}
}

// RunOnce builds the digest, stores it and sends it. A storage failure does
// not prevent delivery.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	s.logger.Info("generating daily digest")

	digest, err := s.builder.BuildDigest(ctx, s.now().In(s.location))
	if err != nil {
		return fmt.Errorf("build digest: %w", err)
	}

	if s.store != nil {
		if err := s.store.SaveDailyDigest(ctx, digest); err != nil {
			s.logger.Error("failed to save daily digest", zap.Error(err))
		}
	}

	if s.notifier == nil {
		return nil
	}
	if err := s.notifier.Notify(ctx, digest.Message); err != nil {
		return fmt.Errorf("send digest: %w", err)
	}
	s.logger.Info("daily digest sent successfully")
	return nil
}
