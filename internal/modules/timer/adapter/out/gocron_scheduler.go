package out

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"

	timerout "mindspace/internal/modules/timer/port/out"
)

// GocronScheduler runs each subscription as a gocron duration job in
// singleton mode, so a slow callback never overlaps the next fire.
type GocronScheduler struct {
	scheduler gocron.Scheduler
}

func NewGocronScheduler(options ...gocron.SchedulerOption) (*GocronScheduler, error) {
	s, err := gocron.NewScheduler(options...)
	if err != nil {
		return nil, fmt.Errorf("create gocron scheduler: %w", err)
	}
	s.Start()
	return &GocronScheduler{scheduler: s}, nil
}

func (g *GocronScheduler) Every(interval time.Duration, fn func()) (timerout.Subscription, error) {
	job, err := g.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(fn),
		gocron.WithName("countdown-tick"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, fmt.Errorf("create tick job: %w", err)
	}
	return &gocronSubscription{scheduler: g.scheduler, id: job.ID()}, nil
}

// Shutdown stops every remaining job and the scheduler itself.
func (g *GocronScheduler) Shutdown() error {
	if err := g.scheduler.Shutdown(); err != nil {
		return fmt.Errorf("shutdown gocron scheduler: %w", err)
	}
	return nil
}

type gocronSubscription struct {
	scheduler gocron.Scheduler
	id        uuid.UUID
	once      sync.Once
}

func (s *gocronSubscription) Cancel() {
	s.once.Do(func() {
		_ = s.scheduler.RemoveJob(s.id)
	})
}
