package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"mindspace/internal/modules/timer/domain"
	timerout "mindspace/internal/modules/timer/port/out"
	apperrors "mindspace/internal/platform/errors"
)

// Controller owns the countdown for the lifetime of the personal space.
// Starts and ticks are serialized on mu; the tick subscription exists only
// while the timer is running.
type Controller struct {
	scheduler timerout.Scheduler
	interval  time.Duration
	logger    *log.Logger

	mu        sync.Mutex
	timer     domain.Timer
	sub       timerout.Subscription
	gen       uint64
	closed    bool
	listeners map[int]func(domain.Snapshot)
	nextID    int
}

func NewController(scheduler timerout.Scheduler, interval time.Duration, logger *log.Logger) *Controller {
	if interval <= 0 {
		interval = time.Second
	}
	return &Controller{
		scheduler: scheduler,
		interval:  interval,
		logger:    logger,
		listeners: map[int]func(domain.Snapshot){},
	}
}

func (c *Controller) Start(_ context.Context, minutes int) (domain.Snapshot, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return domain.Snapshot{}, fmt.Errorf("start timer: %w", apperrors.ErrClosed)
	}
	if err := c.timer.Start(minutes); err != nil {
		c.mu.Unlock()
		return domain.Snapshot{}, err
	}
	stale := c.detachLocked()
	c.gen++
	gen := c.gen
	sub, err := c.scheduler.Every(c.interval, func() { c.tick(gen) })
	if err != nil {
		c.timer = domain.Timer{}
		c.mu.Unlock()
		cancel(stale)
		return domain.Snapshot{}, fmt.Errorf("schedule tick: %w", err)
	}
	c.sub = sub
	snap := c.timer.Snapshot()
	c.mu.Unlock()
	cancel(stale)

	c.logger.Info("countdown started", "minutes", minutes)
	c.notify(snap)
	return snap, nil
}

func (c *Controller) Snapshot() domain.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.timer.Snapshot()
}

// Subscribe registers fn for every state change and returns its remover.
func (c *Controller) Subscribe(fn func(domain.Snapshot)) func() {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	c.mu.Unlock()
	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

// Close releases the tick subscription. Ticks already in flight are dropped.
func (c *Controller) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	sub := c.detachLocked()
	c.mu.Unlock()
	cancel(sub)
	return nil
}

// tick ignores callbacks from a subscription that has since been replaced
// or released, so a late fire never touches the current countdown.
func (c *Controller) tick(gen uint64) {
	c.mu.Lock()
	if c.closed || gen != c.gen || c.sub == nil {
		c.mu.Unlock()
		return
	}
	if !c.timer.Tick() {
		sub := c.detachLocked()
		c.mu.Unlock()
		cancel(sub)
		return
	}
	snap := c.timer.Snapshot()
	var done timerout.Subscription
	if !snap.Active {
		done = c.detachLocked()
	}
	c.mu.Unlock()

	if done != nil {
		cancel(done)
		c.logger.Info("countdown expired")
	}
	c.notify(snap)
}

// detachLocked hands back the current subscription for cancellation once
// mu is released; a scheduler may wait on an in-flight tick while removing.
func (c *Controller) detachLocked() timerout.Subscription {
	sub := c.sub
	c.sub = nil
	return sub
}

func cancel(sub timerout.Subscription) {
	if sub != nil {
		sub.Cancel()
	}
}

func (c *Controller) notify(snap domain.Snapshot) {
	c.mu.Lock()
	fns := make([]func(domain.Snapshot), 0, len(c.listeners))
	for _, fn := range c.listeners {
		fns = append(fns, fn)
	}
	c.mu.Unlock()
	for _, fn := range fns {
		fn(snap)
	}
}
