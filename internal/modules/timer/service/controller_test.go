package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"mindspace/internal/modules/timer/domain"
	timerout "mindspace/internal/modules/timer/port/out"
	"mindspace/internal/modules/timer/service"
	apperrors "mindspace/internal/platform/errors"
	"mindspace/internal/platform/logging"
)

// manualScheduler fires callbacks only when the test says so.
type manualScheduler struct {
	mu        sync.Mutex
	subs      []*manualSub
	intervals []time.Duration
	fail      error
}

type manualSub struct {
	fn        func()
	cancelled bool
}

func (s *manualSub) Cancel() { s.cancelled = true }

func (m *manualScheduler) Every(interval time.Duration, fn func()) (timerout.Subscription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	sub := &manualSub{fn: fn}
	m.subs = append(m.subs, sub)
	m.intervals = append(m.intervals, interval)
	return sub, nil
}

// fire runs every live subscription once, like one elapsed second.
func (m *manualScheduler) fire() int {
	m.mu.Lock()
	live := []*manualSub{}
	for _, s := range m.subs {
		if !s.cancelled {
			live = append(live, s)
		}
	}
	m.mu.Unlock()
	for _, s := range live {
		s.fn()
	}
	return len(live)
}

func (m *manualScheduler) live() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, s := range m.subs {
		if !s.cancelled {
			n++
		}
	}
	return n
}

func newController(sched *manualScheduler) *service.Controller {
	return service.NewController(sched, time.Second, logging.Discard())
}

func TestStartSubscribesOneSecondTick(t *testing.T) {
	t.Parallel()
	sched := &manualScheduler{}
	ctrl := newController(sched)
	snap, err := ctrl.Start(context.Background(), 25)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if snap.RemainingSeconds != 1500 || !snap.Active {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if sched.live() != 1 || sched.intervals[0] != time.Second {
		t.Fatalf("expected one 1s subscription, got %d %v", sched.live(), sched.intervals)
	}
	sched.fire()
	sched.fire()
	if got := ctrl.Snapshot().RemainingSeconds; got != 1498 {
		t.Fatalf("expected 1498 after two ticks, got %d", got)
	}
}

func TestExpiryReleasesSubscription(t *testing.T) {
	t.Parallel()
	sched := &manualScheduler{}
	ctrl := newController(sched)
	if _, err := ctrl.Start(context.Background(), 1); err != nil {
		t.Fatalf("start: %v", err)
	}
	for i := 0; i < 60; i++ {
		if sched.fire() != 1 {
			t.Fatalf("tick %d: subscription released too early", i)
		}
	}
	snap := ctrl.Snapshot()
	if snap.RemainingSeconds != 0 || snap.Active || snap.Phase() != domain.PhaseExpired {
		t.Fatalf("expected expired snapshot, got %+v", snap)
	}
	if sched.live() != 0 {
		t.Fatalf("expected no live subscription after expiry, got %d", sched.live())
	}
	if sched.fire() != 0 {
		t.Fatalf("no tick should be observed after expiry")
	}
}

func TestRestartCancelsPreviousSubscription(t *testing.T) {
	t.Parallel()
	sched := &manualScheduler{}
	ctrl := newController(sched)
	_, _ = ctrl.Start(context.Background(), 45)
	sched.fire()
	_, _ = ctrl.Start(context.Background(), 15)
	if sched.live() != 1 {
		t.Fatalf("expected exactly one live subscription, got %d", sched.live())
	}
	sched.fire()
	if got := ctrl.Snapshot().RemainingSeconds; got != 899 {
		t.Fatalf("expected 899 after restart and one tick, got %d", got)
	}
}

func TestStaleTickIsIgnored(t *testing.T) {
	t.Parallel()
	sched := &manualScheduler{}
	ctrl := newController(sched)
	_, _ = ctrl.Start(context.Background(), 45)
	first := sched.subs[0]
	_, _ = ctrl.Start(context.Background(), 15)
	first.fn()
	if got := ctrl.Snapshot().RemainingSeconds; got != 900 {
		t.Fatalf("late fire from replaced subscription changed state: %d", got)
	}
}

func TestCloseReleasesAndDropsLateTicks(t *testing.T) {
	t.Parallel()
	sched := &manualScheduler{}
	ctrl := newController(sched)
	_, _ = ctrl.Start(context.Background(), 25)
	sub := sched.subs[0]
	if err := ctrl.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := ctrl.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	if sched.live() != 0 {
		t.Fatalf("close must cancel the tick subscription")
	}
	sub.fn()
	if got := ctrl.Snapshot().RemainingSeconds; got != 1500 {
		t.Fatalf("tick after close changed state: %d", got)
	}
	if _, err := ctrl.Start(context.Background(), 15); !errors.Is(err, apperrors.ErrClosed) {
		t.Fatalf("expected closed error, got %v", err)
	}
}

func TestStartValidationAndSchedulerFailure(t *testing.T) {
	t.Parallel()
	sched := &manualScheduler{}
	ctrl := newController(sched)
	if _, err := ctrl.Start(context.Background(), 0); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if sched.live() != 0 {
		t.Fatalf("rejected start must not subscribe")
	}

	failing := &manualScheduler{fail: errors.New("scheduler down")}
	ctrl = newController(failing)
	if _, err := ctrl.Start(context.Background(), 15); err == nil {
		t.Fatalf("scheduler failure must surface")
	}
	if ctrl.Snapshot().HasValue {
		t.Fatalf("failed start must leave timer idle")
	}
}

func TestSubscribersSeeEveryChange(t *testing.T) {
	t.Parallel()
	sched := &manualScheduler{}
	ctrl := newController(sched)
	var seen []domain.Snapshot
	stop := ctrl.Subscribe(func(s domain.Snapshot) { seen = append(seen, s) })
	_, _ = ctrl.Start(context.Background(), 1)
	sched.fire()
	stop()
	sched.fire()
	if len(seen) != 2 {
		t.Fatalf("expected start + one tick notification, got %d", len(seen))
	}
	if seen[0].RemainingSeconds != 60 || seen[1].RemainingSeconds != 59 {
		t.Fatalf("unexpected notifications %+v", seen)
	}
}
