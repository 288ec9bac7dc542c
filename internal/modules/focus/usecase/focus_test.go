package usecase_test

import (
	"context"
	"testing"
	"time"

	focusadapter "mindspace/internal/modules/focus/adapter/out"
	"mindspace/internal/modules/focus/usecase"
	timerdto "mindspace/internal/modules/timer/dto"
	timerout "mindspace/internal/modules/timer/port/out"
	timerservice "mindspace/internal/modules/timer/service"
	timerusecase "mindspace/internal/modules/timer/usecase"
	"mindspace/internal/platform/logging"
)

type tickOnDemand struct{ fn func() }

type sub struct{}

func (sub) Cancel() {}

func (s *tickOnDemand) Every(_ time.Duration, fn func()) (timerout.Subscription, error) {
	s.fn = fn
	return sub{}, nil
}

func TestEnterExitToggle(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(focusadapter.NewMemoryModeHolder())
	if got := uc.Current(); got.Focus || got.Mode != "normal" {
		t.Fatalf("expected normal mode, got %+v", got)
	}
	if got := uc.Enter(); !got.Focus || got.Mode != "focus" {
		t.Fatalf("expected focus mode, got %+v", got)
	}
	if got := uc.Toggle(); got.Focus {
		t.Fatalf("toggle should leave focus mode")
	}
	uc.Toggle()
	if got := uc.Exit(); got.Focus {
		t.Fatalf("exit should restore normal mode")
	}
}

func TestModeChangesGoThroughParentCallback(t *testing.T) {
	t.Parallel()
	parent := false
	var requests []bool
	holder := focusadapter.FuncModeHolder{
		Get: func() bool { return parent },
		Set: func(v bool) { requests = append(requests, v); parent = v },
	}
	uc := usecase.NewInteractor(holder)
	uc.Enter()
	uc.Exit()
	if len(requests) != 2 || !requests[0] || requests[1] {
		t.Fatalf("unexpected parent requests %v", requests)
	}
}

func TestFocusToggleLeavesTimerUntouched(t *testing.T) {
	t.Parallel()
	sched := &tickOnDemand{}
	timer := timerusecase.NewInteractor(timerservice.NewController(sched, time.Second, logging.Discard()), nil)
	focus := usecase.NewInteractor(focusadapter.NewMemoryModeHolder())
	ctx := context.Background()

	if _, err := timer.Start(ctx, timerdto.StartInput{Minutes: 25}); err != nil {
		t.Fatalf("start: %v", err)
	}
	sched.fn()
	before := timer.State(ctx)

	focus.Enter()
	if after := timer.State(ctx); after != before {
		t.Fatalf("entering focus changed timer: %+v -> %+v", before, after)
	}
	sched.fn()
	running := timer.State(ctx)
	if running.RemainingSeconds != before.RemainingSeconds-1 || !running.Active {
		t.Fatalf("countdown must keep running under the overlay: %+v", running)
	}
	focus.Exit()
	if after := timer.State(ctx); after != running {
		t.Fatalf("exiting focus changed timer: %+v -> %+v", running, after)
	}
}
