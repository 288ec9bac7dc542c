package domain

import (
	"fmt"

	apperrors "mindspace/internal/platform/errors"
)

var DefaultPresets = []int{15, 25, 45}

type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseRunning Phase = "running"
	PhaseExpired Phase = "expired"
)

// Snapshot is a read-only copy of the countdown. HasValue is false until the
// first Start.
type Snapshot struct {
	RemainingSeconds int
	HasValue         bool
	Active           bool
}

func (s Snapshot) Phase() Phase {
	switch {
	case !s.HasValue:
		return PhaseIdle
	case s.Active:
		return PhaseRunning
	default:
		return PhaseExpired
	}
}

// Timer is the countdown state machine: Idle -> Running -> Expired, with
// Start re-entering Running from any phase.
type Timer struct {
	remaining int
	hasValue  bool
	active    bool
}

func (t *Timer) Start(minutes int) error {
	if minutes <= 0 {
		return fmt.Errorf("duration must be positive, got %d minutes: %w", minutes, apperrors.ErrInvalidInput)
	}
	t.remaining = minutes * 60
	t.hasValue = true
	t.active = true
	return nil
}

// Tick advances the countdown by one second. It reports whether the state
// changed; ticks outside Running are no-ops.
func (t *Timer) Tick() bool {
	if !t.active {
		return false
	}
	if t.remaining > 0 {
		t.remaining--
	}
	if t.remaining == 0 {
		t.active = false
	}
	return true
}

func (t *Timer) Snapshot() Snapshot {
	return Snapshot{RemainingSeconds: t.remaining, HasValue: t.hasValue, Active: t.active}
}

func (t *Timer) Phase() Phase {
	return t.Snapshot().Phase()
}

// FormatClock renders seconds as M:SS with unpadded minutes.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
