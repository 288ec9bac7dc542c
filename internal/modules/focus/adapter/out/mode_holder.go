package out

import (
	"sync"

	focusout "mindspace/internal/modules/focus/port/out"
)

type MemoryModeHolder struct {
	mu    sync.RWMutex
	focus bool
}

func NewMemoryModeHolder() *MemoryModeHolder {
	return &MemoryModeHolder{}
}

var _ focusout.ModeHolder = (*MemoryModeHolder)(nil)

func (h *MemoryModeHolder) IsFocusMode() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.focus
}

func (h *MemoryModeHolder) SetFocusMode(value bool) {
	h.mu.Lock()
	h.focus = value
	h.mu.Unlock()
}

// FuncModeHolder adapts a caller's accessor and setter into a ModeHolder.
type FuncModeHolder struct {
	Get func() bool
	Set func(bool)
}

var _ focusout.ModeHolder = FuncModeHolder{}

func (h FuncModeHolder) IsFocusMode() bool   { return h.Get() }
func (h FuncModeHolder) SetFocusMode(v bool) { h.Set(v) }
