package out

// ModeHolder is the parent-owned focus flag: a read accessor plus the
// mutation callback the personal space may invoke.
type ModeHolder interface {
	IsFocusMode() bool
	SetFocusMode(value bool)
}
