package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// Stamp renders the clock's current instant the way archive entries store dates.
func Stamp(c Clock) string {
	return c.Now().Format(time.RFC3339)
}
