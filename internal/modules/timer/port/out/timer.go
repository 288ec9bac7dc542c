package out

import "time"

// Subscription is the cancellation handle of a recurring callback.
// Cancel must be safe to call more than once.
type Subscription interface {
	Cancel()
}

// Scheduler fires fn roughly every interval until the subscription is cancelled.
type Scheduler interface {
	Every(interval time.Duration, fn func()) (Subscription, error)
}
