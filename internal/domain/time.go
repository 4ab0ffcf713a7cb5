package domain

import "time"

// CurrentTimeProvider is the clock behind cache expiry, knowledge timestamps and session
// creation times. Tests replace it to move time without sleeping.
type CurrentTimeProvider interface {
	Now() time.Time
}

// ExpiresAt returns the instant an entry written now with ttl stops being served.
func ExpiresAt(clock CurrentTimeProvider, ttl time.Duration) time.Time {
	return clock.Now().Add(ttl)
}

// Expired reports whether deadline has been reached. An entry is stale at its deadline, not after it.
func Expired(clock CurrentTimeProvider, deadline time.Time) bool {
	return !clock.Now().Before(deadline)
}
