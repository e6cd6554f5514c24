package core

import "time"

// TimeProvider abstracts time operations so settlement timestamps and lock
// expirations are testable
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}
