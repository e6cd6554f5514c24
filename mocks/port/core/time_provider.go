package core

import (
	"time"
)

// MockTimeProvider is a TimeProvider pinned to a fixed instant
type MockTimeProvider struct {
	Current time.Time
}

// NewMockTimeProvider creates a time provider pinned to t
func NewMockTimeProvider(t time.Time) *MockTimeProvider {
	return &MockTimeProvider{Current: t}
}

// Now returns the pinned instant
func (p *MockTimeProvider) Now() time.Time {
	return p.Current
}

// Since measures against the pinned instant
func (p *MockTimeProvider) Since(t time.Time) time.Duration {
	return p.Current.Sub(t)
}
