package core

import (
	"sync"

	coreport "github.com/GHzOliveira/neurocooperacao-backend/internal/domain/port/core"
)

// MockLogger is a test logger that records log calls instead of writing them
type MockLogger struct {
	mu      sync.Mutex
	level   coreport.LogLevel
	Entries []LogEntry
}

// LogEntry is one recorded log call
type LogEntry struct {
	Level   string
	Message string
	Fields  map[string]any
}

// NewMockLogger creates a recording test logger
func NewMockLogger() *MockLogger {
	return &MockLogger{level: coreport.LogLevelInfo}
}

func (l *MockLogger) record(level, message string, fields map[string]any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Entries = append(l.Entries, LogEntry{Level: level, Message: message, Fields: fields})
}

// SetLevel sets the minimum log level
func (l *MockLogger) SetLevel(level coreport.LogLevel) { l.level = level }

// GetLevel gets the current log level
func (l *MockLogger) GetLevel() coreport.LogLevel { return l.level }

// Debug records a debug call
func (l *MockLogger) Debug(message string, fields map[string]any) {
	l.record("debug", message, fields)
}

// Info records an info call
func (l *MockLogger) Info(message string, fields map[string]any) {
	l.record("info", message, fields)
}

// Warn records a warn call
func (l *MockLogger) Warn(message string, fields map[string]any) {
	l.record("warn", message, fields)
}

// Error records an error call
func (l *MockLogger) Error(message string, fields map[string]any) {
	l.record("error", message, fields)
}

// Flush is a no-op
func (l *MockLogger) Flush() error { return nil }
