package core

// LogLevel is the minimum severity a logger emits
type LogLevel int

const (
	// LogLevelDebug includes per-request and per-query detail
	LogLevelDebug LogLevel = iota
	// LogLevelInfo is the default operational level
	LogLevelInfo
	// LogLevelWarn reports recoverable anomalies
	LogLevelWarn
	// LogLevelError reports failures
	LogLevelError
)

// Logger is the structured logging port. Fields carry per-call context as
// key/value pairs; nil fields are allowed.
type Logger interface {
	// SetLevel sets the minimum level to emit
	SetLevel(level LogLevel)
	// GetLevel returns the current minimum level
	GetLevel() LogLevel
	// Debug emits a debug message
	Debug(message string, fields map[string]any)
	// Info emits an informational message
	Info(message string, fields map[string]any)
	// Warn emits a warning
	Warn(message string, fields map[string]any)
	// Error emits an error message
	Error(message string, fields map[string]any)
	// Flush writes out any buffered entries
	Flush() error
}
