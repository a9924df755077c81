// Package logx provides a standard logger implementation for the ca2a
// client. Diagnostics go to stderr so they never mix with rendered results
// on stdout.
package logx

import (
	"log"
	"os"
	"sync"

	"github.com/localrivet/ca2a/types"
)

// Level controls which messages a DefaultLogger emits.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// DefaultLogger provides a basic leveled logger implementation using the
// standard log package.
type DefaultLogger struct {
	logger *log.Logger
	level  Level
	mu     sync.Mutex
}

// Ensure interface compliance
var _ types.Logger = (*DefaultLogger)(nil)

// NewDefaultLogger creates a new logger writing to stderr. Debug messages
// are suppressed by default.
func NewDefaultLogger() *DefaultLogger {
	return &DefaultLogger{
		logger: log.New(os.Stderr, "[ca2a] ", log.LstdFlags|log.Lmsgprefix),
		level:  LevelInfo,
	}
}

// SetLevel updates the logging level.
func (l *DefaultLogger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *DefaultLogger) enabled(level Level) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return level >= l.level
}

func (l *DefaultLogger) Debug(msg string, args ...interface{}) {
	if l.enabled(LevelDebug) {
		l.logger.Printf("DEBUG: "+msg, args...)
	}
}

func (l *DefaultLogger) Info(msg string, args ...interface{}) {
	if l.enabled(LevelInfo) {
		l.logger.Printf("INFO: "+msg, args...)
	}
}

func (l *DefaultLogger) Warn(msg string, args ...interface{}) {
	if l.enabled(LevelWarn) {
		l.logger.Printf("WARN: "+msg, args...)
	}
}

func (l *DefaultLogger) Error(msg string, args ...interface{}) {
	if l.enabled(LevelError) {
		l.logger.Printf("ERROR: "+msg, args...)
	}
}
