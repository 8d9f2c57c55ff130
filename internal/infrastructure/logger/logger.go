package logger

import (
	"log"

	usecasecontract "github.com/danielmek/hotelhub/internal/usecase/contract"
)

// StdLogger writes leveled messages through the standard log package,
// prefixing every line with the owning component's name.
type StdLogger struct {
	component string
}

// NewStdLogger creates a StdLogger for the named component.
func NewStdLogger(component string) usecasecontract.IAppLogger {
	return &StdLogger{component: component}
}

func (l *StdLogger) printf(level, format string, args ...interface{}) {
	log.Printf("["+l.component+"] ["+level+"] "+format, args...)
}

// Debugf logs a debug message.
func (l *StdLogger) Debugf(format string, args ...interface{}) {
	l.printf("DEBUG", format, args...)
}

// Infof logs an info message.
func (l *StdLogger) Infof(format string, args ...interface{}) {
	l.printf("INFO", format, args...)
}

// Warnf logs a warning message.
func (l *StdLogger) Warnf(format string, args ...interface{}) {
	l.printf("WARN", format, args...)
}

// Errorf logs an error message.
func (l *StdLogger) Errorf(format string, args ...interface{}) {
	l.printf("ERROR", format, args...)
}

// Fatalf logs a fatal message and exits.
func (l *StdLogger) Fatalf(format string, args ...interface{}) {
	log.Fatalf("["+l.component+"] [FATAL] "+format, args...)
}
