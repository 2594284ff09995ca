// Package logger is the plugin's diagnostics sink: a plain text log file
// recreated on every game start, holding a header line followed by
// timestamped, severity-tagged records.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Level is the log severity level.
type Level uint8

// Severity levels, lowest to highest. Records below a logger's threshold
// are dropped; Off suppresses everything.
const (
	Debug Level = iota
	Info
	Warning
	Error
	Off
)

// TimeLayout is used to format record timestamps.
const TimeLayout = "2006-01-02 15:04:05"

func (lv Level) String() string {
	switch lv {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Logger appends records to a single destination held open for the
// process lifetime. Writes are synchronous and unbuffered. The host
// drives the plugin from a single simulation thread, so there is no
// locking here.
type Logger struct {
	w   io.Writer
	min Level
	now func() time.Time
}

// New returns a logger writing to w, dropping records below min.
func New(w io.Writer, min Level) *Logger {
	return &Logger{w: w, min: min, now: time.Now}
}

// NewFile creates or truncates the log file at path. The file handle is
// never closed; it lives as long as the host process.
func NewFile(path string, min Level) (*Logger, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "create log file %s", path)
	}
	return New(f, min), nil
}

// WriteHeader writes the log file header line, regardless of the
// severity threshold.
func (l *Logger) WriteHeader(text string) {
	fmt.Fprintln(l.w, text)
}

// WriteLine appends one record.
func (l *Logger) WriteLine(lv Level, msg string) {
	if lv >= Off || lv < l.min {
		return
	}
	fmt.Fprintf(l.w, "[%s] [%s] %s\n", l.now().Format(TimeLayout), lv, msg)
}

// WriteLinef appends one formatted record.
func (l *Logger) WriteLinef(lv Level, format string, args ...any) {
	if lv >= Off || lv < l.min {
		return
	}
	l.WriteLine(lv, fmt.Sprintf(format, args...))
}
