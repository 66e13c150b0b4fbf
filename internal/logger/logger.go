package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultPath is the log file used when no path is configured, relative to the working directory.
const DefaultPath = "logs/rectangle.txt"

// Logger appends timestamped lines to a file on disk. Errors are also echoed to the error stream.
type Logger struct {
	mu     sync.Mutex
	path   string
	errOut io.Writer
}

// New returns a Logger writing to path (DefaultPath when empty) and echoing errors to errOut
// (os.Stderr when nil). The log directory is created if needed.
func New(path string, errOut io.Writer) *Logger {
	if path == "" {
		path = DefaultPath
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	_ = os.MkdirAll(filepath.Dir(path), 0755)
	return &Logger{path: path, errOut: errOut}
}

// Log appends a line prefixed with [timestamp]. Failure to write the file is ignored.
func (l *Logger) Log(line string) {
	stamped := "[" + time.Now().Format("2006-01-02 15:04:05") + "] " + line

	l.mu.Lock()
	defer l.mu.Unlock()
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Logf formats and logs a line.
func (l *Logger) Logf(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}

// Errorf logs a line tagged as an error and writes the message to the error stream.
func (l *Logger) Errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	l.Log("error: " + msg)
	_, _ = fmt.Fprintln(l.errOut, msg)
}
