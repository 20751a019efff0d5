package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// LogFilePath is the path to the session log file, relative to the working
// directory (project root when run via go run ./cmd/game).
const LogFilePath = "logs/session.txt"

// Logger appends timestamped session events (preset loads, resets) to a file.
// The file is held open for the life of the logger; Close it on shutdown.
// Safe for use from the single game goroutine; the mutex guards the rare case
// of logging from a deferred shutdown path.
type Logger struct {
	mu   sync.Mutex
	file *os.File
}

// New returns a Logger writing to LogFilePath, creating the logs directory if
// needed. A logger with a nil file (e.g. read-only disk) silently drops lines.
func New() *Logger {
	_ = os.MkdirAll(filepath.Dir(LogFilePath), 0755)
	f, err := os.OpenFile(LogFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		f = nil
	}
	return &Logger{file: f}
}

// Log appends one line, prefixed with [timestamp] using computer time.
func (l *Logger) Log(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return
	}
	ts := time.Now().Format("2006-01-02 15:04:05")
	_, _ = l.file.WriteString("[" + ts + "] " + line + "\n")
}

// Logf formats and appends one line.
func (l *Logger) Logf(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}

// Close flushes and closes the log file. Further Log calls are dropped.
func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		_ = l.file.Close()
		l.file = nil
	}
}
