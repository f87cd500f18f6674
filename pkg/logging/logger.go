// Package logging writes component-tagged diagnostics to a per-run log file.
//
// The webtools server speaks its protocol over stdout, so nothing except
// protocol frames may be written there. All diagnostics go to
// ~/.webtools/logs/<run-id>-webtools.log, shared by every component in the
// process; when the file cannot be opened the logger degrades to stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Logger tags each entry with a component name and writes it to this run's
// shared log file.
type Logger struct {
	runID     string
	component string
	mu        sync.Mutex
	out       io.Writer
	file      *os.File
	logPath   string
	closeOnce sync.Once
}

var (
	runID     string
	runIDOnce sync.Once
)

// processRunID returns the identifier shared by every logger in this process.
func processRunID() string {
	runIDOnce.Do(func() {
		runID = uuid.New().String()
	})
	return runID
}

// NewLogger opens a component logger against the run's shared log file. On
// failure it returns a stderr-backed logger together with the error, so the
// caller can log either way.
func NewLogger(component string) (*Logger, error) {
	l := &Logger{
		runID:     processRunID(),
		component: component,
		out:       os.Stderr,
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return l, fmt.Errorf("failed to get home directory: %w", err)
	}

	dir := filepath.Join(home, ".webtools", "logs")
	if err := os.MkdirAll(dir, 0750); err != nil {
		return l, fmt.Errorf("failed to create log directory: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("%s-webtools.log", l.runID))

	// Append mode: all components in the process share one file
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return l, fmt.Errorf("failed to open log file: %w", err)
	}

	l.file = file
	l.out = file
	l.logPath = path
	return l, nil
}

func (l *Logger) write(level, format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.out, "[%s] [%s] [%s] %s\n",
		time.Now().Format("2006-01-02 15:04:05.000"),
		l.component,
		level,
		fmt.Sprintf(format, v...))
}

// Debugf logs a debug-level message.
func (l *Logger) Debugf(format string, v ...interface{}) { l.write("DEBUG", format, v...) }

// Infof logs an info-level message.
func (l *Logger) Infof(format string, v ...interface{}) { l.write("INFO", format, v...) }

// Warnf logs a warning-level message.
func (l *Logger) Warnf(format string, v ...interface{}) { l.write("WARN", format, v...) }

// Errorf logs an error-level message.
func (l *Logger) Errorf(format string, v ...interface{}) { l.write("ERROR", format, v...) }

// Writer exposes the log destination for subprocess output (the Playwright
// driver must not touch stdout).
func (l *Logger) Writer() io.Writer {
	return l.out
}

// RunID returns the run ID shared by all loggers in this process.
func (l *Logger) RunID() string {
	return l.runID
}

// LogPath returns the path to the log file, empty in stderr fallback mode.
func (l *Logger) LogPath() string {
	return l.logPath
}

// Close closes the log file. Safe to call multiple times; entries written
// after Close fall back to stderr.
func (l *Logger) Close() error {
	var err error
	l.closeOnce.Do(func() {
		if l.file != nil {
			err = l.file.Close()
			l.mu.Lock()
			l.out = os.Stderr
			l.file = nil
			l.mu.Unlock()
		}
	})
	return err
}
