package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

const defaultLogFile = "stepform.log"

var (
	traceMu      sync.Mutex
	traceEnabled bool
	logPath      = defaultLogFile

	logger = newLogger()
)

// appendWriter opens the current log path for every write so the file can be
// rotated or removed underneath a running program.
type appendWriter struct{}

func (appendWriter) Write(p []byte) (int, error) {
	traceMu.Lock()
	path := logPath
	traceMu.Unlock()
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
		return 0, err
	}
	defer f.Close()
	return f.Write(p)
}

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(appendWriter{})
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrus.TraceLevel)
	return l
}

// Logger exposes the shared logrus instance for callers that need fields.
func Logger() *logrus.Logger {
	return logger
}

// Error writes errors to the shared log file.
func Error(err error) {
	if err == nil {
		return
	}
	logger.WithError(err).Error("error")
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	traceMu.Lock()
	traceEnabled = enabled
	traceMu.Unlock()
}

// TraceEnabled reports whether Trace currently writes entries.
func TraceEnabled() bool {
	traceMu.Lock()
	defer traceMu.Unlock()
	return traceEnabled
}

// Trace appends a structured JSON entry to the shared log when tracing is enabled.
func Trace(event string, payload interface{}) {
	if !TraceEnabled() {
		return
	}
	entry := logger.WithField("event", event)
	if payload != nil {
		entry = entry.WithField("payload", payload)
	}
	entry.Trace("trace")
}

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing.
func Configure(path string) {
	traceMu.Lock()
	defer traceMu.Unlock()
	if strings.TrimSpace(path) == "" {
		logPath = defaultLogFile
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = defaultLogFile
		return
	}
	logPath = path
}
