package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

// EnvVar names the environment variable holding the log file path.
const EnvVar = "LAYERKIT_DEBUG"

var (
	logger  = newLogger()
	logFile *os.File
	mu      sync.Mutex
)

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrus.DebugLevel)
	return l
}

// Init directs logging to the file at path, creating it if needed. An empty
// path turns logging off.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	closeLocked()
	if path == "" {
		return nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}
	logFile = f
	logger.SetOutput(f)
	return nil
}

// InitFromEnv calls Init with the value of EnvVar.
func InitFromEnv() error {
	return Init(os.Getenv(EnvVar))
}

// Close closes the debug log file and turns logging off.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	logger.SetOutput(io.Discard)
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// Log writes a debug message.
func Log(format string, args ...any) {
	logger.Debugf(format, args...)
}

// Component returns an entry tagged with the component name, for leveled
// and structured messages.
func Component(name string) *logrus.Entry {
	return logger.WithField("component", name)
}
