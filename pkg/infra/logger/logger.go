package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const logsDir = "logs"

// NewLogger builds the JSON logger for the given server type. Entries go to
// logs/<serverType>.log and to stdout; the returned func flushes both.
func NewLogger(serverType string) (*logrus.Logger, func(), error) {
	logger := logrus.New()

	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "time",
			logrus.FieldKeyMsg:  "msg",
		},
	})
	logger.SetLevel(ParseLevel(os.Getenv("LOG_LEVEL")))

	logFile, err := logFilePath(serverType)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(logsDir, 0750); err != nil {
		return nil, nil, fmt.Errorf("failed to create logs directory: %w", err)
	}
	fileWriter, err := NewAsyncFileWriter(logFile, 32*1024)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize async log writer: %w", err)
	}
	logger.SetOutput(fileWriter)

	consoleHook := NewAsyncConsoleHook(4096)
	logger.AddHook(consoleHook)

	closer := func() {
		consoleHook.Close()
		fileWriter.Close()
	}
	return logger, closer, nil
}

// ParseLevel falls back to info for empty or unknown levels.
func ParseLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}

func logFilePath(serverType string) (string, error) {
	name := "proxy"
	if serverType == "admin" {
		name = "admin"
	}
	logFile := filepath.Clean(filepath.Join(logsDir, name+".log"))
	if !strings.HasPrefix(logFile, logsDir+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid log file path %q: must be in %s directory", logFile, logsDir)
	}
	return logFile, nil
}
