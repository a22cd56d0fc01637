package logger

import (
	"context"
	"os"

	"cloud.google.com/go/logging"
)

// GoogleCloudLogger sends structured log entries to Google Cloud Logging
type GoogleCloudLogger struct {
	client *logging.Client
	logger *logging.Logger
}

// NewGoogleCloudLogger connects to Cloud Logging for the given project. Call Close on shutdown.
func NewGoogleCloudLogger(ctx context.Context, projectID string, logName string) (*GoogleCloudLogger, error) {
	client, err := logging.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return &GoogleCloudLogger{
		client: client,
		logger: client.Logger(logName),
	}, nil
}

// Error is for throwing a log message with status Error
func (l *GoogleCloudLogger) Error(message string, err error) {
	payload := map[string]interface{}{"message": message}
	if err != nil {
		payload["error"] = err.Error()
	}

	l.logger.Log(logging.Entry{Severity: logging.Error, Payload: payload})
}

// Info is for throwing a log message with status Info
func (l *GoogleCloudLogger) Info(message string) {
	l.logger.Log(logging.Entry{Severity: logging.Info, Payload: message})
}

// Debug is for throwing a log message with status Debug
func (l *GoogleCloudLogger) Debug(message string) {
	l.logger.Log(logging.Entry{Severity: logging.Debug, Payload: message})
}

// Fatal logs synchronously and exits the process
func (l *GoogleCloudLogger) Fatal(err error) {
	_ = l.logger.LogSync(context.Background(), logging.Entry{Severity: logging.Critical, Payload: err.Error()})
	_ = l.client.Close()
	os.Exit(1)
}

// Close flushes buffered entries and closes the client
func (l *GoogleCloudLogger) Close() error {
	return l.client.Close()
}
