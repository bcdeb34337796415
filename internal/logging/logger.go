package logging

import (
	"go.uber.org/zap"
)

// NewLogger creates a new structured logger writing to logPath.
//
// The console owns the terminal while the UI is running, so logs go to a
// file instead of stderr.
func NewLogger(serviceName, logPath string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{logPath}
	config.ErrorOutputPaths = []string{logPath}
	config.InitialFields = map[string]interface{}{
		"service": serviceName,
	}

	logger, err := config.Build()
	if err != nil {
		return nil, err
	}

	return logger, nil
}

// WithRequestID returns a logger with request_id field
func WithRequestID(logger *zap.Logger, requestID string) *zap.Logger {
	return logger.With(zap.String("request_id", requestID))
}
