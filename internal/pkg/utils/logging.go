package utils

import (
	"healthpilot-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

func LogBusinessEvent(logger *zap.Logger, event string, requestID string, fields ...zap.Field) {
	allFields := append([]zap.Field{
		zap.String(constvars.LoggingEventKey, event),
		zap.String(constvars.LoggingRequestIDKey, requestID),
	}, fields...)
	logger.Info("Business event", allFields...)
}
