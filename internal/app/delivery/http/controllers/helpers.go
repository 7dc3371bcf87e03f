package controllers

import (
	"healthpilot-service/internal/pkg/constvars"
	"healthpilot-service/internal/pkg/exceptions"
	"healthpilot-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// contextScope pulls the request ID and session payload out of the request
// context, writing the error response itself when either is missing.
func contextScope(log *zap.Logger, w http.ResponseWriter, r *http.Request, operation string) (requestID, sessionData string, ok bool) {
	requestID, found := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !found || requestID == "" {
		log.Error(operation + " requestID not found in context")
		utils.BuildErrorResponse(log, w, exceptions.ErrMissingRequestID(nil))
		return "", "", false
	}
	log.Info(operation+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	sessionData, found = r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !found || sessionData == "" {
		log.Error(operation+" sessionData not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		utils.BuildErrorResponse(log, w, exceptions.ErrMissingSessionData(nil))
		return "", "", false
	}
	return requestID, sessionData, true
}
