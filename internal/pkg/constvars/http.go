package constvars

import "net/http"

const (
	MethodGet    = http.MethodGet
	MethodPost   = http.MethodPost
	MethodPut    = http.MethodPut
	MethodPatch  = http.MethodPatch
	MethodDelete = http.MethodDelete
)

const (
	StatusOK                    = http.StatusOK
	StatusCreated               = http.StatusCreated
	StatusNoContent             = http.StatusNoContent
	StatusBadRequest            = http.StatusBadRequest
	StatusUnauthorized          = http.StatusUnauthorized
	StatusForbidden             = http.StatusForbidden
	StatusNotFound              = http.StatusNotFound
	StatusConflict              = http.StatusConflict
	StatusUnprocessableEntity   = http.StatusUnprocessableEntity
	StatusRequestEntityTooLarge = http.StatusRequestEntityTooLarge
	StatusTooManyRequests       = http.StatusTooManyRequests
	StatusInternalServerError   = http.StatusInternalServerError
	StatusBadGateway            = http.StatusBadGateway
	StatusServiceUnavailable    = http.StatusServiceUnavailable
	StatusGatewayTimeout        = http.StatusGatewayTimeout
)

const (
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	MIMEApplicationJSON = "application/json"
	MIMEMultipartForm   = "multipart/form-data"
)

const (
	URLParamProfileID   = "profileID"
	URLParamVitalID     = "vitalID"
	URLParamChecklistID = "checklistID"
	URLParamDeviceID    = "deviceID"
	URLParamStepID      = "stepID"
)
