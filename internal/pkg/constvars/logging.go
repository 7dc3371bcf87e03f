package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingSessionIDKey  = "session_id"
	LoggingUserIDKey     = "user_id"
	LoggingEndpointKey   = "endpoint"
	LoggingMethodKey     = "method"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
	LoggingErrorTypeKey  = "error_type"
	LoggingStepIDKey     = "step_id"
	LoggingStepIndexKey  = "step_index"
	LoggingDataSourceKey = "data_source"
	LoggingProfileIDKey  = "profile_id"
	LoggingDeviceIDKey   = "device_id"
	LoggingEventKey      = "event"
)
