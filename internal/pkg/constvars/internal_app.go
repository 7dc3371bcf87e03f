package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "HLTHPLT_SVC_"
)

const (
	MongoCollectionUsers      = "users"
	MongoCollectionProfiles   = "profiles"
	MongoCollectionVitals     = "vitals"
	MongoCollectionChecklists = "checklists"
	MongoCollectionDevices    = "devices"
)

const (
	RedisKeySessionFormat    = "session:%s"
	RedisKeyOnboardingFormat = "onboarding:%s"
)

const (
	RabbitMQProfileCompletedRoutingKey = "profile.completed"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

const (
	ResourceVitals = "vitals"
)
