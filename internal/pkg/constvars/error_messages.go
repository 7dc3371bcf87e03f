package constvars

const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientInvalidEHRFormat              = "invalid JSON format"
	ErrClientInsufficientEHRDocument       = "could not find expected fields in the uploaded record"
	ErrClientEHRFileTooLarge               = "uploaded file is too large"
	ErrClientStepNotComplete               = "please complete the current step before continuing"
	ErrClientOnboardingNotFound            = "no onboarding session found, please start again"
	ErrClientProfileNotFound               = "profile not found"
	ErrClientResourceNotFound              = "the requested item was not found"
	ErrClientChatUnavailable               = "the assistant is unavailable right now, please try again"
)

const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevValidationFailed         = "request validation failed"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseDate          = "cannot parse the requested date"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevInvalidFormat            = "invalid %s format"
	ErrDevMissingRequestID         = "request ID missing from request context"
	ErrDevMissingSessionData       = "session data missing from request context"
	ErrDevCreateHTTPRequest        = "failed to create HTTP request"
	ErrDevSendHTTPRequest          = "failed to send HTTP request"
	ErrDevFailedToHashPassword     = "failed to hash password"
	ErrDevInvalidCredentials       = "invalid credentials"
	ErrDevEmailAlreadyExists       = "email already exists"
	ErrDevUserNotExists            = "user not exists in our system"
	ErrDevAuthTokenMissing         = "authorization token missing from request"
	ErrDevAuthTokenInvalidOrExpired = "authorization token invalid or expired"
	ErrDevAuthGenerateToken        = "failed to generate authorization token"
)

const (
	ErrDevOnboardingSessionNotFound = "onboarding session not found in redis"
	ErrDevOnboardingStepInvalid     = "step %s is not complete, advance refused"
	ErrDevOnboardingUnknownStep     = "unknown onboarding step id %s"
	ErrDevEHRInsufficientDocument   = "EHR document does not contain a demographics block with a name"
	ErrDevEHRArchiveFailed          = "failed to archive uploaded EHR document"
	ErrDevEHRFileTooLarge           = "EHR upload exceeds the %d MB limit"
	ErrDevCommitFailed              = "failed to assemble or persist the completed profile"
)

const (
	ErrDevDBFailedToFindDocument    = "failed to find document"
	ErrDevDBFailedToInsertDocument  = "failed to insert document"
	ErrDevDBFailedToUpdateDocument  = "failed to update document"
	ErrDevDBFailedToDeleteDocument  = "failed to delete document"
	ErrDevDBFailedToIterateDocument = "failed to iterate documents"
	ErrDevDBStringNotObjectID       = "string is not a valid mongo object id"
	ErrDevDBFailedToFindData        = "failed to find data"
	ErrDevDBFailedToIterateDataset  = "failed to iterate dataset"
	ErrDevRedisSet                  = "failed to set redis key"
	ErrDevRedisGet                  = "failed to get redis key %s"
	ErrDevRedisDelete               = "failed to delete redis key"
	ErrDevMinioFailedToCreateObject = "failed to create object in bucket %s"
	ErrDevRabbitMQPublish           = "failed to publish message to queue %s"
	ErrDevChatUpstreamFailed        = "chat completion upstream returned an error"
	ErrDevChatRateLimited           = "chat completion request rejected by local rate limiter"
)
