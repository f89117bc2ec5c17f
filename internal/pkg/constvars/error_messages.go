package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"alphanum": "must contain only alphanumeric characters",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"eqfield":  "must match %s",
	"password": "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"numeric":  "must be a number",
	"oneof":    "must be one of [%s]",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
	"datetime": "must match the format %s",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"eqfield":  true,
	"oneof":    true,
	"gte":      true,
	"lte":      true,
	"datetime": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientEmailAlreadyExists            = "email already registered"
	ErrClientUsernameAlreadyExists         = "username already taken"
	ErrClientInvalidAdminKey               = "invalid admin access key"
	ErrClientTooManyLoginAttempts          = "too many login attempts, please try again later"
	ErrClientDoctorNotFound                = "doctor not found"
	ErrClientAppointmentNotFound           = "appointment not found"
	ErrClientRecordNotFound                = "medical record not found"
	ErrClientSlotAlreadyBooked             = "this time slot is already booked"
	ErrClientInvalidAppointmentStatus      = "invalid status"
	ErrClientDayNotAvailable               = "the doctor is not available on the requested day"
	ErrClientTimeOutsideSchedule           = "the requested time is outside the doctor's working hours"
	ErrClientFileTypeNotAllowed            = "file type not allowed"
	ErrClientFileTooLarge                  = "file exceeds the maximum allowed size"

	// Schedule update messages, shown verbatim to the caller.
	ErrClientScheduleMissingField     = "available days, start time, end time and consultation fee are required"
	ErrClientScheduleInvalidDay       = "available days must be full weekday names (Monday through Sunday)"
	ErrClientScheduleInvalidTime      = "start and end time must be in 24-hour HH:MM format"
	ErrClientScheduleInvalidTimeRange = "end time must be after start time"
	ErrClientScheduleInvalidFee       = "consultation fee must be a non-negative number"
	ErrClientScheduleFeeTooLarge      = "consultation fee exceeds the allowed maximum"
	ErrClientScheduleCouldNotSave     = "could not save your schedule, please try again"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevCannotParseDate          = "cannot parse the requested date"
	ErrDevValidationFailed         = "request validation failed"
	ErrDevServerDeadlineExceeded   = "server deadline exceeded while processing request"
	ErrDevServerProcess            = "unexpected server error while processing request"
	ErrDevInvalidCredentials       = "invalid credentials"
	ErrDevEmailAlreadyExists       = "email already exists"
	ErrDevUsernameAlreadyExists    = "username already exists"
	ErrDevUserNotExists            = "user not exists in our system"
	ErrDevInvalidAdminKey          = "admin registration key does not match"
	ErrDevFailedToHashPassword     = "failed to hash password"
	ErrDevRoleTypeDoesntMatch      = "request done by user with different role"
	ErrDevAuthTokenMissing         = "authorization token missing from request"
	ErrDevAuthTokenInvalid         = "authorization token invalid"
	ErrDevAuthTokenInvalidOrExpired = "authorization token invalid or expired"
	ErrDevAuthInvalidSession       = "session not found or expired in redis"
	ErrDevAuthGenerateToken        = "failed to generate JWT token"
	ErrDevAuthSigningMethod        = "unexpected JWT signing method"
	ErrDevTooManyLoginAttempts     = "login attempt quota exceeded for identifier"

	// Schedule update
	ErrDevScheduleMissingField     = "schedule update rejected: one or more required fields absent or empty"
	ErrDevScheduleInvalidDay       = "schedule update rejected: day token not in canonical weekday set"
	ErrDevScheduleInvalidTime      = "schedule update rejected: time does not parse as HH:MM"
	ErrDevScheduleInvalidTimeRange = "schedule update rejected: end time not strictly after start time"
	ErrDevScheduleInvalidFee       = "schedule update rejected: fee not a finite non-negative decimal"
	ErrDevScheduleFeeTooLarge      = "schedule update rejected: fee above configured ceiling"
	ErrDevScheduleStorageFailed    = "schedule persistence failed after validation passed"

	// Appointments
	ErrDevDoctorNotFound           = "doctor document not found"
	ErrDevAppointmentNotFound      = "appointment document not found"
	ErrDevSlotAlreadyBooked        = "confirmed appointment already exists for doctor/date/time"
	ErrDevInvalidAppointmentStatus = "appointment status not one of confirmed/cancelled/completed"
	ErrDevAppointmentNotOwned      = "appointment does not belong to the caller"

	// Medical records
	ErrDevRecordNotFound      = "medical record document not found"
	ErrDevFileTypeNotAllowed  = "uploaded file extension not in whitelist"
	ErrDevFileTooLarge        = "uploaded file larger than configured maximum"
	ErrDevFileReadFailed      = "failed to read uploaded file"

	// Mongo DB
	ErrDevDBFailedToFindDocument     = "failed to find document on mongo database"
	ErrDevDBFailedToInsertDocument   = "failed to insert document to mongo database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document on mongo database"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document on mongo database"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents on mongo database"
	ErrDevDBFailedToCountDocuments   = "failed to count documents on mongo database"
	ErrDevDBStringNotObjectID        = "given string cannot be converted to mongo ObjectID"

	// Redis
	ErrDevRedisGetNoData      = "no data found on redis with key: %s"
	ErrDevRedisGetData        = "failed to get data from redis"
	ErrDevRedisSetData        = "failed to set data to redis"
	ErrDevRedisDeleteData     = "failed to delete data from redis"
	ErrDevRedisIncrementValue = "failed to increment value on redis"
	ErrDevRedisStoreSession   = "failed to store session on redis"

	// Minio
	ErrDevMinioFailedToCreateObject = "failed to create object on minio bucket %s"
	ErrDevMinioFailedToPresignURL   = "failed to generate presigned url for minio bucket %s"

	// RabbitMQ
	ErrDevRabbitMQPublishMessage = "failed to publish message to rabbitmq queue %s"
	ErrDevRabbitMQConsume        = "failed to start consuming rabbitmq queue %s"
)
