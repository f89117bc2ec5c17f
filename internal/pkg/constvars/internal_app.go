package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "CARE4U_SVC_"
)

const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
	RoleAdmin   = "admin"
)

const (
	ResourceUsers          = "users"
	ResourceDoctors        = "doctors"
	ResourceAppointments   = "appointments"
	ResourceMedicalRecords = "medical-records"
	ResourceAuth           = "auth"
	ResourceTriage         = "triage"
)

const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCancelled = "cancelled"
	AppointmentStatusCompleted = "completed"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

// Fixed-window limiter groups.
const (
	LimiterGroupLogin = "LOGIN"
)

// Audit actions recorded for sensitive operations.
const (
	AuditActionCreateUser        = "CREATE_USER"
	AuditActionCreateDoctor      = "CREATE_DOCTOR"
	AuditActionUpdateSchedule    = "UPDATE_SCHEDULE"
	AuditActionUpdateAppointment = "UPDATE_APPOINTMENT"
	AuditActionUploadRecord      = "UPLOAD_MEDICAL_RECORD"
)
