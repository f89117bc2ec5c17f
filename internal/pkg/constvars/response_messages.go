package constvars

const (
	ResponseUnknown = "unknown"

	// User-related messages
	UserCreatedSuccess       = "user created successfully"
	UpdateProfileSuccess     = "profile updated successfully"
	GetProfileSuccess        = "get profile successfully"
	GetUsersSuccess          = "get users successfully"
	GetDoctorsSuccess        = "get doctors successfully"
	GetDoctorSuccess         = "get doctor successfully"
	DoctorCreatedSuccess     = "doctor added successfully"
	GetSpecializationSuccess = "get specializations successfully"

	PasswordChangedSuccess = "password changed successfully"

	// Schedule messages
	UpdateScheduleSuccess = "schedule updated successfully"
	GetScheduleSuccess    = "get schedule successfully"

	// Appointment messages
	AppointmentBookedSuccess   = "appointment booked successfully, waiting for confirmation"
	GetAppointmentsSuccess     = "get appointments successfully"
	GetAvailableSlotsSuccess   = "get available slots successfully"
	AppointmentUpdatedSuccess  = "appointment %s successfully"
	AppointmentCancelSuccess   = "appointment cancelled successfully"
	GetDashboardStatsSuccess   = "get dashboard statistics successfully"
	GetDoctorDashboardSuccess  = "get doctor dashboard successfully"

	// Medical record messages
	MedicalRecordUploadSuccess   = "medical record uploaded successfully"
	GetMedicalRecordsSuccess     = "get medical records successfully"
	MedicalRecordDownloadSuccess = "download link generated successfully"

	// Triage messages
	TriageAnalysisSuccess = "symptom analysis completed"

	// Auth messages
	LoginSuccess  = "successfully login"
	LogoutSuccess = "successfully logout"
)
