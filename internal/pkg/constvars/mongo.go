package constvars

const (
	MongoCollectionUsers          = "users"
	MongoCollectionDoctors        = "doctors"
	MongoCollectionAppointments   = "appointments"
	MongoCollectionMedicalRecords = "medical_records"
	MongoCollectionAuditLogs      = "audit_logs"
)
