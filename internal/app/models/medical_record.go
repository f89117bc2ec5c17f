package models

type MedicalRecord struct {
	ID          string `bson:"_id,omitempty"`
	PatientID   string `bson:"patientId"`
	DoctorID    string `bson:"doctorId,omitempty"`
	Title       string `bson:"title"`
	Description string `bson:"description,omitempty"`
	ObjectName  string `bson:"objectName"`
	FileName    string `bson:"fileName"`
	ContentType string `bson:"contentType"`
	SizeBytes   int64  `bson:"sizeBytes"`
	TimeModel   `bson:",inline"`
}
