package responses

type MedicalRecord struct {
	ID          string `json:"id"`
	DoctorID    string `json:"doctor_id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
	UploadedAt  string `json:"uploaded_at"`
}

type MedicalRecordDownload struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	ExpiresIn int    `json:"expires_in_seconds"`
}
