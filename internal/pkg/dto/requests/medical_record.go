package requests

// UploadMedicalRecord is assembled from a multipart form, not JSON, so the
// file fields are filled by the controller after reading the part headers.
type UploadMedicalRecord struct {
	Title       string `validate:"required,max=120"`
	Description string `validate:"omitempty,max=1000"`
	DoctorID    string `validate:"omitempty"`
	FileName    string `validate:"required"`
	ContentType string `validate:"required"`
	SizeBytes   int64
	Content     []byte
}
