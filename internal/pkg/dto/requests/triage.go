package requests

type AnalyzeSymptoms struct {
	Symptoms string `json:"symptoms" validate:"required,min=3,max=1000"`
}
