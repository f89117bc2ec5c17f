package responses

type TriageResult struct {
	Specialization string   `json:"specialization"`
	Urgency        string   `json:"urgency"`
	SeverityScore  int      `json:"severity_score"`
	IsEmergency    bool     `json:"is_emergency"`
	Advice         string   `json:"advice"`
	Doctors        []Doctor `json:"doctors,omitempty"`
}
