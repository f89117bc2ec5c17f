package triage

import "care4u-service/internal/app/models"

// defaultRules is the keyword table the analyzer walks top to bottom.
// Emergency patterns come first so they win over milder matches.
var defaultRules = []models.TriageRule{
	{
		Keywords:       []string{"chest pain", "shortness of breath", "palpitations"},
		Specialization: "Cardiology",
		Urgency:        "high",
		Advice:         "These symptoms can indicate a heart condition. Book a cardiologist as soon as possible; call emergency services if the pain is severe.",
	},
	{
		Keywords:       []string{"seizure", "numbness", "severe headache", "loss of consciousness"},
		Specialization: "Neurology",
		Urgency:        "high",
		Advice:         "Neurological symptoms need prompt attention. Book a neurologist as soon as possible.",
	},
	{
		Keywords:       []string{"rash", "itching", "acne", "eczema"},
		Specialization: "Dermatology",
		Urgency:        "low",
		Advice:         "Skin complaints are rarely urgent. Book a dermatologist at your convenience.",
	},
	{
		Keywords:       []string{"joint pain", "back pain", "fracture", "swelling"},
		Specialization: "Orthopedics",
		Urgency:        "medium",
		Advice:         "Persistent joint or bone pain should be examined. Book an orthopedic specialist.",
	},
	{
		Keywords:       []string{"fever", "cough", "sore throat", "cold", "headache"},
		Specialization: "General Medicine",
		Urgency:        "low",
		Advice:         "These look like common symptoms. A general physician can assess and refer you if needed.",
	},
	{
		Keywords:       []string{"anxiety", "depression", "insomnia", "stress"},
		Specialization: "Psychiatry",
		Urgency:        "medium",
		Advice:         "Mental wellbeing matters. Book a psychiatrist to talk things through.",
	},
}

// fallbackRule answers when no keyword matches.
var fallbackRule = models.TriageRule{
	Specialization: "General Medicine",
	Urgency:        "low",
	Advice:         "We could not match your symptoms to a specialty. A general physician is the best starting point.",
}

// emergencyKeywords carry a numeric urgency each. Any hit marks the
// analysis as an emergency and the severity score becomes the highest
// urgency among the hits.
var emergencyKeywords = map[string]int{
	"chest pain":           100,
	"heart attack":         100,
	"stroke":               100,
	"difficulty breathing": 90,
	"unconscious":          100,
	"severe bleeding":      90,
	"anaphylaxis":          100,
	"poisoning":            90,
	"suicide":              100,
}

const emergencyAdvice = "CRITICAL: your symptoms indicate a possible medical emergency. Go to the nearest emergency room immediately."

// severityPerMatch and severityBase turn a rule's keyword hit count into
// a bounded severity score for non-emergency symptoms.
const (
	severityPerMatch = 10
	severityBase     = 20
	severityCeiling  = 80
)

func severityFor(matchCount int) int {
	severity := matchCount*severityPerMatch + severityBase
	if severity > severityCeiling {
		return severityCeiling
	}
	return severity
}
