package models

import "strings"

// TriageRule maps symptom keywords to the specialization a patient should
// book. Rules are evaluated in order; the first keyword hit wins.
type TriageRule struct {
	Keywords       []string
	Specialization string
	Urgency        string
	Advice         string
}

// Matches reports whether any of the rule's keywords occurs in the
// lower-cased symptom text.
func (r TriageRule) Matches(symptoms string) bool {
	return r.MatchCount(symptoms) > 0
}

// MatchCount counts how many of the rule's keywords occur in the
// lower-cased symptom text. The count feeds the severity score.
func (r TriageRule) MatchCount(symptoms string) int {
	lowered := strings.ToLower(symptoms)
	count := 0
	for _, keyword := range r.Keywords {
		if strings.Contains(lowered, keyword) {
			count++
		}
	}
	return count
}
