package models

import "time"

type QuestionType string

const (
	QuestionSingleChoice   QuestionType = "single-choice"
	QuestionMultipleChoice QuestionType = "multiple-choice"
	QuestionTextShort      QuestionType = "text-short"
	QuestionTextLong       QuestionType = "text-long"
	QuestionNumeric        QuestionType = "numeric"
	QuestionFile           QuestionType = "file"
)

// DependsOn makes a question visible only when another question was answered
// with a specific value.
type DependsOn struct {
	QuestionID    string `json:"questionId"`
	RequiredValue string `json:"requiredValue"`
}

// Question is a single item inside an assessment section. Options apply to
// choice types, Min/Max to numeric, MinLength/MaxLength to text types.
type Question struct {
	ID        string       `json:"id"`
	Type      QuestionType `json:"type"`
	Text      string       `json:"text"`
	Required  bool         `json:"required"`
	Options   []string     `json:"options,omitempty"`
	Min       *float64     `json:"min,omitempty"`
	Max       *float64     `json:"max,omitempty"`
	MinLength *int         `json:"minLength,omitempty"`
	MaxLength *int         `json:"maxLength,omitempty"`
	DependsOn *DependsOn   `json:"dependsOn,omitempty"`
}

type Section struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
}

// Assessment is the questionnaire attached to a job. There is at most one per
// job; JobID is the lookup key and the upsert key in the local store.
type Assessment struct {
	ID          string    `json:"id"`
	JobID       string    `json:"jobId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Sections    []Section `json:"sections"`
}

// QuestionCount returns the total number of questions across all sections.
func (a *Assessment) QuestionCount() int {
	n := 0
	for _, s := range a.Sections {
		n += len(s.Questions)
	}
	return n
}

// AssessmentResponse is one submitted fill-out of an assessment. Responses
// maps question id to the answer value: a string, a []string (multiple
// choice), or a number, depending on the question type. Immutable once
// created and stored locally only.
type AssessmentResponse struct {
	ID           string         `json:"id"`
	AssessmentID string         `json:"assessmentId"`
	Responses    map[string]any `json:"responses"`
	SubmittedAt  time.Time      `json:"submittedAt"`
}
