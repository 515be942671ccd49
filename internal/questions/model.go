package questions

import "time"

// Difficulty values.
const (
	Easy         = "Easy"
	Intermediate = "Intermediate"
	Advanced     = "Advanced"
)

// Category values.
const (
	Technical   = "Technical"
	Behavioral  = "Behavioral"
	Situational = "Situational"
)

// Item is one generated question before it is stored.
type Item struct {
	Skill      string `json:"skill" validate:"required"`
	Difficulty string `json:"difficulty" validate:"oneof=Easy Intermediate Advanced"`
	Question   string `json:"question" validate:"required"`
	Category   string `json:"category" validate:"oneof=Technical Behavioral Situational"`
}

// Question is a stored interview question. ResumeID is empty for questions
// regenerated outside an upload.
type Question struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	ResumeID   string    `json:"resumeId,omitempty"`
	Skill      string    `json:"skill"`
	Difficulty string    `json:"difficulty"`
	Question   string    `json:"question"`
	Category   string    `json:"category"`
	CreatedAt  time.Time `json:"createdAt"`
}
