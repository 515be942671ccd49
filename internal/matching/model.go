package matching

import (
	"time"

	"resume-insights/internal/jobroles"
)

// JobMatch is a persisted evaluation above Threshold. JobRole is filled in
// when matches are read back for display.
type JobMatch struct {
	ID              string            `json:"id"`
	UserID          string            `json:"userId"`
	ResumeID        string            `json:"resumeId"`
	JobRoleID       string            `json:"jobRoleId"`
	MatchPercentage int               `json:"matchPercentage"`
	MissingSkills   []string          `json:"missingSkills"`
	CreatedAt       time.Time         `json:"createdAt"`
	JobRole         *jobroles.JobRole `json:"jobRole,omitempty"`
}
