package jobroles

import "github.com/google/uuid"

// Experience levels accepted in the catalog.
const (
	LevelEntry  = "Entry"
	LevelMid    = "Mid"
	LevelSenior = "Senior"
)

// JobRole is shared read-only reference data.
type JobRole struct {
	ID              string   `json:"id" yaml:"-"`
	Title           string   `json:"title" yaml:"title" validate:"required"`
	RequiredSkills  []string `json:"requiredSkills" yaml:"requiredSkills" validate:"min=1,dive,required"`
	Description     string   `json:"description,omitempty" yaml:"description"`
	ExperienceLevel string   `json:"experienceLevel,omitempty" yaml:"experienceLevel" validate:"omitempty,oneof=Entry Mid Senior"`
}

var roleNamespace = uuid.MustParse("6f1c8a52-4a0e-4c55-9a57-3f0f2b7e9d11")

// RoleID derives a stable id from the title so every store agrees on it.
func RoleID(title string) string {
	return uuid.NewSHA1(roleNamespace, []byte(title)).String()
}
