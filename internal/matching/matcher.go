package matching

import (
	"strings"

	"resume-insights/internal/jobroles"
)

// Threshold is the match percentage a role must exceed to be kept.
const Threshold = 30

// Evaluation is the outcome of comparing one role against a skill set.
type Evaluation struct {
	Role            jobroles.JobRole
	MatchPercentage int
	MissingSkills   []string
}

// SkillsMatch reports whether either skill contains the other,
// case-insensitively. A blank skill matches nothing.
func SkillsMatch(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// Evaluate counts the role's required skills matched by any user skill.
// The percentage is floor(matched*100/required); a role without required
// skills scores 0.
func Evaluate(skills []string, role jobroles.JobRole) Evaluation {
	missing := make([]string, 0)
	matched := 0
	for _, required := range role.RequiredSkills {
		if anyMatch(skills, required) {
			matched++
		} else {
			missing = append(missing, required)
		}
	}
	pct := 0
	if n := len(role.RequiredSkills); n > 0 {
		pct = matched * 100 / n
	}
	return Evaluation{Role: role, MatchPercentage: pct, MissingSkills: missing}
}

// MatchAll evaluates every role and keeps those above Threshold, in catalog order.
func MatchAll(skills []string, roles []jobroles.JobRole) []Evaluation {
	out := make([]Evaluation, 0, len(roles))
	for _, role := range roles {
		if ev := Evaluate(skills, role); ev.MatchPercentage > Threshold {
			out = append(out, ev)
		}
	}
	return out
}

func anyMatch(skills []string, required string) bool {
	for _, s := range skills {
		if SkillsMatch(s, required) {
			return true
		}
	}
	return false
}
