package questions

import "strings"

// MaxFallback caps the deterministic question set.
const MaxFallback = 8

var genericQuestions = []Item{
	{
		Skill:      "Communication",
		Difficulty: Intermediate,
		Question:   "Describe a time when you had to explain a complex technical concept to a non-technical stakeholder.",
		Category:   Behavioral,
	},
	{
		Skill:      "Problem Solving",
		Difficulty: Intermediate,
		Question:   "Walk me through your approach when facing a challenging problem you've never encountered before.",
		Category:   Situational,
	},
	{
		Skill:      "Leadership",
		Difficulty: Advanced,
		Question:   "Describe a situation where you had to lead a team through a difficult project or deadline.",
		Category:   Behavioral,
	},
}

var technicalAllowlist = map[string]struct{}{
	"javascript": {}, "python": {}, "java": {}, "react": {},
	"node.js": {}, "sql": {}, "html": {}, "css": {},
}

// Fallback returns the three generic questions plus one technical question
// per allowlisted skill, at most MaxFallback items.
func Fallback(skills []string) []Item {
	out := make([]Item, 0, MaxFallback)
	out = append(out, genericQuestions...)
	for _, skill := range skills {
		if len(out) >= MaxFallback {
			break
		}
		if _, ok := technicalAllowlist[strings.ToLower(strings.TrimSpace(skill))]; !ok {
			continue
		}
		out = append(out, Item{
			Skill:      skill,
			Difficulty: Intermediate,
			Question:   "What are the key concepts and best practices you follow when working with " + skill + "?",
			Category:   Technical,
		})
	}
	return out
}
