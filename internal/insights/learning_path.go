package insights

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"resume-insights/internal/matching"
)

// MaxLearningSteps caps the learning path.
const MaxLearningSteps = 10

// LearningStep recommends one missing skill.
type LearningStep struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	SkillTag    string   `json:"skillTag"`
	Link        string   `json:"link"`
	Roles       []string `json:"roles"`
}

type gap struct {
	skill     string
	best      int
	roles     []string
	roleSeen  map[string]bool
	firstSeen int
}

// LearningPath turns the missing skills of job matches into learning steps,
// strongest blocked match first.
func LearningPath(matches []matching.JobMatch) []LearningStep {
	gaps := make(map[string]*gap)
	order := 0
	for _, m := range matches {
		title := ""
		if m.JobRole != nil {
			title = m.JobRole.Title
		}
		for _, skill := range m.MissingSkills {
			skill = strings.TrimSpace(skill)
			if skill == "" {
				continue
			}
			key := strings.ToLower(skill)
			g, ok := gaps[key]
			if !ok {
				g = &gap{skill: skill, roleSeen: make(map[string]bool), firstSeen: order}
				order++
				gaps[key] = g
			}
			g.best = max(g.best, m.MatchPercentage)
			if title != "" && !g.roleSeen[title] {
				g.roleSeen[title] = true
				g.roles = append(g.roles, title)
			}
		}
	}

	list := make([]*gap, 0, len(gaps))
	for _, g := range gaps {
		list = append(list, g)
	}
	sort.Slice(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.best != b.best {
			return a.best > b.best
		}
		if len(a.roles) != len(b.roles) {
			return len(a.roles) > len(b.roles)
		}
		return a.firstSeen < b.firstSeen
	})
	if len(list) > MaxLearningSteps {
		list = list[:MaxLearningSteps]
	}

	out := make([]LearningStep, 0, len(list))
	ids := make(map[string]int, len(list))
	for _, g := range list {
		roles := append([]string{}, g.roles...)
		id := "SKILL_" + slugify(g.skill)
		ids[id]++
		if n := ids[id]; n > 1 {
			// "C++" and "C#" slug alike.
			id += "-" + strconv.Itoa(n)
		}
		out = append(out, LearningStep{
			ID:          id,
			Title:       "Learn " + g.skill,
			Description: describe(g.skill, roles),
			SkillTag:    g.skill,
			Link:        "https://www.google.com/search?q=" + url.QueryEscape(g.skill+" tutorial"),
			Roles:       roles,
		})
	}
	return out
}

func describe(skill string, roles []string) string {
	switch len(roles) {
	case 0:
		return skill + " is missing from your resume."
	case 1:
		return skill + " is required for " + roles[0] + "."
	default:
		return skill + " is required for " + strings.Join(roles[:len(roles)-1], ", ") + " and " + roles[len(roles)-1] + "."
	}
}

func slugify(input string) string {
	var b strings.Builder
	lastDash := false
	for _, r := range strings.ToLower(strings.TrimSpace(input)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		return "item"
	}
	return out
}
