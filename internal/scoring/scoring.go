// Package scoring turns extracted skills and resume text into the four
// resume scores.
package scoring

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Input is what the scorer needs from the pipeline.
type Input struct {
	Technical []string
	Soft      []string
	Text      string
}

// Scores are the four integers stored on a resume.
type Scores struct {
	Overall              int `json:"overallScore"`
	SkillMatchPercentage int `json:"skillMatchPercentage"`
	FormatQuality        int `json:"formatQuality"`
	KeywordDensity       int `json:"keywordDensity"`
}

// Compute derives all scores. It has no error conditions.
func Compute(in Input) Scores {
	t, s := len(in.Technical), len(in.Soft)
	return Scores{
		Overall:              Overall(t, s, utf8.RuneCountInString(in.Text)),
		SkillMatchPercentage: SkillMatch(t, s),
		FormatQuality:        FormatQuality(in.Text),
		KeywordDensity:       KeywordDensity(in.Text, append(append([]string{}, in.Technical...), in.Soft...)),
	}
}

// Overall is floor(0.4t + 0.3s + 0.3*min(L/1000, 10)).
// Each product is converted explicitly so the compiler cannot fuse it into
// an FMA, which would change results near integer boundaries.
func Overall(technical, soft, textLength int) int {
	lengthTerm := math.Min(float64(textLength)/1000, 10)
	sum := float64(0.4*float64(technical)) + float64(0.3*float64(soft)) + float64(0.3*lengthTerm)
	return int(math.Floor(sum))
}

// SkillMatch is min((t+s)*5, 100).
func SkillMatch(technical, soft int) int {
	return min((technical+soft)*5, 100)
}

var sectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`[\w.+-]+@[\w-]+\.[\w.]+|\+?\d[\d\s().-]{7,}\d`),
	regexp.MustCompile(`(?i)\b(summary|objective|profile)\b`),
	regexp.MustCompile(`(?i)\b(experience|employment)\b`),
	regexp.MustCompile(`(?i)\beducation\b`),
	regexp.MustCompile(`(?i)\bskills\b`),
	regexp.MustCompile(`(?i)\b(projects|certifications?)\b`),
}

// FormatQuality is 4 plus one point per recognizable resume section, capped at 10.
func FormatQuality(text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	sections := 0
	for _, re := range sectionPatterns {
		if re.MatchString(text) {
			sections++
		}
	}
	return min(10, 4+sections)
}

// KeywordDensity is the number of skill mentions per 100 words, rounded and
// clamped to [0, 10].
func KeywordDensity(text string, skills []string) int {
	words := len(strings.Fields(text))
	if words == 0 {
		return 0
	}
	lower := strings.ToLower(text)
	mentions := 0
	for _, skill := range skills {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if skill == "" {
			continue
		}
		mentions += strings.Count(lower, skill)
	}
	density := int(math.Round(float64(mentions) * 100 / float64(words)))
	return max(0, min(density, 10))
}
