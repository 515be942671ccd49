package skills

import (
	"context"
	"strings"
	"unicode/utf8"

	"resume-insights/internal/extract"
)

// Result holds the two disjoint skill lists extracted from a resume.
type Result struct {
	Technical []string `json:"technicalSkills"`
	Soft      []string `json:"softSkills"`
}

// All returns technical followed by soft skills.
func (r Result) All() []string {
	out := make([]string, 0, len(r.Technical)+len(r.Soft))
	out = append(out, r.Technical...)
	return append(out, r.Soft...)
}

// Classifier splits resume text into technical and soft skills.
type Classifier interface {
	Classify(ctx context.Context, text string) (Result, error)
}

func checkText(text string) error {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < extract.MinTextLength {
		return extract.ErrNoReadableText
	}
	return nil
}

// tidy trims and dedupes both lists case-insensitively in first-seen order
// and removes soft skills that are already listed as technical.
func tidy(r Result) Result {
	technical := Dedupe(r.Technical)
	seen := make(map[string]struct{}, len(technical))
	for _, s := range technical {
		seen[strings.ToLower(s)] = struct{}{}
	}
	soft := make([]string, 0, len(r.Soft))
	for _, s := range Dedupe(r.Soft) {
		if _, dup := seen[strings.ToLower(s)]; dup {
			continue
		}
		soft = append(soft, s)
	}
	return Result{Technical: technical, Soft: soft}
}

// Dedupe trims names, drops blanks and keeps the first spelling of each
// case-insensitive duplicate.
func Dedupe(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, name)
	}
	return out
}
