package skills

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"
)

var technicalKeywords = []string{
	"javascript", "python", "java", "c++", "c#", "php", "ruby", "go", "rust", "swift",
	"react", "angular", "vue", "node.js", "express", "django", "flask", "spring",
	"html", "css", "typescript", "sass", "less", "bootstrap", "tailwind",
	"sql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch",
	"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "git", "github",
	"machine learning", "data science", "artificial intelligence", "tensorflow", "pytorch",
	"api", "rest", "graphql", "microservices", "devops", "ci/cd", "agile", "scrum",
}

var softKeywords = []string{
	"leadership", "communication", "teamwork", "problem solving", "analytical",
	"creativity", "adaptability", "time management", "project management",
	"critical thinking", "collaboration", "interpersonal", "presentation",
	"negotiation", "conflict resolution", "mentoring", "coaching",
}

// KeywordClassifier scans text for a fixed vocabulary. It never calls out
// and always returns the same lists for the same text.
type KeywordClassifier struct{}

// Classify reports every vocabulary entry found as a case-insensitive
// substring of text, title-cased, in vocabulary order.
func (KeywordClassifier) Classify(ctx context.Context, text string) (Result, error) {
	if err := checkText(text); err != nil {
		return Result{}, err
	}
	return tidy(Result{
		Technical: scan(text, technicalKeywords),
		Soft:      scan(text, softKeywords),
	}), nil
}

func scan(text string, vocabulary []string) []string {
	lower := strings.ToLower(text)
	found := make([]string, 0)
	for _, kw := range vocabulary {
		if strings.Contains(lower, kw) {
			found = append(found, titleCase(kw))
		}
	}
	return found
}

// titleCase upper-cases the first rune of each space-separated word and
// leaves the rest untouched ("node.js" -> "Node.js", "ci/cd" -> "Ci/cd").
func titleCase(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if size == 0 {
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
