package skills

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-insights/internal/extract"
)

func TestKeywordClassifierFindsVocabularyInOrder(t *testing.T) {
	text := "Led a team using React and Node.js on AWS. Strong communication and LEADERSHIP. CI/CD with Jenkins."
	got, err := KeywordClassifier{}.Classify(context.Background(), text)
	require.NoError(t, err)

	assert.Equal(t, []string{"React", "Node.js", "Aws", "Jenkins", "Ci/cd"}, got.Technical)
	assert.Equal(t, []string{"Leadership", "Communication"}, got.Soft)
}

func TestKeywordClassifierSubstringQuirks(t *testing.T) {
	// "javascript" contains "java"; "google" contains "go".
	got, err := KeywordClassifier{}.Classify(context.Background(), "JavaScript developer at Google")
	require.NoError(t, err)
	assert.Equal(t, []string{"Javascript", "Java", "Go"}, got.Technical)
	assert.Empty(t, got.Soft)
}

func TestKeywordClassifierMultiWordTitleCase(t *testing.T) {
	got, err := KeywordClassifier{}.Classify(context.Background(), "background in machine learning and time management")
	require.NoError(t, err)
	assert.Contains(t, got.Technical, "Machine Learning")
	assert.Equal(t, []string{"Time Management"}, got.Soft)
}

func TestKeywordClassifierIsDeterministic(t *testing.T) {
	text := "Python, Docker, Kubernetes, teamwork and mentoring across agile squads"
	first, err := KeywordClassifier{}.Classify(context.Background(), text)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := KeywordClassifier{}.Classify(context.Background(), text)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestKeywordClassifierEmptyListsAreValid(t *testing.T) {
	got, err := KeywordClassifier{}.Classify(context.Background(), "Professional baker and pastry chef")
	require.NoError(t, err)
	assert.Empty(t, got.Technical)
	assert.Empty(t, got.Soft)
}

func TestKeywordClassifierRejectsShortText(t *testing.T) {
	_, err := KeywordClassifier{}.Classify(context.Background(), "  short ")
	assert.ErrorIs(t, err, extract.ErrNoReadableText)
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Node.js", titleCase("node.js"))
	assert.Equal(t, "C++", titleCase("c++"))
	assert.Equal(t, "Artificial Intelligence", titleCase("artificial intelligence"))
	assert.Equal(t, "", titleCase(""))
}

func TestTidyDedupesAndKeepsListsDisjoint(t *testing.T) {
	got := tidy(Result{
		Technical: []string{"Go", " go ", "", "Project Management"},
		Soft:      []string{"project management", "Leadership", "leadership"},
	})
	assert.Equal(t, []string{"Go", "Project Management"}, got.Technical)
	assert.Equal(t, []string{"Leadership"}, got.Soft)
	assert.Equal(t, []string{"Go", "Project Management", "Leadership"}, got.All())
}
