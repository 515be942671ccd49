package questions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackEmptySkills(t *testing.T) {
	got := Fallback(nil)
	assert.Len(t, got, 3)
	assert.Equal(t, genericQuestions, got)
	assert.Equal(t, "Communication", got[0].Skill)
	assert.Equal(t, Situational, got[1].Category)
	assert.Equal(t, Advanced, got[2].Difficulty)
}

func TestFallbackAddsAllowlistedTechnicalQuestions(t *testing.T) {
	got := Fallback([]string{"Python", "Leadership"})
	assert.Len(t, got, 4)
	last := got[3]
	assert.Equal(t, "Python", last.Skill)
	assert.Equal(t, Technical, last.Category)
	assert.Equal(t, Intermediate, last.Difficulty)
	assert.Equal(t, "What are the key concepts and best practices you follow when working with Python?", last.Question)
}

func TestFallbackAllowlistIsCaseInsensitive(t *testing.T) {
	got := Fallback([]string{"NODE.JS", "sql", "Go"})
	assert.Len(t, got, 5)
	assert.Equal(t, "NODE.JS", got[3].Skill)
	assert.Equal(t, "sql", got[4].Skill)
}

func TestFallbackCapsAtEight(t *testing.T) {
	got := Fallback([]string{"JavaScript", "Python", "Java", "React", "Node.js", "SQL", "HTML", "CSS"})
	assert.Len(t, got, MaxFallback)
	assert.Equal(t, "Node.js", got[7].Skill)
}

func TestFallbackItemsAreValid(t *testing.T) {
	for _, item := range Fallback([]string{"JavaScript", "CSS"}) {
		assert.NoError(t, validate.Struct(item))
	}
}
