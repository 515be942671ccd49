package scoring

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverallMatchesFormula(t *testing.T) {
	tests := []struct {
		t, s, l int
		want    int
	}{
		{0, 0, 0, 0},
		{1, 0, 0, 0},
		{3, 0, 0, 1},
		{5, 0, 0, 2},
		{2, 2, 1500, 1},
		{10, 4, 2500, 5},
		{20, 10, 50000, 14},
		{0, 0, 9999, 2},
		{0, 0, 10000, 3},
		{0, 0, 1_000_000, 3},
	}
	for _, tt := range tests {
		got := Overall(tt.t, tt.s, tt.l)
		assert.Equal(t, tt.want, got, "t=%d s=%d L=%d", tt.t, tt.s, tt.l)
	}
}

func TestOverallIsNonNegativeAndAgreesWithReference(t *testing.T) {
	for tc := 0; tc <= 30; tc++ {
		for sc := 0; sc <= 20; sc++ {
			for _, l := range []int{0, 333, 999, 1000, 4321, 12000} {
				ref := math.Floor(float64(0.4*float64(tc)) + float64(0.3*float64(sc)) + float64(0.3*math.Min(float64(l)/1000, 10)))
				got := Overall(tc, sc, l)
				assert.GreaterOrEqual(t, got, 0)
				assert.Equal(t, int(ref), got, "t=%d s=%d L=%d", tc, sc, l)
			}
		}
	}
}

func TestSkillMatchSaturates(t *testing.T) {
	prev := -1
	for n := 0; n <= 30; n++ {
		got := SkillMatch(n, 0)
		assert.GreaterOrEqual(t, got, prev)
		prev = got
		if n >= 20 {
			assert.Equal(t, 100, got)
		}
	}
	assert.Equal(t, 35, SkillMatch(4, 3))
	assert.Equal(t, 100, SkillMatch(12, 8))
}

func TestFormatQuality(t *testing.T) {
	assert.Equal(t, 0, FormatQuality("   "))
	assert.Equal(t, 4, FormatQuality("just some words here"))

	full := "jane@example.com Summary Experience Education Skills Projects"
	assert.Equal(t, 10, FormatQuality(full))

	partial := "Contact: +1 (555) 123-4567. Work Experience at Acme. Education: BSc."
	assert.Equal(t, 7, FormatQuality(partial))
}

func TestKeywordDensity(t *testing.T) {
	assert.Equal(t, 0, KeywordDensity("", []string{"Go"}))
	text := strings.Repeat("word ", 96) + "python docker python docker"
	assert.Equal(t, 4, KeywordDensity(text, []string{"Python", "Docker", " "}))
	assert.Equal(t, 10, KeywordDensity("go go go go", []string{"go"}))
}

func TestComputeUsesRuneLength(t *testing.T) {
	text := strings.Repeat("é", 3400)
	got := Compute(Input{Technical: []string{"A", "B"}, Soft: []string{"C"}, Text: text})
	assert.Equal(t, Overall(2, 1, 3400), got.Overall)
	assert.Equal(t, 15, got.SkillMatchPercentage)
}
