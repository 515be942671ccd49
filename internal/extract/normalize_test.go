package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	got, err := Normalize("  Jane   Doe\r\n\n\tSenior Engineer \n")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe Senior Engineer", got)
}

func TestNormalizeRejectsShortText(t *testing.T) {
	for _, raw := range []string{"", "   \n\t ", "too short"} {
		_, err := Normalize(raw)
		assert.ErrorIs(t, err, ErrNoReadableText, "input %q", raw)
	}
}

func TestNormalizeCountsRunes(t *testing.T) {
	got, err := Normalize("ééééééééé é")
	require.NoError(t, err)
	assert.Equal(t, "ééééééééé é", got)
}
