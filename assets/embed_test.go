package assets

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordList(t *testing.T) {
	words, err := WordList()
	require.NoError(t, err)
	assert.Greater(t, len(words), 100)
	assert.Contains(t, words, "окрас")
	for _, w := range words {
		assert.Equal(t, 5, utf8.RuneCountInString(w), w)
	}
}

func TestInstructions(t *testing.T) {
	text, err := Instructions()
	require.NoError(t, err)
	assert.Contains(t, text, "<letter> -p")
	assert.NotContains(t, text, "# Instructions")
}
