package words

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlainList(t *testing.T) {
	in := "# comment\nОКРАС\n\nслово\nокрас\nдлинное\nabcde\n"
	l, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"окрас", "слово"}, l.Universe().Strings())
	assert.Equal(t, 2, l.Skipped())
	assert.True(t, l.IsKnown("Слово"))
	assert.False(t, l.IsKnown("ковер"))
}

func TestParseCSV(t *testing.T) {
	in := "id,word,freq\n1,банан,3\n2,карта,1\n3,кот,9\n"
	l, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"банан", "карта"}, l.Universe().Strings())
}

func TestParseCSVWithoutHeader(t *testing.T) {
	l, err := Parse(strings.NewReader("парта,1\nмарка,2\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"парта", "марка"}, l.Universe().Strings())
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse(strings.NewReader("кот\nhello\n"))
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestLoadFileAndEmbedded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("сокол\nбаран\n"), 0o644))

	l, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, l.Len())
	assert.Contains(t, []string{"сокол", "баран"}, l.Random())

	emb, err := Load("")
	require.NoError(t, err)
	assert.True(t, emb.IsKnown("окрас"))

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestInitOnce(t *testing.T) {
	require.NoError(t, Init(""))
	n := Stats()
	assert.Positive(t, n)
	require.NotNil(t, Default())
	assert.True(t, Default().IsKnown("окрас"))
	assert.Equal(t, n, Default().Universe().Len())

	// a second call keeps the first table
	require.NoError(t, Init("/does/not/exist"))
	assert.Equal(t, n, Stats())
	assert.True(t, Default().IsKnown(Default().Random()))
}
