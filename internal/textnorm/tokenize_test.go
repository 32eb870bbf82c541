package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentences(t *testing.T) {
	t.Run("splits on terminal punctuation", func(t *testing.T) {
		got := Sentences("Led a team. Shipped the product! Was it fast? Yes")
		assert.Equal(t, []string{"Led a team.", "Shipped the product!", "Was it fast?", "Yes"}, got)
	})

	t.Run("keeps decimals and urls together", func(t *testing.T) {
		got := Sentences("Improved latency by 2.5x on example.com today.")
		assert.Len(t, got, 1)
	})

	t.Run("empty text", func(t *testing.T) {
		assert.Nil(t, Sentences("   "))
	})
}

func TestAverageSentenceLength(t *testing.T) {
	avg, ok := AverageSentenceLength("One two three. Four five six seven eight.")
	require.True(t, ok)
	assert.InDelta(t, 4.0, avg, 0.001)

	_, ok = AverageSentenceLength("")
	assert.False(t, ok)
}

func TestTokensAndVocabularyRatio(t *testing.T) {
	assert.Equal(t, []string{"don't", "stop", ",", "node.js", "!"}, Tokens("don't stop, node.js!"))

	assert.InDelta(t, 0.5, VocabularyRatio("Go go Rust rust"), 0.001)
	assert.Equal(t, 0.0, VocabularyRatio(""))
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, WordCount(""))
	assert.Equal(t, 3, WordCount("  one\ttwo\nthree "))
}

func TestReadability(t *testing.T) {
	t.Run("simple prose scores as easy", func(t *testing.T) {
		stats, err := Readability("The cat sat on the mat. The dog ran to the park.")
		require.NoError(t, err)
		assert.Equal(t, 12, stats.Words)
		assert.Equal(t, 2, stats.Sentences)
		assert.Greater(t, stats.ReadingEase, 90.0)
		assert.Less(t, stats.GradeLevel, 4.0)
	})

	t.Run("short fragments count as one sentence", func(t *testing.T) {
		stats, err := Readability("Hello. Hi.")
		require.NoError(t, err)
		assert.Equal(t, 1, stats.Sentences)
		assert.Equal(t, 2, stats.Words)
	})

	t.Run("no words", func(t *testing.T) {
		_, err := Readability(" -- ... ")
		assert.ErrorIs(t, err, ErrNoWords)
	})
}

func TestCountSyllables(t *testing.T) {
	tests := map[string]int{
		"cat":         1,
		"make":        1,
		"table":       2,
		"developer":   4,
		"named":       1,
		"wanted":      2,
		"engineering": 4,
		"2024":        1,
		"the":         1,
	}
	for word, expected := range tests {
		assert.Equal(t, expected, CountSyllables(word), word)
	}
}
