package card

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeckIsPlayable(t *testing.T) {
	deck := Deck()
	require.NotEmpty(t, deck)

	for i, q := range deck {
		t.Run(fmt.Sprintf("lock %d", i+1), func(t *testing.T) {
			assert.NotEmpty(t, q.Title)
			assert.NotEmpty(t, q.Prompt)
			assert.Contains(t, []Option{OptionA, OptionB, OptionC, OptionD}, q.Correct)
			assert.NotEmpty(t, q.Hint, "every lock needs a retry hint")
			for _, opt := range q.Options {
				assert.NotEmpty(t, opt)
			}
		})
	}
}

func TestBodyLinesLayout(t *testing.T) {
	q := Question{
		Prompt:  "Pick one.",
		Options: [4]string{"first", "second", "third", "fourth"},
	}

	lines := q.bodyLines()
	require.Len(t, lines, 8)

	assert.Equal(t, "Pick one.", lines[0])
	assert.Empty(t, lines[1])
	assert.Equal(t, "A) first", lines[2])
	assert.Equal(t, "B) second", lines[3])
	assert.Equal(t, "C) third", lines[4])
	assert.Equal(t, "D) fourth", lines[5])
	assert.Empty(t, lines[6])
	assert.Equal(t, "Press A / B / C / D", lines[7])
}

func TestPassphraseFollowsDeckOrder(t *testing.T) {
	deck := []Question{
		{Correct: OptionB},
		{Correct: OptionA},
		{Correct: OptionD},
	}
	assert.Equal(t, []byte("BADY"), Passphrase(deck))

	// The built-in deck's letters, plus Y for the final lock.
	assert.Equal(t, []byte("ADBY"), Passphrase(Deck()))
}

func TestFinaleLinesFallBackWithoutSealedBlob(t *testing.T) {
	assert.Equal(t, defaultFinale, finaleLines(Deck()))
}
