package moderation

import (
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

const replacementChar = '*'

// TestModerator_Censor
// The dictionary uses specific words to avoid partial collisions (e.g., "he" inside "The")
func TestModerator_Censor(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	dictionary := []string{"badger", "snake", "mushroom"}
	mod, err := NewModerator(dictionary, replacementChar, log)
	req.NoError(err)

	tests := []struct {
		name     string
		input    string
		expected string
		words    []string
	}{
		{
			name:     "Simple word and space preservation",
			input:    "The badger is here",
			expected: "The ****** is here",
			words:    []string{"badger"},
		},
		{
			name:     "Multiple occurrences and preserved spacing",
			input:    "badger badger badger",
			expected: "****** ****** ******",
			words:    []string{"badger", "badger", "badger"},
		},
		{
			name:     "Leet speak and internal punctuation",
			input:    "Look at B.4.d.g.€r !",
			expected: "Look at ********** !",
			words:    []string{"badger"},
		},
		{
			name:     "Accents and special characters (UTF-8)",
			input:    "Un été avec un badger",
			expected: "Un été avec un ******",
			words:    []string{"badger"},
		},
		{
			name:     "Nothing to censor",
			input:    "Timeline is amazing",
			expected: "Timeline is amazing",
			words:    nil,
		},
		{
			name:     "Blocked word inside a longer word",
			input:    "Badgers of Honeybadgerville",
			expected: "Badgers of Honeybadgerville",
			words:    nil,
		},
		{
			name:     "Blocked word next to digits",
			input:    "badger42",
			expected: "******42",
			words:    []string{"badger"},
		},
		{
			name:     "Empty string",
			input:    "",
			expected: "",
			words:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, words := mod.Censor(tt.input)
			req.Equal(tt.expected, content, "test=%s,", tt.name)
			req.Equal(tt.words, words, "expected=%s,words=%s", tt.expected, words)
		})
	}
}

func TestModerator_CornerCases(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// Given real noise and not Leet Speak associated
	dictionary := []string{"...", ",,,", "", "badger"}

	mod, err := NewModerator(dictionary, replacementChar, log)
	req.NoError(err)

	// Then the sentence is censored
	content, words := mod.Censor("The badger is safe")
	req.Equal("The ****** is safe", content)
	req.Equal([]string{"badger"}, words)

	// Then real noise is uncensored
	content, words = mod.Censor("Hello ...")
	req.Equal("Hello ...", content)
	req.Nil(words)
}

func TestModerator_Accepts(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// Given the word lists shipped with the server
	data, err := NewEmbeddedLoader().LoadAll("blocked")
	req.NoError(err)
	mod, err := NewModerator(data.Words, replacementChar, log)
	req.NoError(err)

	// Then ordinary nicknames are accepted
	for _, nickname := range []string{"Alice", "Bob", "DJ Groove", "Élodie", "x_Rocker_x"} {
		req.True(mod.Accepts(nickname), nickname)
	}

	// And names which only contain a blocked word inside another word
	for _, nickname := range []string{"Matt Watson", "Scunthorpe", "Tina Zimmer", "Bo Bastardo"} {
		req.True(mod.Accepts(nickname), nickname)
	}

	// And disguised blocked words are rejected
	for _, nickname := range []string{"sh1t", "F.U.C.K", "Merde42", "the_b4stard"} {
		req.False(mod.Accepts(nickname), nickname)
	}
}
