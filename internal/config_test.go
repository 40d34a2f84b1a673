package internal_test

import (
	"songster/internal"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCharacterRune(t *testing.T) {
	req := require.New(t)

	r, err := internal.CharacterRune("*")
	req.NoError(err)
	req.Equal('*', r)

	_, err = internal.CharacterRune("**")
	req.Error(err)
	_, err = internal.CharacterRune("")
	req.Error(err)
}

func TestSplitOrigins(t *testing.T) {
	req := require.New(t)

	origins := internal.SplitOrigins(" http://localhost:5173/ ,, https://songster.app")

	req.Equal([]string{"http://localhost:5173", "https://songster.app"}, origins)
	req.Empty(internal.SplitOrigins(""))
}
