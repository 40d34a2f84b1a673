package domain

import (
	"math/rand"
	"songster/errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGameCode(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr string
	}{
		{name: "upper-cased and trimmed", raw: "  abcd1234 ", want: "ABCD1234"},
		{name: "empty", raw: "   ", wantErr: "Game code cannot be empty"},
		{name: "too short", raw: "ABC", wantErr: "Game code must be exactly 8 characters"},
		{name: "too long", raw: "ABCD12345", wantErr: "Game code must be exactly 8 characters"},
		{name: "invalid characters", raw: "ABCD-123", wantErr: "Game code contains invalid characters (only A-Z and 0-9 allowed)"},
		{name: "non-ASCII letter folding to ASCII", raw: "abcdefgı", wantErr: "Game code contains invalid characters (only A-Z and 0-9 allowed)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			code, err := NewGameCode(tt.raw)
			if tt.wantErr != "" {
				req.ErrorIs(err, errors.ErrValidation)
				req.Equal(tt.wantErr, errors.Message(err))
				req.True(code.IsZero())
				return
			}
			req.NoError(err)
			req.Equal(tt.want, code.Value())
		})
	}
}

func TestGenerateGameCode(t *testing.T) {
	req := require.New(t)
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		code := GenerateGameCode(rng)
		req.Len(code.Value(), GameCodeLength)
		for _, c := range code.Value() {
			req.True(strings.ContainsRune(GameCodeAlphabet, c))
		}
		// Every generated code parses back to itself
		parsed, err := NewGameCode(code.Value())
		req.NoError(err)
		req.Equal(code, parsed)
	}
}

func TestNewNickname(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr string
	}{
		{name: "trimmed", raw: "  Alice  ", want: "Alice"},
		{name: "minimum length", raw: "Al", want: "Al"},
		{name: "maximum length", raw: strings.Repeat("a", NicknameMaxLength), want: strings.Repeat("a", NicknameMaxLength)},
		{name: "empty", raw: " ", wantErr: "Nickname cannot be empty"},
		{name: "too short", raw: "A", wantErr: "Nickname must be at least 2 characters"},
		{name: "too long", raw: strings.Repeat("a", NicknameMaxLength+1), wantErr: "Nickname cannot exceed 20 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			nickname, err := NewNickname(tt.raw)
			if tt.wantErr != "" {
				req.ErrorIs(err, errors.ErrValidation)
				req.Equal(tt.wantErr, errors.Message(err))
				return
			}
			req.NoError(err)
			req.Equal(tt.want, nickname.Value())
		})
	}
}

func TestNickname_EqualFold(t *testing.T) {
	req := require.New(t)
	alice, err := NewNickname("Alice")
	req.NoError(err)
	lower, err := NewNickname("alice")
	req.NoError(err)
	bob, err := NewNickname("Bob")
	req.NoError(err)

	req.True(alice.EqualFold(lower))
	req.False(alice.EqualFold(bob))
}

func TestNewConnectionID(t *testing.T) {
	req := require.New(t)

	id, err := NewConnectionID(" conn-1 ")
	req.NoError(err)
	req.Equal("conn-1", id.Value())

	_, err = NewConnectionID("")
	req.ErrorIs(err, errors.ErrValidation)
	req.Equal("Connection ID cannot be empty", errors.Message(err))
}

func TestNewPosition(t *testing.T) {
	req := require.New(t)

	position, err := NewPosition(0)
	req.NoError(err)
	req.Equal(0, position.Value())

	_, err = NewPosition(-1)
	req.ErrorIs(err, errors.ErrValidation)
	req.Equal("Position cannot be negative", errors.Message(err))
}
