// Package domain contains core concepts of the game.
// This file defines the validated value objects every command is parsed into.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"math/rand"
	"songster/errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	GameCodeLength    = 8
	GameCodeAlphabet  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	NicknameMinLength = 2
	NicknameMaxLength = 20
)

var validate = validator.New()

// GameCode identifies a session. It is always stored upper-cased.
type GameCode struct {
	value string
}

// NewGameCode checks length and alphabet on the trimmed input, then
// upper-cases it, so "abcd1234" and "ABCD1234" name the same session.
func NewGameCode(raw string) (GameCode, error) {
	code := strings.TrimSpace(raw)
	if code == "" {
		return GameCode{}, errors.Validation("Game code cannot be empty")
	}
	if validate.Var(code, "len=8") != nil {
		return GameCode{}, errors.Validation("Game code must be exactly %d characters", GameCodeLength)
	}
	// alphanum is ASCII only, and must run before ToUpper folds runes such as 'ı' into 'I'.
	if validate.Var(code, "alphanum") != nil {
		return GameCode{}, errors.Validation("Game code contains invalid characters (only A-Z and 0-9 allowed)")
	}
	return GameCode{value: strings.ToUpper(code)}, nil
}

// GenerateGameCode draws GameCodeLength characters from GameCodeAlphabet.
func GenerateGameCode(rng *rand.Rand) GameCode {
	b := make([]byte, GameCodeLength)
	for i := range b {
		b[i] = GameCodeAlphabet[rng.Intn(len(GameCodeAlphabet))]
	}
	return GameCode{value: string(b)}
}

func (c GameCode) Value() string  { return c.value }
func (c GameCode) String() string { return c.value }
func (c GameCode) IsZero() bool   { return c.value == "" }

// ConnectionID is the opaque per-connection identifier handed out by the transport.
type ConnectionID struct {
	value string
}

func NewConnectionID(raw string) (ConnectionID, error) {
	id := strings.TrimSpace(raw)
	if validate.Var(id, "required") != nil {
		return ConnectionID{}, errors.Validation("Connection ID cannot be empty")
	}
	return ConnectionID{value: id}, nil
}

func (c ConnectionID) Value() string  { return c.value }
func (c ConnectionID) String() string { return c.value }

// Nickname is a 2 to 20 character display name, unique per session ignoring case.
type Nickname struct {
	value string
}

func NewNickname(raw string) (Nickname, error) {
	nickname := strings.TrimSpace(raw)
	if nickname == "" {
		return Nickname{}, errors.Validation("Nickname cannot be empty")
	}
	if validate.Var(nickname, "min=2") != nil {
		return Nickname{}, errors.Validation("Nickname must be at least %d characters", NicknameMinLength)
	}
	if validate.Var(nickname, "max=20") != nil {
		return Nickname{}, errors.Validation("Nickname cannot exceed %d characters", NicknameMaxLength)
	}
	return Nickname{value: nickname}, nil
}

func (n Nickname) Value() string  { return n.value }
func (n Nickname) String() string { return n.value }

// EqualFold reports whether both nicknames are the same ignoring case.
func (n Nickname) EqualFold(other Nickname) bool {
	return strings.EqualFold(n.value, other.value)
}

// Position is an insertion index into a timeline.
// Only the lower bound is checked here; the upper bound depends on the timeline.
type Position struct {
	value int
}

func NewPosition(raw int) (Position, error) {
	if validate.Var(raw, "min=0") != nil {
		return Position{}, errors.Validation("Position cannot be negative")
	}
	return Position{value: raw}, nil
}

func (p Position) Value() int { return p.value }
