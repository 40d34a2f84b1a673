package hub

import (
	"songster/services"
)

// Result types, carried in the "$type" discriminator of every HubResult.
const (
	ResultFailure    = "failure"
	ResultCreateGame = "createGameSuccess"
	ResultJoinGame   = "joinGameSuccess"
	ResultStartGame  = "startGameSuccess"
	ResultPlaceCard  = "placeCardSuccess"
)

const (
	failedToCreateGame     = "Failed to create game"
	failedToJoinGame       = "Failed to join game"
	failedToStartGame      = "Failed to start game"
	failedToPlaceCard      = "Failed to place card"
	invalidRequestPayload  = "Invalid request payload."
	unsupportedFrameType   = "unsupported frame type"
	invalidFramePayload    = "invalid frame payload"
	rateLimitExceeded      = "rate limit exceeded"
	tooManyMalformedFrames = "too many malformed frames"
)

// HubResult is the payload of a Result frame: exactly one of the variants below.
type HubResult interface {
	ResultType() string
}

type Failure struct {
	Type    string `json:"$type"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func NewFailure(message string) Failure {
	return Failure{Type: ResultFailure, Message: message}
}

func (r Failure) ResultType() string { return r.Type }

type CreateGameSuccess struct {
	Type     string               `json:"$type"`
	Success  bool                 `json:"success"`
	GameCode string               `json:"gameCode"`
	Players  []services.PlayerDTO `json:"players"`
}

func NewCreateGameSuccess(resp services.CreateGameResponse) CreateGameSuccess {
	return CreateGameSuccess{
		Type:     ResultCreateGame,
		Success:  true,
		GameCode: resp.GameCode,
		Players:  resp.Players,
	}
}

func (r CreateGameSuccess) ResultType() string { return r.Type }

type JoinGameSuccess struct {
	Type    string               `json:"$type"`
	Success bool                 `json:"success"`
	Players []services.PlayerDTO `json:"players"`
}

func NewJoinGameSuccess(resp services.JoinGameResponse) JoinGameSuccess {
	return JoinGameSuccess{Type: ResultJoinGame, Success: true, Players: resp.Players}
}

func (r JoinGameSuccess) ResultType() string { return r.Type }

type StartGameSuccess struct {
	Type    string `json:"$type"`
	Success bool   `json:"success"`
}

func NewStartGameSuccess() StartGameSuccess {
	return StartGameSuccess{Type: ResultStartGame, Success: true}
}

func (r StartGameSuccess) ResultType() string { return r.Type }

type PlaceCardSuccess struct {
	Type         string `json:"$type"`
	Success      bool   `json:"success"`
	IsValid      bool   `json:"isValid"`
	GameFinished bool   `json:"gameFinished"`
}

func NewPlaceCardSuccess(resp services.PlaceCardResponse) PlaceCardSuccess {
	return PlaceCardSuccess{
		Type:         ResultPlaceCard,
		Success:      true,
		IsValid:      resp.IsValid,
		GameFinished: resp.GameFinished,
	}
}

func (r PlaceCardSuccess) ResultType() string { return r.Type }
