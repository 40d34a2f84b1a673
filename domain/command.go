package domain

// Commands carry raw client input. Handlers turn them into value objects
// before touching the engine.

type CreateGameCommand struct {
	ConnectionID string
	Nickname     string
}

type JoinGameCommand struct {
	GameCode     string
	ConnectionID string
	Nickname     string
}

type StartGameCommand struct {
	GameCode     string
	ConnectionID string
}

type PlaceCardCommand struct {
	GameCode     string
	ConnectionID string
	Position     int
}

// LeaveGameCommand is issued by the transport when a connection drops.
type LeaveGameCommand struct {
	ConnectionID string
}
