//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"songster/domain"
	"songster/domain/event"
	"time"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

// IRegistry maps connections to their sink and sessions to their group of connections.
type IRegistry interface {
	Connect(connectionID domain.ConnectionID, sink EventSink)
	Disconnect(connectionID domain.ConnectionID)
	Subscribe(connectionID domain.ConnectionID, code domain.GameCode)
	Unsubscribe(connectionID domain.ConnectionID, code domain.GameCode)
	DropGroup(code domain.GameCode)
	SinksForSession(code domain.GameCode) []EventSink
}

// IPublisher hands a domain event to the fan-out without blocking.
type IPublisher interface {
	Publish(evt event.DomainEvent)
}

// IOrchestrator is what command handlers need from the runtime.
type IOrchestrator interface {
	IPublisher
	RegisterParticipant(connectionID domain.ConnectionID, code domain.GameCode)
	UnregisterParticipant(connectionID domain.ConnectionID, code domain.GameCode)
}

// SessionHook runs while the engine still holds the session lock, so what it
// publishes is ordered with every other change of the same session.
// A hook must not call back into the engine.
type SessionHook func(session domain.Session)

type PlacementHook func(placement domain.Placement, session domain.Session)

type DepartureHook func(departure domain.Departure)

// IEngine owns every live session. Returned sessions are snapshots.
// Hooks may be nil.
type IEngine interface {
	CreateSession(connectionID domain.ConnectionID, nickname domain.Nickname, hook SessionHook) (domain.Session, error)
	Session(code domain.GameCode) (domain.Session, bool)
	SessionOf(connectionID domain.ConnectionID) (domain.GameCode, bool)
	JoinSession(code domain.GameCode, connectionID domain.ConnectionID, nickname domain.Nickname, hook SessionHook) (domain.Session, error)
	StartSession(ctx context.Context, code domain.GameCode, hook SessionHook) (domain.Session, error)
	PlaceCard(code domain.GameCode, connectionID domain.ConnectionID, position domain.Position, hook PlacementHook) (domain.Placement, error)
	Winner(code domain.GameCode) (domain.Member, bool)
	RemoveMember(connectionID domain.ConnectionID, hook DepartureHook) (domain.Departure, bool)
	Count() int
}

// ISessionReaper destroys sessions left idle for longer than ttl.
type ISessionReaper interface {
	ExpireIdle(now time.Time, ttl time.Duration) []domain.Session
}

type ICatalogProvider interface {
	Cards(ctx context.Context) ([]domain.Card, error)
}

type IGameArchive interface {
	Store(record domain.GameRecord) error
	Recent(limit int) ([]domain.GameRecord, error)
}

type INicknameFilter interface {
	Accepts(nickname string) bool
}
