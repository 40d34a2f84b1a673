package runtime

import (
	"songster/contract"
	"songster/domain"
	"sync"
)

type Set map[domain.ConnectionID]struct{}

type Registry struct {
	mu          sync.RWMutex
	connections map[domain.ConnectionID]contract.EventSink // map connection -> Sink
	groups      map[domain.GameCode]Set                    // map session to connections
}

func NewRegistry() *Registry {
	return &Registry{
		connections: make(map[domain.ConnectionID]contract.EventSink),
		groups:      make(map[domain.GameCode]Set),
	}
}

// Connect records the sink serving a live connection.
func (r *Registry) Connect(connectionID domain.ConnectionID, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.connections[connectionID] = sink
}

// Disconnect forgets the connection sink and removes the connection from every group.
func (r *Registry) Disconnect(connectionID domain.ConnectionID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.connections, connectionID)
	for code, members := range r.groups {
		delete(members, connectionID)
		if len(members) == 0 {
			delete(r.groups, code)
		}
	}
}

// SinksForSession retrieves all active communication channels for a session.
// It performs a two-step lookup:
// 1. Identifies connection IDs associated with the session via groups.
// 2. Resolves those IDs into actual EventSinks using the connections map.
//
// A connection subscribed to a group but already gone is skipped.
func (r *Registry) SinksForSession(code domain.GameCode) []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.groups[code]
	if !ok {
		return nil
	}
	var activeSinks []contract.EventSink
	for connectionID := range members {
		if sink, exists := r.connections[connectionID]; exists {
			activeSinks = append(activeSinks, sink)
		}
	}
	return activeSinks
}

// Subscribe adds the connection to the session group.
// If the group does not yet exist in the registry, it is initialized on the fly.
func (r *Registry) Subscribe(connectionID domain.ConnectionID, code domain.GameCode) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.groups[code]; !ok {
		r.groups[code] = make(Set)
	}
	r.groups[code][connectionID] = struct{}{}
}

// Unsubscribe removes a connection from the session group.
// No empty sets are left in the group map.
func (r *Registry) Unsubscribe(connectionID domain.ConnectionID, code domain.GameCode) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if members, ok := r.groups[code]; ok {
		delete(members, connectionID)
		if len(members) == 0 {
			delete(r.groups, code)
		}
	}
}

// DropGroup forgets a destroyed session. Connections stay registered.
func (r *Registry) DropGroup(code domain.GameCode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.groups, code)
}

func (r *Registry) GroupSize(code domain.GameCode) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.groups[code])
}
