package runtime

import (
	"songster/contract"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_Subscribe_One_Session_One_Connection(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	connectionID := newConnectionID(t)
	code := mustCode(t, "ABCD1234")
	sink := &Sink{}

	// Given no connection is registered
	req.Empty(registry.connections)
	req.Empty(registry.groups)

	// When a connection is attached and subscribes a session
	registry.Connect(connectionID, sink)
	registry.Subscribe(connectionID, code)

	// Then
	req.Len(registry.connections, 1)
	req.Equal(sink, registry.connections[connectionID])
	req.Len(registry.groups, 1)
	req.Contains(registry.groups[code], connectionID)
	req.Len(registry.SinksForSession(code), 1)
	req.Contains(registry.SinksForSession(code), sink)
}

func TestRegistry_Subscribe_One_Session_Multiple_Connections(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	connectionID1 := newConnectionID(t)
	connectionID2 := newConnectionID(t)
	code := mustCode(t, "ABCD1234")
	sink1 := &Sink{}
	sink2 := &Sink{}

	// When both connections subscribe the same session
	registry.Connect(connectionID1, sink1)
	registry.Connect(connectionID2, sink2)
	registry.Subscribe(connectionID1, code)
	registry.Subscribe(connectionID2, code)

	// Then
	req.Equal(2, registry.GroupSize(code))
	req.ElementsMatch([]contract.EventSink{sink1, sink2}, registry.SinksForSession(code))
}

func TestRegistry_Unsubscribe_Last_Connection_Removes_Group(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	connectionID := newConnectionID(t)
	code := mustCode(t, "ABCD1234")
	registry.Connect(connectionID, &Sink{})
	registry.Subscribe(connectionID, code)

	// When the only member leaves
	registry.Unsubscribe(connectionID, code)

	// Then no empty group is left behind, the connection stays attached
	req.Empty(registry.groups)
	req.Len(registry.connections, 1)
	req.Empty(registry.SinksForSession(code))
}

func TestRegistry_Unsubscribe_One_Of_Multiple_Connections(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	connectionID1 := newConnectionID(t)
	connectionID2 := newConnectionID(t)
	code := mustCode(t, "ABCD1234")
	sink2 := &Sink{}
	registry.Connect(connectionID1, &Sink{})
	registry.Connect(connectionID2, sink2)
	registry.Subscribe(connectionID1, code)
	registry.Subscribe(connectionID2, code)

	registry.Unsubscribe(connectionID1, code)

	req.Equal(1, registry.GroupSize(code))
	req.Equal([]contract.EventSink{sink2}, registry.SinksForSession(code))
}

func TestRegistry_Disconnect_Removes_Connection_From_Every_Group(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	connectionID := newConnectionID(t)
	code := mustCode(t, "ABCD1234")
	registry.Connect(connectionID, &Sink{})
	registry.Subscribe(connectionID, code)

	registry.Disconnect(connectionID)

	req.Empty(registry.connections)
	req.Empty(registry.groups)
}

func TestRegistry_Subscribed_But_Disconnected_Sink_Is_Skipped(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	code := mustCode(t, "ABCD1234")

	// Given a connection subscribed without any sink attached
	registry.Subscribe(newConnectionID(t), code)

	req.Equal(1, registry.GroupSize(code))
	req.Empty(registry.SinksForSession(code))
}

func TestRegistry_DropGroup(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	connectionID := newConnectionID(t)
	code := mustCode(t, "ABCD1234")
	registry.Connect(connectionID, &Sink{})
	registry.Subscribe(connectionID, code)

	registry.DropGroup(code)

	req.Zero(registry.GroupSize(code))
	req.Len(registry.connections, 1)
}
