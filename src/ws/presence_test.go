package ws

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testClient(userID primitive.ObjectID) *Client {
	return &Client{
		send:   make(chan []byte, sendBufferSize),
		done:   make(chan struct{}),
		userID: userID,
	}
}

func TestPresenceRegisterAndGet(t *testing.T) {
	p := newPresence()
	userID := primitive.NewObjectID()

	if p.get(userID) != nil {
		t.Fatal("unknown user should be offline")
	}

	c := testClient(userID)
	if prev := p.register(c); prev != nil {
		t.Fatal("first registration should displace nothing")
	}
	if p.get(userID) != c {
		t.Fatal("registered client should be live for its user")
	}
}

func TestPresenceLastRegisteredWins(t *testing.T) {
	p := newPresence()
	userID := primitive.NewObjectID()

	first := testClient(userID)
	second := testClient(userID)

	p.register(first)
	if prev := p.register(second); prev != first {
		t.Fatal("second registration should displace the first client")
	}
	if p.get(userID) != second {
		t.Fatal("latest registration should win")
	}
}

func TestPresenceRemoveIgnoresStaleClient(t *testing.T) {
	p := newPresence()
	userID := primitive.NewObjectID()

	first := testClient(userID)
	second := testClient(userID)

	p.register(first)
	p.register(second)

	// The displaced channel closing late must not evict the live one.
	if p.remove(first) {
		t.Fatal("stale remove should be a no-op")
	}
	if p.get(userID) != second {
		t.Fatal("live client should survive a stale remove")
	}

	if !p.remove(second) {
		t.Fatal("removing the live client should succeed")
	}
	if p.get(userID) != nil {
		t.Fatal("user should be offline after removal")
	}
}

func TestPresenceSnapshot(t *testing.T) {
	p := newPresence()
	a := testClient(primitive.NewObjectID())
	b := testClient(primitive.NewObjectID())
	p.register(a)
	p.register(b)

	snap := p.snapshot()
	if len(snap) != 2 {
		t.Fatalf("snapshot length = %d, want 2", len(snap))
	}
}
