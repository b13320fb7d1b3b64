package ws

import (
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// presence is the keyed registry of live channels, one per user at most.
// Registration is last-writer-wins: a user reconnecting replaces (and
// closes) their previous channel.
type presence struct {
	mu      sync.RWMutex
	clients map[primitive.ObjectID]*Client
}

func newPresence() *presence {
	return &presence{clients: make(map[primitive.ObjectID]*Client)}
}

// register stores the client as the live channel for its user and returns
// the displaced client, if any.
func (p *presence) register(c *Client) *Client {
	p.mu.Lock()
	defer p.mu.Unlock()

	prev := p.clients[c.userID]
	p.clients[c.userID] = c
	if prev == c {
		return nil
	}
	return prev
}

// remove drops the entry for the client's user, but only if this client is
// still the registered one. A stale close must not evict a newer channel.
func (p *presence) remove(c *Client) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.clients[c.userID] != c {
		return false
	}
	delete(p.clients, c.userID)
	return true
}

// get returns the live client for a user, or nil if offline.
func (p *presence) get(userID primitive.ObjectID) *Client {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.clients[userID]
}

// snapshot returns the currently registered clients.
func (p *presence) snapshot() []*Client {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]*Client, 0, len(p.clients))
	for _, c := range p.clients {
		out = append(out, c)
	}
	return out
}
