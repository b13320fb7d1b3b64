package ws

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/techlearn/techlearn-backend/src/models"
)

// MessageStore persists relayed messages.
type MessageStore interface {
	Insert(ctx context.Context, m *models.Message) error
}

// ConnectionGate answers whether a recruiter/student pair holds an accepted
// connection. The relay applies the same gate as the REST message listing.
type ConnectionGate interface {
	Accepted(ctx context.Context, recruiterID, studentID primitive.ObjectID) (bool, error)
}

const storeTimeout = 5 * time.Second

// Hub owns the presence registry and fans events out between live channels.
type Hub struct {
	presence *presence
	store    MessageStore
	gate     ConnectionGate
	logger   zerolog.Logger
}

func NewHub(store MessageStore, gate ConnectionGate, logger zerolog.Logger) *Hub {
	return &Hub{
		presence: newPresence(),
		store:    store,
		gate:     gate,
		logger:   logger,
	}
}

// Register marks the client's user online and announces it. A previous
// channel for the same user is displaced and closed.
func (h *Hub) Register(c *Client) {
	if prev := h.presence.register(c); prev != nil {
		prev.close()
	}

	h.logger.Info().
		Str("userID", c.userID.Hex()).
		Str("role", string(c.role)).
		Msg("Client registered")

	h.broadcastAll(EventUserOnline, PresencePayload{
		UserID: c.userID.Hex(),
		Role:   string(c.role),
	})
}

// Unregister removes the client's presence entry and announces the user
// offline, unless a newer channel has already replaced this one.
func (h *Hub) Unregister(c *Client) {
	removed := h.presence.remove(c)
	c.close()

	if !removed {
		return
	}

	h.logger.Info().
		Str("userID", c.userID.Hex()).
		Str("role", string(c.role)).
		Msg("Client unregistered")

	h.broadcastAll(EventUserOffline, PresencePayload{
		UserID: c.userID.Hex(),
		Role:   string(c.role),
	})
}

// Online reports whether a user currently holds a live channel.
func (h *Hub) Online(userID primitive.ObjectID) bool {
	return h.presence.get(userID) != nil
}

// HandleEvent routes one inbound frame from a client.
func (h *Hub) HandleEvent(c *Client, raw []byte) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		h.emitError(c, "Malformed event")
		return
	}

	switch env.Event {
	case EventJoinRoom:
		// Rooms carry no server-side state; delivery is addressed by user ID.
		var p JoinRoomPayload
		if err := json.Unmarshal(env.Data, &p); err == nil {
			h.logger.Debug().
				Str("userID", c.userID.Hex()).
				Str("roomID", p.RoomID).
				Msg("Client joined room")
		}
	case EventSendMessage:
		h.handleSendMessage(c, env.Data)
	case EventTyping:
		h.handleTyping(c, env.Data)
	default:
		h.logger.Debug().Str("event", env.Event).Msg("Ignoring unknown event")
	}
}

func (h *Hub) handleSendMessage(c *Client, data json.RawMessage) {
	var p SendMessagePayload
	if err := json.Unmarshal(data, &p); err != nil {
		h.emitError(c, "Malformed message payload")
		return
	}

	// The sender identity is always the authenticated channel owner; a
	// payload that claims someone else, or another role, is rejected.
	if p.Sender != "" && p.Sender != c.userID.Hex() {
		h.emitError(c, "Sender does not match connection")
		return
	}
	if p.SenderRole != "" && p.SenderRole != string(c.role) {
		h.emitError(c, "Sender role does not match connection")
		return
	}

	receiverID, ok := parseObjectID(p.Receiver)
	if !ok {
		h.emitError(c, "Invalid receiver")
		return
	}
	receiverRole, ok := models.ParseRole(p.ReceiverRole)
	if !ok {
		h.emitError(c, "Invalid receiver role")
		return
	}
	if p.Content == "" && p.FileUrl == "" {
		h.emitError(c, "Empty message")
		return
	}

	msgType := models.MessageType(p.MessageType)
	if msgType == "" {
		msgType = models.MessageTypeText
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	recruiterID, studentID, ok := pairForRoles(c.userID, c.role, receiverID, receiverRole)
	if !ok {
		h.emitError(c, "No active connection found")
		return
	}
	accepted, err := h.gate.Accepted(ctx, recruiterID, studentID)
	if err != nil {
		h.logger.Error().Err(err).Msg("Connection check failed")
		h.emitError(c, "Failed to send message")
		return
	}
	if !accepted {
		h.emitError(c, "No active connection found")
		return
	}

	msg := &models.Message{
		Id:           primitive.NewObjectID(),
		Sender:       c.userID,
		Receiver:     receiverID,
		SenderRole:   c.role,
		ReceiverRole: receiverRole,
		Content:      p.Content,
		MessageType:  msgType,
		FileUrl:      p.FileUrl,
		IsRead:       false,
		CreatedAt:    time.Now(),
	}

	if err := h.store.Insert(ctx, msg); err != nil {
		h.logger.Error().
			Err(err).
			Str("sender", c.userID.Hex()).
			Str("receiver", receiverID.Hex()).
			Msg("Failed to persist message")
		h.emitError(c, "Failed to send message")
		return
	}

	// Deliver to the receiver's live channel, if any.
	if receiver := h.presence.get(receiverID); receiver != nil {
		h.emit(receiver, EventReceiveMessage, msg)
	}

	// Always acknowledge persistence back to the sender.
	h.emit(c, EventMessageSent, msg)
}

func (h *Hub) handleTyping(c *Client, data json.RawMessage) {
	var p TypingPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return
	}
	receiverID, ok := parseObjectID(p.Receiver)
	if !ok {
		return
	}

	// Stateless signal: dropped silently when the receiver is offline.
	if receiver := h.presence.get(receiverID); receiver != nil {
		h.emit(receiver, EventUserTyping, UserTypingPayload{
			Sender:   c.userID.Hex(),
			IsTyping: p.IsTyping,
		})
	}
}

// pairForRoles orients a (sender, receiver) pair into (recruiter, student).
// Only student<->recruiter pairs have a connection path; anything involving
// a mentor has none.
func pairForRoles(senderID primitive.ObjectID, senderRole models.Role, receiverID primitive.ObjectID, receiverRole models.Role) (recruiterID, studentID primitive.ObjectID, ok bool) {
	switch {
	case senderRole == models.RoleRecruiter && receiverRole == models.RoleStudent:
		return senderID, receiverID, true
	case senderRole == models.RoleStudent && receiverRole == models.RoleRecruiter:
		return receiverID, senderID, true
	}
	return primitive.NilObjectID, primitive.NilObjectID, false
}

func (h *Hub) emit(c *Client, event string, payload any) {
	frame, err := encodeEvent(event, payload)
	if err != nil {
		h.logger.Error().Err(err).Str("event", event).Msg("Failed to encode event")
		return
	}
	c.enqueue(frame)
}

func (h *Hub) emitError(c *Client, message string) {
	h.emit(c, EventMessageError, ErrorPayload{Error: message})
}

func (h *Hub) broadcastAll(event string, payload any) {
	frame, err := encodeEvent(event, payload)
	if err != nil {
		h.logger.Error().Err(err).Str("event", event).Msg("Failed to encode event")
		return
	}
	for _, c := range h.presence.snapshot() {
		c.enqueue(frame)
	}
}
