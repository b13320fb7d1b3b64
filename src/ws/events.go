package ws

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Client-emitted event names.
const (
	EventJoinRoom    = "join-room"
	EventSendMessage = "send-message"
	EventTyping      = "typing"
)

// Server-emitted event names.
const (
	EventReceiveMessage = "receive-message"
	EventMessageSent    = "message-sent"
	EventMessageError   = "message-error"
	EventUserTyping     = "user-typing"
	EventUserOnline     = "user-online"
	EventUserOffline    = "user-offline"
)

// Envelope is the wire framing for every channel event.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

func encodeEvent(event string, data any) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Event: event, Data: raw})
}

// SendMessagePayload is the client payload for send-message.
type SendMessagePayload struct {
	Sender       string `json:"sender"`
	Receiver     string `json:"receiver"`
	SenderRole   string `json:"senderRole"`
	ReceiverRole string `json:"receiverRole"`
	Content      string `json:"content"`
	MessageType  string `json:"messageType"`
	FileUrl      string `json:"fileUrl"`
}

// TypingPayload is the client payload for typing.
type TypingPayload struct {
	Receiver string `json:"receiver"`
	IsTyping bool   `json:"isTyping"`
}

// JoinRoomPayload is the client payload for join-room.
type JoinRoomPayload struct {
	RoomID string `json:"roomId"`
}

// PresencePayload announces a user coming online or going offline.
type PresencePayload struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

// UserTypingPayload is relayed to the receiver of a typing signal.
type UserTypingPayload struct {
	Sender   string `json:"sender"`
	IsTyping bool   `json:"isTyping"`
}

// ErrorPayload is delivered to the originating channel only.
type ErrorPayload struct {
	Error string `json:"error"`
}

func parseObjectID(s string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}
