package ws

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/techlearn/techlearn-backend/src/models"
)

type fakeStore struct {
	inserted []*models.Message
	err      error
}

func (f *fakeStore) Insert(_ context.Context, m *models.Message) error {
	if f.err != nil {
		return f.err
	}
	f.inserted = append(f.inserted, m)
	return nil
}

type fakeGate struct {
	accepted bool
	err      error

	recruiterID primitive.ObjectID
	studentID   primitive.ObjectID
}

func (f *fakeGate) Accepted(_ context.Context, recruiterID, studentID primitive.ObjectID) (bool, error) {
	f.recruiterID = recruiterID
	f.studentID = studentID
	return f.accepted, f.err
}

func newTestHub(store *fakeStore, gate *fakeGate) *Hub {
	return NewHub(store, gate, zerolog.Nop())
}

func registerClient(h *Hub, role models.Role) *Client {
	c := testClient(primitive.NewObjectID())
	c.hub = h
	c.role = role
	h.Register(c)
	return c
}

// nextEvent pops one buffered frame from the client, or fails.
func nextEvent(t *testing.T, c *Client) Envelope {
	t.Helper()
	select {
	case frame := <-c.send:
		var env Envelope
		if err := json.Unmarshal(frame, &env); err != nil {
			t.Fatalf("bad frame: %v", err)
		}
		return env
	default:
		t.Fatal("no event buffered")
		return Envelope{}
	}
}

func assertNoEvent(t *testing.T, c *Client) {
	t.Helper()
	select {
	case frame := <-c.send:
		t.Fatalf("unexpected event: %s", frame)
	default:
	}
}

func drain(c *Client) {
	for {
		select {
		case <-c.send:
		default:
			return
		}
	}
}

func sendMessageFrame(t *testing.T, p SendMessagePayload) []byte {
	t.Helper()
	frame, err := encodeEvent(EventSendMessage, p)
	if err != nil {
		t.Fatal(err)
	}
	return frame
}

func TestRegisterBroadcastsUserOnline(t *testing.T) {
	h := newTestHub(&fakeStore{}, &fakeGate{accepted: true})

	first := registerClient(h, models.RoleStudent)
	drain(first)

	second := registerClient(h, models.RoleRecruiter)

	env := nextEvent(t, first)
	if env.Event != EventUserOnline {
		t.Fatalf("event = %q, want %q", env.Event, EventUserOnline)
	}
	var p PresencePayload
	if err := json.Unmarshal(env.Data, &p); err != nil {
		t.Fatal(err)
	}
	if p.UserID != second.userID.Hex() || p.Role != "recruiter" {
		t.Fatalf("presence payload = %+v", p)
	}
}

func TestUnregisterBroadcastsUserOffline(t *testing.T) {
	h := newTestHub(&fakeStore{}, &fakeGate{accepted: true})

	watcher := registerClient(h, models.RoleStudent)
	leaver := registerClient(h, models.RoleRecruiter)
	drain(watcher)

	h.Unregister(leaver)

	env := nextEvent(t, watcher)
	if env.Event != EventUserOffline {
		t.Fatalf("event = %q, want %q", env.Event, EventUserOffline)
	}
	if h.Online(leaver.userID) {
		t.Fatal("leaver should be offline")
	}
}

func TestReconnectDisplacesPreviousChannel(t *testing.T) {
	h := newTestHub(&fakeStore{}, &fakeGate{accepted: true})

	userID := primitive.NewObjectID()
	first := testClient(userID)
	first.hub = h
	first.role = models.RoleStudent
	h.Register(first)

	second := testClient(userID)
	second.hub = h
	second.role = models.RoleStudent
	h.Register(second)

	select {
	case <-first.done:
	default:
		t.Fatal("displaced client should be closed")
	}

	// The displaced channel closing afterwards must not mark the user offline.
	h.Unregister(first)
	if !h.Online(userID) {
		t.Fatal("user should still be online via the new channel")
	}
}

func TestSendMessagePersistsDeliversAndAcks(t *testing.T) {
	store := &fakeStore{}
	gate := &fakeGate{accepted: true}
	h := newTestHub(store, gate)

	sender := registerClient(h, models.RoleRecruiter)
	receiver := registerClient(h, models.RoleStudent)
	drain(sender)
	drain(receiver)

	h.HandleEvent(sender, sendMessageFrame(t, SendMessagePayload{
		Receiver:     receiver.userID.Hex(),
		ReceiverRole: "student",
		Content:      "Interested",
	}))

	if len(store.inserted) != 1 {
		t.Fatalf("inserted %d messages, want 1", len(store.inserted))
	}
	msg := store.inserted[0]
	if msg.Sender != sender.userID || msg.Receiver != receiver.userID {
		t.Fatal("message endpoints wrong")
	}
	if msg.IsRead {
		t.Fatal("new message must start unread")
	}
	if msg.MessageType != models.MessageTypeText {
		t.Fatalf("messageType = %q, want text", msg.MessageType)
	}
	if gate.recruiterID != sender.userID || gate.studentID != receiver.userID {
		t.Fatal("gate queried with wrong pair orientation")
	}

	if env := nextEvent(t, receiver); env.Event != EventReceiveMessage {
		t.Fatalf("receiver event = %q, want %q", env.Event, EventReceiveMessage)
	}
	if env := nextEvent(t, sender); env.Event != EventMessageSent {
		t.Fatalf("sender event = %q, want %q", env.Event, EventMessageSent)
	}
}

func TestSendMessageToOfflineReceiverStillPersists(t *testing.T) {
	store := &fakeStore{}
	h := newTestHub(store, &fakeGate{accepted: true})

	sender := registerClient(h, models.RoleStudent)
	drain(sender)
	offlineReceiver := primitive.NewObjectID()

	h.HandleEvent(sender, sendMessageFrame(t, SendMessagePayload{
		Receiver:     offlineReceiver.Hex(),
		ReceiverRole: "recruiter",
		Content:      "hello",
	}))

	if len(store.inserted) != 1 {
		t.Fatalf("inserted %d messages, want 1", len(store.inserted))
	}
	if env := nextEvent(t, sender); env.Event != EventMessageSent {
		t.Fatalf("sender event = %q, want %q", env.Event, EventMessageSent)
	}
}

func TestSendMessageRequiresAcceptedConnection(t *testing.T) {
	store := &fakeStore{}
	h := newTestHub(store, &fakeGate{accepted: false})

	sender := registerClient(h, models.RoleRecruiter)
	receiver := registerClient(h, models.RoleStudent)
	drain(sender)
	drain(receiver)

	h.HandleEvent(sender, sendMessageFrame(t, SendMessagePayload{
		Receiver:     receiver.userID.Hex(),
		ReceiverRole: "student",
		Content:      "hello",
	}))

	if len(store.inserted) != 0 {
		t.Fatal("gated message must not be persisted")
	}
	if env := nextEvent(t, sender); env.Event != EventMessageError {
		t.Fatalf("sender event = %q, want %q", env.Event, EventMessageError)
	}
	assertNoEvent(t, receiver)
}

func TestSendMessageMentorHasNoConnectionPath(t *testing.T) {
	store := &fakeStore{}
	h := newTestHub(store, &fakeGate{accepted: true})

	sender := registerClient(h, models.RoleMentor)
	drain(sender)

	h.HandleEvent(sender, sendMessageFrame(t, SendMessagePayload{
		Receiver:     primitive.NewObjectID().Hex(),
		ReceiverRole: "student",
		Content:      "hello",
	}))

	if len(store.inserted) != 0 {
		t.Fatal("mentor message must not be persisted")
	}
	if env := nextEvent(t, sender); env.Event != EventMessageError {
		t.Fatalf("sender event = %q, want %q", env.Event, EventMessageError)
	}
}

func TestSendMessageStoreFailureReportsToSenderOnly(t *testing.T) {
	store := &fakeStore{err: errors.New("write failed")}
	h := newTestHub(store, &fakeGate{accepted: true})

	sender := registerClient(h, models.RoleStudent)
	receiver := registerClient(h, models.RoleRecruiter)
	drain(sender)
	drain(receiver)

	h.HandleEvent(sender, sendMessageFrame(t, SendMessagePayload{
		Receiver:     receiver.userID.Hex(),
		ReceiverRole: "recruiter",
		Content:      "hello",
	}))

	if env := nextEvent(t, sender); env.Event != EventMessageError {
		t.Fatalf("sender event = %q, want %q", env.Event, EventMessageError)
	}
	assertNoEvent(t, receiver)
}

func TestSendMessageRejectsSpoofedSender(t *testing.T) {
	store := &fakeStore{}
	h := newTestHub(store, &fakeGate{accepted: true})

	sender := registerClient(h, models.RoleStudent)
	receiver := registerClient(h, models.RoleRecruiter)
	drain(sender)
	drain(receiver)

	h.HandleEvent(sender, sendMessageFrame(t, SendMessagePayload{
		Sender:       primitive.NewObjectID().Hex(),
		Receiver:     receiver.userID.Hex(),
		ReceiverRole: "recruiter",
		Content:      "hello",
	}))

	if len(store.inserted) != 0 {
		t.Fatal("spoofed message must not be persisted")
	}
	if env := nextEvent(t, sender); env.Event != EventMessageError {
		t.Fatalf("sender event = %q, want %q", env.Event, EventMessageError)
	}
}

func TestSendMessageRejectsMismatchedSenderRole(t *testing.T) {
	store := &fakeStore{}
	h := newTestHub(store, &fakeGate{accepted: true})

	sender := registerClient(h, models.RoleStudent)
	receiver := registerClient(h, models.RoleRecruiter)
	drain(sender)
	drain(receiver)

	// Claiming another role than the authenticated channel's is rejected.
	h.HandleEvent(sender, sendMessageFrame(t, SendMessagePayload{
		SenderRole:   "recruiter",
		Receiver:     receiver.userID.Hex(),
		ReceiverRole: "recruiter",
		Content:      "hello",
	}))

	if len(store.inserted) != 0 {
		t.Fatal("mismatched-role message must not be persisted")
	}
	if env := nextEvent(t, sender); env.Event != EventMessageError {
		t.Fatalf("sender event = %q, want %q", env.Event, EventMessageError)
	}
	assertNoEvent(t, receiver)

	// A payload stating the channel's own role passes through.
	h.HandleEvent(sender, sendMessageFrame(t, SendMessagePayload{
		SenderRole:   "student",
		Receiver:     receiver.userID.Hex(),
		ReceiverRole: "recruiter",
		Content:      "hello",
	}))

	if len(store.inserted) != 1 {
		t.Fatalf("inserted %d messages, want 1", len(store.inserted))
	}
	if store.inserted[0].SenderRole != models.RoleStudent {
		t.Fatalf("senderRole = %q, want student", store.inserted[0].SenderRole)
	}
}

func TestTypingRelayedOnlyWhenReceiverOnline(t *testing.T) {
	h := newTestHub(&fakeStore{}, &fakeGate{accepted: true})

	sender := registerClient(h, models.RoleStudent)
	receiver := registerClient(h, models.RoleRecruiter)
	drain(sender)
	drain(receiver)

	frame, err := encodeEvent(EventTyping, TypingPayload{Receiver: receiver.userID.Hex(), IsTyping: true})
	if err != nil {
		t.Fatal(err)
	}
	h.HandleEvent(sender, frame)

	env := nextEvent(t, receiver)
	if env.Event != EventUserTyping {
		t.Fatalf("receiver event = %q, want %q", env.Event, EventUserTyping)
	}
	var p UserTypingPayload
	if err := json.Unmarshal(env.Data, &p); err != nil {
		t.Fatal(err)
	}
	if p.Sender != sender.userID.Hex() || !p.IsTyping {
		t.Fatalf("typing payload = %+v", p)
	}

	// Offline receiver: silently dropped, no ack to the sender either.
	offline, err := encodeEvent(EventTyping, TypingPayload{Receiver: primitive.NewObjectID().Hex(), IsTyping: true})
	if err != nil {
		t.Fatal(err)
	}
	h.HandleEvent(sender, offline)
	assertNoEvent(t, sender)
}

func TestMalformedEventReportsError(t *testing.T) {
	h := newTestHub(&fakeStore{}, &fakeGate{accepted: true})
	sender := registerClient(h, models.RoleStudent)
	drain(sender)

	h.HandleEvent(sender, []byte("{not json"))

	if env := nextEvent(t, sender); env.Event != EventMessageError {
		t.Fatalf("sender event = %q, want %q", env.Event, EventMessageError)
	}
}
