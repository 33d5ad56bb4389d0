package messages

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"carmarket-backend/internal/domain"
	"carmarket-backend/internal/infrastructure/snapshot"

	"github.com/rs/zerolog/log"
)

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrContentRequired      = errors.New("message content is required")
	ErrReceiverRequired     = errors.New("receiver is required")
	ErrSameParticipant      = errors.New("sender and receiver must differ")
	ErrNotParticipant       = errors.New("sender and receiver are not the participants of this conversation")
)

// Self is the participant id of the device's own user in its inbox.
const Self = "currentUser"

// State is the persisted shape under direct-messages-storage.
type State struct {
	Conversations []domain.Conversation       `json:"conversations"`
	Messages      map[string][]domain.Message `json:"messages"`
}

// NewMessage is the input of Send. An empty SenderID means Self.
type NewMessage struct {
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
	CarID      string `json:"carId"`
	Content    string `json:"content"`
}

// Inbox is one device's direct-message threads. Messages from anyone but Self
// count as unread until the conversation is marked read.
type Inbox struct {
	owner   string
	persist snapshot.Persister
	now     func() time.Time

	mu     sync.Mutex
	state  State
	lastID int64
}

// Open restores the owner's inbox. A fresh device starts with the seed threads;
// a failed restore is logged and also yields them.
func Open(ctx context.Context, owner string, p snapshot.Persister) *Inbox {
	in := &Inbox{owner: owner, persist: p, now: time.Now}
	var st State
	ok, err := p.Restore(ctx, snapshot.NamespaceDirectMessages, owner, &st)
	if err != nil {
		log.Error().Err(err).Str("owner", owner).Msg("Failed to restore direct messages")
	}
	if !ok || err != nil {
		st = SeedState()
	}
	if st.Messages == nil {
		st.Messages = map[string][]domain.Message{}
	}
	in.state = st
	for _, c := range st.Conversations {
		in.observeID(c.ID)
	}
	for _, msgs := range st.Messages {
		for _, m := range msgs {
			in.observeID(m.ID)
		}
	}
	return in
}

func (in *Inbox) observeID(id string) {
	if n, err := strconv.ParseInt(id, 10, 64); err == nil && n > in.lastID {
		in.lastID = n
	}
}

func cloneState(st State) State {
	out := State{
		Conversations: make([]domain.Conversation, len(st.Conversations)),
		Messages:      make(map[string][]domain.Message, len(st.Messages)),
	}
	for i, c := range st.Conversations {
		out.Conversations[i] = c.Clone()
	}
	for id, msgs := range st.Messages {
		out.Messages[id] = append([]domain.Message(nil), msgs...)
	}
	return out
}

func (in *Inbox) save() {
	in.persist.Submit(snapshot.NamespaceDirectMessages, in.owner, cloneState(in.state))
}

func (in *Inbox) nextID(at time.Time) string {
	id := at.UnixMilli()
	if id <= in.lastID {
		id = in.lastID + 1
	}
	in.lastID = id
	return strconv.FormatInt(id, 10)
}

func (in *Inbox) find(id string) int {
	for i := range in.state.Conversations {
		if in.state.Conversations[i].ID == id {
			return i
		}
	}
	return -1
}

func (in *Inbox) findByParticipants(ids []string) int {
	for i := range in.state.Conversations {
		if in.state.Conversations[i].HasParticipants(ids) {
			return i
		}
	}
	return -1
}

// Send appends a message. Without conversationID it goes to the thread between
// sender and receiver, which is created when missing.
func (in *Inbox) Send(msg NewMessage, conversationID string) (string, domain.Message, error) {
	msg.SenderID = strings.TrimSpace(msg.SenderID)
	msg.ReceiverID = strings.TrimSpace(msg.ReceiverID)
	msg.Content = strings.TrimSpace(msg.Content)
	if msg.SenderID == "" {
		msg.SenderID = Self
	}
	if msg.Content == "" {
		return "", domain.Message{}, ErrContentRequired
	}
	if msg.ReceiverID == "" {
		return "", domain.Message{}, ErrReceiverRequired
	}
	if msg.ReceiverID == msg.SenderID {
		return "", domain.Message{}, ErrSameParticipant
	}
	participants := []string{msg.SenderID, msg.ReceiverID}

	in.mu.Lock()
	defer in.mu.Unlock()
	at := in.now().UTC()

	var i int
	if conversationID != "" {
		if i = in.find(conversationID); i < 0 {
			return "", domain.Message{}, ErrConversationNotFound
		}
		if !in.state.Conversations[i].HasParticipants(participants) {
			return "", domain.Message{}, ErrNotParticipant
		}
	} else if i = in.findByParticipants(participants); i < 0 {
		in.state.Conversations = append(in.state.Conversations, domain.Conversation{
			ID:             in.nextID(at),
			ParticipantIDs: participants,
		})
		i = len(in.state.Conversations) - 1
	}

	m := domain.Message{
		ID:         in.nextID(at),
		SenderID:   msg.SenderID,
		ReceiverID: msg.ReceiverID,
		CarID:      strings.TrimSpace(msg.CarID),
		Content:    msg.Content,
		Timestamp:  at,
		Read:       msg.SenderID == Self,
	}
	conv := &in.state.Conversations[i]
	in.state.Messages[conv.ID] = append(in.state.Messages[conv.ID], m)
	last := m
	conv.LastMessage = &last
	if m.SenderID != Self {
		conv.UnreadCount++
	}
	in.save()
	return conv.ID, m, nil
}

// MarkRead clears the unread count and marks every message to Self as read.
func (in *Inbox) MarkRead(conversationID string) (domain.Conversation, error) {
	in.mu.Lock()
	defer in.mu.Unlock()
	i := in.find(conversationID)
	if i < 0 {
		return domain.Conversation{}, ErrConversationNotFound
	}
	conv := &in.state.Conversations[i]
	conv.UnreadCount = 0
	if conv.LastMessage != nil && conv.LastMessage.ReceiverID == Self {
		conv.LastMessage.Read = true
	}
	msgs := in.state.Messages[conv.ID]
	for j := range msgs {
		if msgs[j].ReceiverID == Self {
			msgs[j].Read = true
		}
	}
	in.save()
	return conv.Clone(), nil
}

func (in *Inbox) Conversation(id string) (domain.Conversation, error) {
	in.mu.Lock()
	defer in.mu.Unlock()
	i := in.find(id)
	if i < 0 {
		return domain.Conversation{}, ErrConversationNotFound
	}
	return in.state.Conversations[i].Clone(), nil
}

// ConversationWith returns the thread between exactly the given participants, in any order.
func (in *Inbox) ConversationWith(participantIDs ...string) (domain.Conversation, bool) {
	in.mu.Lock()
	defer in.mu.Unlock()
	i := in.findByParticipants(participantIDs)
	if i < 0 {
		return domain.Conversation{}, false
	}
	return in.state.Conversations[i].Clone(), true
}

// Conversations returns every thread in the order it was started.
func (in *Inbox) Conversations() []domain.Conversation {
	in.mu.Lock()
	defer in.mu.Unlock()
	out := make([]domain.Conversation, len(in.state.Conversations))
	for i, c := range in.state.Conversations {
		out[i] = c.Clone()
	}
	return out
}

// Messages returns the thread's messages oldest first.
func (in *Inbox) Messages(conversationID string) ([]domain.Message, error) {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.find(conversationID) < 0 {
		return nil, ErrConversationNotFound
	}
	return append([]domain.Message{}, in.state.Messages[conversationID]...), nil
}

// UnreadCount sums the unread counts of every thread.
func (in *Inbox) UnreadCount() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	n := 0
	for _, c := range in.state.Conversations {
		n += c.UnreadCount
	}
	return n
}
