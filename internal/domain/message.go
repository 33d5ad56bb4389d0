package domain

import (
	"sort"
	"time"
)

// Message is one direct message between two participants.
type Message struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	CarID      string    `json:"carId,omitempty"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
	Read       bool      `json:"read"`
}

// Conversation is a thread between a fixed set of participants.
type Conversation struct {
	ID             string   `json:"id"`
	ParticipantIDs []string `json:"participantIds"`
	LastMessage    *Message `json:"lastMessage,omitempty"`
	UnreadCount    int      `json:"unreadCount"`
}

// HasParticipants reports whether the conversation is between exactly ids, in any order.
func (c Conversation) HasParticipants(ids []string) bool {
	if len(ids) != len(c.ParticipantIDs) {
		return false
	}
	want := append([]string(nil), ids...)
	got := append([]string(nil), c.ParticipantIDs...)
	sort.Strings(want)
	sort.Strings(got)
	for i := range want {
		if want[i] != got[i] {
			return false
		}
	}
	return true
}

// Other returns the first participant that is not self.
func (c Conversation) Other(self string) string {
	for _, id := range c.ParticipantIDs {
		if id != self {
			return id
		}
	}
	return ""
}

// Clone returns a deep copy.
func (c Conversation) Clone() Conversation {
	out := c
	out.ParticipantIDs = append([]string(nil), c.ParticipantIDs...)
	if c.LastMessage != nil {
		m := *c.LastMessage
		out.LastMessage = &m
	}
	return out
}
