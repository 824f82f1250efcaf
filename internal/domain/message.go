package domain

import "time"

type MessageType string

const (
	TypeText        MessageType = "text"
	TypeImage       MessageType = "image"
	TypeDocument    MessageType = "document"
	TypeLocation    MessageType = "location"
	TypeInteractive MessageType = "interactive"
	TypeTemplate    MessageType = "template"
)

type MessageStatus string

const (
	StatusSent      MessageStatus = "sent"
	StatusDelivered MessageStatus = "delivered"
	StatusRead      MessageStatus = "read"
	StatusFailed    MessageStatus = "failed"
)

// Terminal reports whether no further progression hop can follow s.
// Failed is reachable only through send-time fault injection; the
// progression itself never produces it.
func (s MessageStatus) Terminal() bool {
	return s == StatusRead || s == StatusFailed
}

// Next returns the status that follows s in the delivery sequence.
// The second return is false once s is terminal.
func (s MessageStatus) Next() (MessageStatus, bool) {
	switch s {
	case StatusSent:
		return StatusDelivered, true
	case StatusDelivered:
		return StatusRead, true
	default:
		return s, false
	}
}

// Message is an outbound message as recorded by the simulator. The status
// field is the only part mutated after creation, and only by the
// progression scheduler.
type Message struct {
	ID        string        `json:"id"`
	To        string        `json:"to"`
	Type      MessageType   `json:"type"`
	Body      string        `json:"body"`
	Options   []ReplyOption `json:"options,omitempty"`
	Status    MessageStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

// ReplyOption is one selectable choice of an interactive message.
type ReplyOption struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
