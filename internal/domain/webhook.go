package domain

import "time"

// Wire shapes for the provider surface. External consumers unmarshal these
// field names verbatim, so json tags here are contract, not style.

// SendAck is the synchronous response of a successful send call.
type SendAck struct {
	MessagingProduct string       `json:"messaging_product"`
	Contacts         []AckContact `json:"contacts"`
	Messages         []AckMessage `json:"messages"`
}

type AckContact struct {
	Input string `json:"input"`
	WaID  string `json:"wa_id"`
}

type AckMessage struct {
	ID string `json:"id"`
}

// WebhookPayload is the envelope published for every asynchronous event,
// inbound messages and status updates alike. Exactly one of
// Value.Messages or Value.Statuses is set per change.
type WebhookPayload struct {
	Entry []Entry `json:"entry"`
}

type Entry struct {
	ID      string   `json:"id"`
	Changes []Change `json:"changes"`
}

type Change struct {
	Value ChangeValue `json:"value"`
	Field string      `json:"field"`
}

type ChangeValue struct {
	MessagingProduct string           `json:"messaging_product"`
	Metadata         Metadata         `json:"metadata"`
	Contacts         []WebhookContact `json:"contacts,omitempty"`
	Messages         []InboundMessage `json:"messages,omitempty"`
	Statuses         []StatusUpdate   `json:"statuses,omitempty"`
}

// Metadata identifies the simulated business line the event belongs to.
type Metadata struct {
	DisplayPhoneNumber string `json:"display_phone_number"`
	PhoneNumberID      string `json:"phone_number_id"`
}

type WebhookContact struct {
	WaID    string  `json:"wa_id"`
	Profile Profile `json:"profile"`
}

type Profile struct {
	Name string `json:"name"`
}

// StatusUpdate reports one hop of an outbound message's delivery sequence.
type StatusUpdate struct {
	ID          string        `json:"id"`
	Status      MessageStatus `json:"status"`
	Timestamp   string        `json:"timestamp"`
	RecipientID string        `json:"recipient_id"`
}

// InboundMessage is a message received from a simulated counterpart.
type InboundMessage struct {
	From        string            `json:"from"`
	ID          string            `json:"id"`
	Timestamp   string            `json:"timestamp"`
	Type        MessageType       `json:"type"`
	Text        *Text             `json:"text,omitempty"`
	Context     *Context          `json:"context,omitempty"`
	Interactive *InteractiveReply `json:"interactive,omitempty"`
}

type Text struct {
	Body string `json:"body"`
}

// Context correlates a reply with the outbound message it answers.
type Context struct {
	ID string `json:"id"`
}

type InteractiveReply struct {
	Type        string       `json:"type"`
	ButtonReply *ReplyOption `json:"button_reply,omitempty"`
	ListReply   *ReplyOption `json:"list_reply,omitempty"`
}

// MediaUploadResponse and MediaDownloadResponse mirror the provider's
// media endpoints.
type MediaUploadResponse struct {
	ID string `json:"id"`
}

type MediaDownloadResponse struct {
	URL      string `json:"url"`
	MimeType string `json:"mime_type"`
	SHA256   string `json:"sha256"`
	FileSize int64  `json:"file_size"`
}

// WebhookRegistration is a recorded callback subscription. The simulator
// records it and forwards published payloads to the URL; verification
// handshakes are not emulated.
type WebhookRegistration struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	VerifyToken string    `json:"verify_token"`
	CreatedAt   time.Time `json:"created_at"`
}
