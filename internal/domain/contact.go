package domain

import "time"

// Contact is a known counterpart address. Upserted during seeding and when
// inbound traffic is synthesized, never mutated afterwards.
type Contact struct {
	WaID      string    `json:"wa_id"`
	Name      string    `json:"name"`
	About     string    `json:"about,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
