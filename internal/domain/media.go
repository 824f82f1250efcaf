package domain

import "time"

// MediaRecord is the metadata of an uploaded blob. Immutable after
// creation; removed only by a store-wide clear.
type MediaRecord struct {
	ID         string    `json:"id"`
	MimeType   string    `json:"mime_type"`
	FileSize   int64     `json:"file_size"`
	Filename   string    `json:"filename,omitempty"`
	Caption    string    `json:"caption,omitempty"`
	UploadedAt time.Time `json:"uploaded_at"`
}
