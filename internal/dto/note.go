package dto

import "time"

// CreateNoteRequest note body; blank text is rejected.
type CreateNoteRequest struct {
	Body *string `json:"body" binding:"required"`
}

// NoteResponse coach note
type NoteResponse struct {
	ID        int64     `json:"id"`
	Body      string    `json:"body"`
	UpdatedAt time.Time `json:"updated_at"`
}
