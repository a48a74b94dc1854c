package message

import (
	"strings"
	"time"

	"github.com/portal/portal/internal/platform/apperr"
)

const maxContentLen = 10000

// Message is a note sent from one portal user to another. The
// timestamp is assigned at insert and never changes.
type Message struct {
	ID          int64     `db:"id" json:"id"`
	SenderID    int64     `db:"sender_id" json:"sender_id"`
	RecipientID int64     `db:"recipient_id" json:"recipient_id"`
	Content     string    `db:"content" json:"content"`
	Timestamp   time.Time `db:"timestamp" json:"timestamp"`
}

// CreateMessageInput is the send payload. The sender is the request
// principal, never a body field.
type CreateMessageInput struct {
	RecipientID int64  `json:"recipient_id"`
	Content     string `json:"content"`
}

func (in *CreateMessageInput) Validate() error {
	if in.RecipientID <= 0 {
		return apperr.Validationf("recipient_id is required")
	}
	if strings.TrimSpace(in.Content) == "" {
		return apperr.Validationf("content is required")
	}
	if len(in.Content) > maxContentLen {
		return apperr.Validationf("content must be at most %d characters", maxContentLen)
	}
	return nil
}
