package model

import "time"

// Notification is the toast shown to a visitor after an action.
type Notification struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Destructive bool   `json:"destructive,omitempty"`
}

// FormKind identifies which form produced an envelope.
type FormKind string

// Form kinds accepted by the outbox.
const (
	FormRegistration FormKind = "registration"
	FormSubmission   FormKind = "submission"
)

// Envelope carries an accepted form payload through the outbox queue.
type Envelope struct {
	ReceiptID      string    // uuid handed back to the visitor
	Kind           FormKind  // registration or submission
	IdempotencyKey string    // client supplied, used for duplicate detection
	Payload        any       // wizard.Registration or submission.Submission
	ReceivedAt     time.Time // acceptance time
}

// Receipt acknowledges a form post.
type Receipt struct {
	ID           string       `json:"receipt_id,omitempty"`
	Status       string       `json:"status"`
	Duplicate    bool         `json:"duplicate"`
	Notification Notification `json:"notification"`
}
