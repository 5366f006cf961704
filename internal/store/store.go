// Package store defines the persistence interfaces for the toolkit: saved
// calculator inputs, the TFSA event ledger, and contact submissions.
// Implementations live in subpackages.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/braydenmay123/mclaughlin-toolkit/internal/domain"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidEvent is returned for malformed ledger events.
	ErrInvalidEvent = errors.New("invalid ledger event")
)

// TFSA ledger event kinds.
const (
	EventContribution = "contribution"
	EventWithdrawal   = "withdrawal"
)

// TFSAEvent is one row of the TFSA ledger. Events are append-only; a
// mistaken entry is removed by ID, never edited.
type TFSAEvent struct {
	ID        int64           `json:"id"`
	Account   string          `json:"account"`
	Kind      string          `json:"kind"`
	Year      int             `json:"year"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

// Valid reports whether the event is well-formed.
func (e TFSAEvent) Valid() bool {
	if e.Account == "" || !e.Amount.IsPositive() {
		return false
	}
	return e.Kind == EventContribution || e.Kind == EventWithdrawal
}

// ContactMessage is a contact-form submission.
type ContactMessage struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// InputStore persists calculator input documents keyed by namespace. The
// payload is opaque JSON; callers own the shape.
type InputStore interface {
	SaveInputs(ctx context.Context, namespace string, payload json.RawMessage) error
	LoadInputs(ctx context.Context, namespace string) (json.RawMessage, error)
	ListNamespaces(ctx context.Context) ([]string, error)
}

// TFSAStore persists account profiles and the contribution/withdrawal
// ledger.
type TFSAStore interface {
	SaveProfile(ctx context.Context, account string, profile domain.TFSAProfile) error
	LoadProfile(ctx context.Context, account string) (domain.TFSAProfile, error)
	AppendEvent(ctx context.Context, event TFSAEvent) (int64, error)
	RemoveEvent(ctx context.Context, account string, id int64) error
	ListEvents(ctx context.Context, account string) ([]TFSAEvent, error)
}

// ContactStore persists contact submissions.
type ContactStore interface {
	SaveContact(ctx context.Context, msg ContactMessage) error
}

// Store is the full persistence surface.
type Store interface {
	InputStore
	TFSAStore
	ContactStore
	Close() error
}
