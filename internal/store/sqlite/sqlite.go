// Package sqlite provides a SQLite-backed implementation of the storage
// interfaces. The database is opened in WAL mode and the schema is
// migrated on New. Use ":memory:" for an in-memory database in tests.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/braydenmay123/mclaughlin-toolkit/internal/domain"
	"github.com/braydenmay123/mclaughlin-toolkit/internal/store"
)

// Store implements store.Store using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store at the given database path.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS inputs (
		namespace TEXT PRIMARY KEY,
		payload_json TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS tfsa_profiles (
		account TEXT PRIMARY KEY,
		profile_json TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	-- Append-only ledger of contributions and withdrawals. Rows are
	-- removed by ID to undo a mistaken entry, never updated.
	CREATE TABLE IF NOT EXISTS tfsa_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		account TEXT NOT NULL,
		kind TEXT NOT NULL CHECK (kind IN ('contribution', 'withdrawal')),
		year INTEGER NOT NULL,
		amount TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_tfsa_events_account
		ON tfsa_events(account, year);

	CREATE TABLE IF NOT EXISTS contacts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT,
		message TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

// SaveInputs upserts the input document for a namespace.
func (s *Store) SaveInputs(ctx context.Context, namespace string, payload json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if namespace == "" {
		return fmt.Errorf("namespace is required")
	}
	if !json.Valid(payload) {
		return fmt.Errorf("payload is not valid JSON")
	}

	query := `
		INSERT INTO inputs (namespace, payload_json, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(namespace) DO UPDATE SET
			payload_json = excluded.payload_json,
			updated_at = excluded.updated_at
	`
	_, err := s.db.ExecContext(ctx, query,
		namespace, string(payload), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save inputs: %w", err)
	}
	return nil
}

// LoadInputs returns the input document for a namespace.
func (s *Store) LoadInputs(ctx context.Context, namespace string) (json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var payload string
	err := s.db.QueryRowContext(ctx,
		"SELECT payload_json FROM inputs WHERE namespace = ?", namespace,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load inputs: %w", err)
	}
	return json.RawMessage(payload), nil
}

// ListNamespaces returns all namespaces with saved inputs.
func (s *Store) ListNamespaces(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT namespace FROM inputs ORDER BY namespace ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to list namespaces: %w", err)
	}
	defer rows.Close()

	var namespaces []string
	for rows.Next() {
		var ns string
		if err := rows.Scan(&ns); err != nil {
			return nil, fmt.Errorf("failed to scan namespace: %w", err)
		}
		namespaces = append(namespaces, ns)
	}
	return namespaces, rows.Err()
}

// SaveProfile upserts a TFSA account profile.
func (s *Store) SaveProfile(ctx context.Context, account string, profile domain.TFSAProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if account == "" {
		return fmt.Errorf("account is required")
	}
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	query := `
		INSERT INTO tfsa_profiles (account, profile_json, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(account) DO UPDATE SET
			profile_json = excluded.profile_json,
			updated_at = excluded.updated_at
	`
	_, err = s.db.ExecContext(ctx, query,
		account, string(profileJSON), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// LoadProfile returns the profile for a TFSA account.
func (s *Store) LoadProfile(ctx context.Context, account string) (domain.TFSAProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var profileJSON string
	err := s.db.QueryRowContext(ctx,
		"SELECT profile_json FROM tfsa_profiles WHERE account = ?", account,
	).Scan(&profileJSON)
	if err == sql.ErrNoRows {
		return domain.TFSAProfile{}, store.ErrNotFound
	}
	if err != nil {
		return domain.TFSAProfile{}, fmt.Errorf("failed to load profile: %w", err)
	}

	var profile domain.TFSAProfile
	if err := json.Unmarshal([]byte(profileJSON), &profile); err != nil {
		return domain.TFSAProfile{}, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return profile, nil
}

// AppendEvent adds a ledger event and returns its assigned ID.
func (s *Store) AppendEvent(ctx context.Context, event store.TFSAEvent) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !event.Valid() {
		return 0, store.ErrInvalidEvent
	}

	query := `
		INSERT INTO tfsa_events (account, kind, year, amount, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	res, err := s.db.ExecContext(ctx, query,
		event.Account, event.Kind, event.Year, event.Amount.String(),
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("failed to append event: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read event id: %w", err)
	}
	return id, nil
}

// RemoveEvent deletes a ledger event by ID. The account must match the
// row's account so one caller cannot remove another account's events.
func (s *Store) RemoveEvent(ctx context.Context, account string, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx,
		"DELETE FROM tfsa_events WHERE id = ? AND account = ?", id, account)
	if err != nil {
		return fmt.Errorf("failed to remove event: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check removal: %w", err)
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// ListEvents returns all ledger events for an account ordered by year,
// then insertion order.
func (s *Store) ListEvents(ctx context.Context, account string) ([]store.TFSAEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT id, account, kind, year, amount, created_at
		FROM tfsa_events
		WHERE account = ?
		ORDER BY year ASC, id ASC
	`
	rows, err := s.db.QueryContext(ctx, query, account)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []store.TFSAEvent
	for rows.Next() {
		var (
			ev        store.TFSAEvent
			amount    string
			createdAt string
		)
		if err := rows.Scan(&ev.ID, &ev.Account, &ev.Kind, &ev.Year, &amount, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		ev.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("failed to parse event amount: %w", err)
		}
		ev.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		events = append(events, ev)
	}
	return events, rows.Err()
}

// SaveContact records a contact-form submission.
func (s *Store) SaveContact(ctx context.Context, msg store.ContactMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		return fmt.Errorf("name, email and message are required")
	}

	created := msg.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}

	query := `
		INSERT INTO contacts (name, email, phone, message, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query,
		msg.Name, msg.Email, msg.Phone, msg.Message, created.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save contact: %w", err)
	}
	return nil
}
