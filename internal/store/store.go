// Package store provides SQLite-backed local state: user-added
// transactions, display preferences, and the auth session.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Edem2000/ledgerly/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Preference keys.
const (
	PrefUnit = "unit"
	PrefSort = "sort"
)

// Store is the local state database.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the XDG-compliant state database path.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "ledgerly", "state.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "ledgerly", "state.db")
}

// Open opens or creates the state database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating state dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening state db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the state database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveExtras replaces the stored user-added transactions with the given
// set, preserving order.
func (s *Store) SaveExtras(txs []model.Transaction) error {
	dbtx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = dbtx.Rollback() }()

	if _, err := dbtx.Exec("DELETE FROM transactions"); err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for _, t := range txs {
		_, err = dbtx.Exec(`INSERT INTO transactions
			(occurred_at, amount, type, category, title, saved_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			t.Date, t.Amount.String(),
			string(t.Type), t.Category, t.Title, now,
		)
		if err != nil {
			return err
		}
	}

	return dbtx.Commit()
}

// LoadExtras reads the stored user-added transactions in insertion
// order. Rows that no longer parse are skipped rather than failing the
// whole load.
func (s *Store) LoadExtras() ([]model.Transaction, error) {
	rows, err := s.db.Query(`SELECT occurred_at, amount, type, category, title
		FROM transactions ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var txs []model.Transaction
	for rows.Next() {
		var dateStr, amountStr, typStr, category, title string
		if err := rows.Scan(&dateStr, &amountStr, &typStr, &category, &title); err != nil {
			return nil, err
		}

		if _, err := time.Parse("2006-01-02", dateStr); err != nil {
			continue
		}
		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			continue
		}
		typ := model.TransactionType(typStr)
		if !typ.Valid() {
			continue
		}

		tx := model.Transaction{
			Date:     dateStr,
			Amount:   amount,
			Type:     typ,
			Category: category,
			Title:    title,
		}
		// A row whose sign disagrees with its type is as corrupt as a
		// bad date.
		if tx.CheckSign() != nil {
			continue
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

// ExtraCount returns the number of stored user-added transactions.
func (s *Store) ExtraCount() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM transactions").Scan(&count)
	return count, err
}

// SetPref stores a display preference.
func (s *Store) SetPref(key, value string) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO prefs (key, value) VALUES (?, ?)`, key, value)
	return err
}

// Pref returns a stored preference, or the fallback when absent.
func (s *Store) Pref(key, fallback string) string {
	var value string
	err := s.db.QueryRow("SELECT value FROM prefs WHERE key = ?", key).Scan(&value)
	if err != nil {
		return fallback
	}
	return value
}

// SaveSession stores the auth tokens and user profile from a login.
func (s *Store) SaveSession(tokens model.Tokens, user model.User) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO auth
		(id, access_token, refresh_token, user_id, first_name, last_name, email, phone, language)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?)`,
		tokens.AccessToken, tokens.RefreshToken,
		user.ID, user.FirstName, user.LastName, user.Email, user.Phone, user.Language,
	)
	return err
}

// Session returns the stored auth tokens and user profile. A missing
// row is not an error; the returned tokens are simply invalid.
func (s *Store) Session() (model.Tokens, model.User, error) {
	var tokens model.Tokens
	var user model.User
	var refresh, userID, first, last, email, phone, language sql.NullString

	err := s.db.QueryRow(`SELECT access_token, refresh_token, user_id,
		first_name, last_name, email, phone, language FROM auth WHERE id = 1`).
		Scan(&tokens.AccessToken, &refresh, &userID, &first, &last, &email, &phone, &language)
	if err == sql.ErrNoRows {
		return model.Tokens{}, model.User{}, nil
	}
	if err != nil {
		return model.Tokens{}, model.User{}, err
	}

	tokens.RefreshToken = refresh.String
	user.ID = userID.String
	user.FirstName = first.String
	user.LastName = last.String
	user.Email = email.String
	user.Phone = phone.String
	user.Language = language.String
	return tokens, user, nil
}

// ClearSession removes the stored auth session.
func (s *Store) ClearSession() error {
	_, err := s.db.Exec("DELETE FROM auth")
	return err
}
