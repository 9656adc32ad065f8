// Package ledger owns the merged transaction view and the monthly
// aggregation and budget reconciliation engines.
package ledger

import (
	"sort"

	"github.com/Edem2000/ledgerly/internal/model"
)

// Persister saves the user-added transaction list. Persistence is
// best-effort: a failing persister never blocks an in-memory mutation.
type Persister interface {
	SaveExtras(extras []model.Transaction) error
}

// Store merges the immutable baseline transaction set with the mutable
// user-added set. It is the sole owner of the merged view; readers get
// copies.
type Store struct {
	baseline []model.Transaction
	extras   []model.Transaction
	persist  Persister
}

// NewStore builds a store over a baseline set and previously persisted
// user-added entries. persist may be nil for a memory-only store.
func NewStore(baseline, extras []model.Transaction, persist Persister) *Store {
	return &Store{
		baseline: baseline,
		extras:   append([]model.Transaction(nil), extras...),
		persist:  persist,
	}
}

// All returns baseline ++ user-added in insertion order.
func (s *Store) All() []model.Transaction {
	out := make([]model.Transaction, 0, len(s.baseline)+len(s.extras))
	out = append(out, s.baseline...)
	return append(out, s.extras...)
}

// Extras returns the user-added transactions.
func (s *Store) Extras() []model.Transaction {
	return append([]model.Transaction(nil), s.extras...)
}

// ExtraCount returns how many user-added transactions exist.
func (s *Store) ExtraCount() int {
	return len(s.extras)
}

// Periods returns the distinct period keys observed across all
// transactions, sorted ascending. Entries with unparseable dates are
// skipped.
func (s *Store) Periods() []string {
	seen := make(map[string]struct{})
	for _, tx := range s.All() {
		p := tx.Period()
		if p.IsZero() {
			continue
		}
		seen[p.Key()] = struct{}{}
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// LatestPeriod returns the most recent period key, or "" when there are
// no dated transactions.
func (s *Store) LatestPeriod() string {
	keys := s.Periods()
	if len(keys) == 0 {
		return ""
	}
	return keys[len(keys)-1]
}

// Add validates and appends a user-added transaction, then persists the
// extras list. The in-memory append succeeds even when persistence
// fails.
func (s *Store) Add(tx model.Transaction) error {
	if tx.Date == "" {
		return model.ErrMissingDate
	}
	if err := tx.CheckSign(); err != nil {
		return err
	}

	s.extras = append(s.extras, tx)
	s.save()
	return nil
}

// ClearExtras empties the user-added list and persists the empty state.
func (s *Store) ClearExtras() {
	s.extras = s.extras[:0]
	s.save()
}

func (s *Store) save() {
	if s.persist == nil {
		return
	}
	// Swallowed: memory state stays authoritative for the session.
	_ = s.persist.SaveExtras(s.Extras())
}
