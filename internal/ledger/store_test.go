package ledger

import (
	"errors"
	"testing"

	"github.com/Edem2000/ledgerly/internal/model"
)

// fakePersister records saves and can be told to fail.
type fakePersister struct {
	saved [][]model.Transaction
	err   error
}

func (f *fakePersister) SaveExtras(extras []model.Transaction) error {
	f.saved = append(f.saved, extras)
	return f.err
}

func TestStoreAll_BaselineThenExtras(t *testing.T) {
	base := []model.Transaction{tx(t, "2025-10-02", "1500", model.Income, "Salary")}
	extras := []model.Transaction{tx(t, "2025-10-05", "-10", model.Expense, "Other")}

	s := NewStore(base, extras, nil)
	all := s.All()

	if len(all) != 2 {
		t.Fatalf("len(All()) = %d, want 2", len(all))
	}
	if all[0].Category != "Salary" || all[1].Category != "Other" {
		t.Errorf("order = %s, %s; want baseline first", all[0].Category, all[1].Category)
	}
}

func TestStorePeriods_SortedAscending(t *testing.T) {
	s := NewStore(Baseline(), nil, nil)

	periods := s.Periods()
	if len(periods) != 2 {
		t.Fatalf("Periods() = %v, want 2 entries", periods)
	}
	if periods[0] != "2025-10" || periods[1] != "2025-11" {
		t.Errorf("Periods() = %v, want [2025-10 2025-11]", periods)
	}
	if s.LatestPeriod() != "2025-11" {
		t.Errorf("LatestPeriod() = %q, want 2025-11", s.LatestPeriod())
	}
}

func TestStoreAdd_ValidatesAndPersists(t *testing.T) {
	p := &fakePersister{}
	s := NewStore(nil, nil, p)

	entry := tx(t, "2025-10-07", "-42", model.Expense, "Groceries")
	if err := s.Add(entry); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if s.ExtraCount() != 1 {
		t.Fatalf("ExtraCount = %d, want 1", s.ExtraCount())
	}
	if len(p.saved) != 1 || len(p.saved[0]) != 1 {
		t.Fatalf("persister saw %d saves", len(p.saved))
	}
}

func TestStoreAdd_RejectsSignMismatch(t *testing.T) {
	s := NewStore(nil, nil, nil)

	bad := tx(t, "2025-10-07", "42", model.Expense, "Groceries")
	if err := s.Add(bad); err == nil {
		t.Error("positive expense accepted")
	}

	missing := tx(t, "", "-42", model.Expense, "Groceries")
	if err := s.Add(missing); !errors.Is(err, model.ErrMissingDate) {
		t.Errorf("missing date error = %v, want ErrMissingDate", err)
	}

	if s.ExtraCount() != 0 {
		t.Errorf("rejected entries were appended: %d", s.ExtraCount())
	}
}

func TestStoreAdd_PersistFailureKeepsMemoryState(t *testing.T) {
	p := &fakePersister{err: errors.New("disk full")}
	s := NewStore(nil, nil, p)

	if err := s.Add(tx(t, "2025-10-07", "-42", model.Expense, "Groceries")); err != nil {
		t.Fatalf("Add returned persistence error: %v", err)
	}
	if s.ExtraCount() != 1 {
		t.Error("in-memory append rolled back on persist failure")
	}
}

func TestStoreClearExtras(t *testing.T) {
	p := &fakePersister{}
	extras := []model.Transaction{tx(t, "2025-10-05", "-10", model.Expense, "Other")}
	s := NewStore(Baseline(), extras, p)

	s.ClearExtras()

	if s.ExtraCount() != 0 {
		t.Errorf("ExtraCount = %d after clear", s.ExtraCount())
	}
	if len(s.All()) != len(Baseline()) {
		t.Error("baseline affected by clear")
	}
	if len(p.saved) != 1 || len(p.saved[0]) != 0 {
		t.Error("empty state not persisted")
	}
}

func TestBaseline_SignInvariantHolds(t *testing.T) {
	for i, tx := range Baseline() {
		if err := tx.CheckSign(); err != nil {
			t.Errorf("baseline[%d] %s: %v", i, tx.Category, err)
		}
	}
}
