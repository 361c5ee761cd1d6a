package testutil

import (
	"context"
	"fmt"
	"sync"

	"shopkeeper/repository"
)

// FakeRowStore is an in-memory RowStore for repository tests. It mirrors
// spreadsheet semantics: rows keep insertion order, deletion shifts later
// rows up, and indices start at the first data row.
type FakeRowStore struct {
	mu     sync.Mutex
	tables map[string][][]string

	// FailNext, when set, makes the next call return this error
	FailNext error
}

// NewFakeRowStore creates an empty fake store
func NewFakeRowStore() *FakeRowStore {
	return &FakeRowStore{tables: make(map[string][][]string)}
}

// Seed replaces a table's contents
func (s *FakeRowStore) Seed(table string, rows ...[]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[table] = append([][]string(nil), rows...)
}

// Snapshot returns a copy of a table's current contents
func (s *FakeRowStore) Snapshot(table string) [][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([][]string(nil), s.tables[table]...)
}

func (s *FakeRowStore) takeFailure() error {
	err := s.FailNext
	s.FailNext = nil
	return err
}

func (s *FakeRowStore) Rows(ctx context.Context, table string) ([]repository.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return nil, err
	}

	rows := make([]repository.Row, 0, len(s.tables[table]))
	for i, values := range s.tables[table] {
		rows = append(rows, repository.Row{Index: i, Values: append([]string(nil), values...)})
	}
	return rows, nil
}

func (s *FakeRowStore) Append(ctx context.Context, table string, values []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return err
	}

	s.tables[table] = append(s.tables[table], append([]string(nil), values...))
	return nil
}

func (s *FakeRowStore) Update(ctx context.Context, table string, index int, values []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return err
	}

	rows := s.tables[table]
	if index < 0 || index >= len(rows) {
		return fmt.Errorf("no row %d in table %s", index, table)
	}
	rows[index] = append([]string(nil), values...)
	return nil
}

func (s *FakeRowStore) Delete(ctx context.Context, table string, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return err
	}

	rows := s.tables[table]
	if index < 0 || index >= len(rows) {
		return fmt.Errorf("no row %d in table %s", index, table)
	}
	s.tables[table] = append(rows[:index], rows[index+1:]...)
	return nil
}
