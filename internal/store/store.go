// Package store keeps every entity kind in an in-memory transactional
// database. Each kind gets its own table with a unique integer primary index;
// identifiers are assigned from per-table sequences on insert.
package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	memdb "github.com/hashicorp/go-memdb"

	"github.com/Izaek256/CarRental-Server-Client/internal/model"
)

var ErrNotFound = errors.New("store: record not found")

const idIndex = "id"

// Store owns the database and the per-table identifier sequences.
type Store struct {
	db *memdb.MemDB

	mu   sync.Mutex
	seqs map[string]uint64
}

// Open builds the schema for every known entity kind and returns an empty
// store.
func Open() (*Store, error) {
	tables := make(map[string]*memdb.TableSchema)
	for _, name := range model.Tables() {
		tables[name] = &memdb.TableSchema{
			Name: name,
			Indexes: map[string]*memdb.IndexSchema{
				idIndex: {
					Name:    idIndex,
					Unique:  true,
					Indexer: &memdb.UintFieldIndex{Field: "RecordID"},
				},
			},
		}
	}
	db, err := memdb.NewMemDB(&memdb.DBSchema{Tables: tables})
	if err != nil {
		return nil, fmt.Errorf("store: build schema: %w", err)
	}
	return &Store{db: db, seqs: make(map[string]uint64)}, nil
}

// nextID hands out the next identifier for a table. Sequences never reuse a
// value, even after deletes.
func (s *Store) nextID(table string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seqs[table]++
	return s.seqs[table]
}

// bumpSeq moves a table's sequence past an externally supplied identifier so
// later inserts cannot collide with it.
func (s *Store) bumpSeq(table string, id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id > s.seqs[table] {
		s.seqs[table] = id
	}
}

// Create assigns a fresh identifier to the entity and inserts it.
func (s *Store) Create(e model.Entity) error {
	e.SetID(s.nextID(e.Table()))
	txn := s.db.Txn(true)
	defer txn.Abort()
	if err := txn.Insert(e.Table(), e); err != nil {
		return fmt.Errorf("store: insert %s: %w", e.Table(), err)
	}
	txn.Commit()
	return nil
}

// Update writes the entity under its existing identifier. A record that does
// not exist yet is created as given; updates are upserts.
func (s *Store) Update(e model.Entity) error {
	s.bumpSeq(e.Table(), e.ID())
	txn := s.db.Txn(true)
	defer txn.Abort()
	if err := txn.Insert(e.Table(), e); err != nil {
		return fmt.Errorf("store: upsert %s: %w", e.Table(), err)
	}
	txn.Commit()
	return nil
}

// Delete removes one record. Deleting an identifier that was never stored is
// not an error.
func (s *Store) Delete(table string, id uint64) error {
	txn := s.db.Txn(true)
	defer txn.Abort()
	raw, err := txn.First(table, idIndex, id)
	if err != nil {
		return fmt.Errorf("store: lookup %s/%d: %w", table, id, err)
	}
	if raw == nil {
		return nil
	}
	if err := txn.Delete(table, raw); err != nil {
		return fmt.Errorf("store: delete %s/%d: %w", table, id, err)
	}
	txn.Commit()
	return nil
}

// Find fetches one record by identifier.
func (s *Store) Find(table string, id uint64) (model.Entity, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()
	raw, err := txn.First(table, idIndex, id)
	if err != nil {
		return nil, fmt.Errorf("store: lookup %s/%d: %w", table, id, err)
	}
	if raw == nil {
		return nil, ErrNotFound
	}
	return raw.(model.Entity), nil
}

// List returns every record of a table in ascending identifier order.
func (s *Store) List(table string) ([]model.Entity, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()
	it, err := txn.Get(table, idIndex)
	if err != nil {
		return nil, fmt.Errorf("store: scan %s: %w", table, err)
	}
	var out []model.Entity
	for raw := it.Next(); raw != nil; raw = it.Next() {
		out = append(out, raw.(model.Entity))
	}
	return out, nil
}

// Rentals returns every rental in ascending identifier order.
func (s *Store) Rentals() ([]*model.Rental, error) {
	ents, err := s.List(model.TableRentals)
	if err != nil {
		return nil, err
	}
	out := make([]*model.Rental, 0, len(ents))
	for _, e := range ents {
		out = append(out, e.(*model.Rental))
	}
	return out, nil
}

// RentalsBetween returns rentals wholly contained in the inclusive range:
// started on or after start and ended on or before end.
func (s *Store) RentalsBetween(start, end time.Time) ([]*model.Rental, error) {
	all, err := s.Rentals()
	if err != nil {
		return nil, err
	}
	var out []*model.Rental
	for _, r := range all {
		if r.StartDate.Before(start) || r.EndDate.After(end) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}
