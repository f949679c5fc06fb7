package store

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/hmdvk2-glitch/psi-federal-sub000/internal/infrastructure/kvstore"
)

// DefaultKey is the storage slot holding the serialized database.
const DefaultKey = "bank_portal_db"

// Store owns the serialized database blob under one storage key. Every
// operation re-reads the blob from the backend and writes it back whole:
// last-writer-wins, no merge. A single mutex restores the one-writer model the
// portal assumes; Mutate is the transaction boundary for multi-record
// invariants.
type Store struct {
	mu      sync.Mutex
	backend kvstore.Backend
	key     string
	logger  *zap.Logger
}

// New builds a store over the given backend. An empty key selects DefaultKey.
func New(backend kvstore.Backend, key string, logger *zap.Logger) *Store {
	if key == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		backend: backend,
		key:     key,
		logger:  logger,
	}
}

// Load returns the current database. A missing or unreadable blob is replaced
// by a fresh fully-shaped database, persisted, and returned; corruption is
// logged, never surfaced as a failure.
func (s *Store) Load() (*Database, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

// Save serializes and persists the full database, replacing the prior value.
func (s *Store) Save(db *Database) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(db)
}

// View runs fn against the current database without persisting afterwards.
func (s *Store) View(fn func(*Database) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.loadLocked()
	if err != nil {
		return err
	}
	return fn(db)
}

// Mutate runs fn against the current database and persists the result if fn
// succeeds. The read-modify-write cycle holds the store lock throughout, so
// fn observes and produces a consistent value even across collections.
func (s *Store) Mutate(fn func(*Database) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.loadLocked()
	if err != nil {
		return err
	}
	if err := fn(db); err != nil {
		return err
	}
	return s.saveLocked(db)
}

// Size reports the serialized blob length in bytes, zero when nothing has
// been persisted yet.
func (s *Store) Size() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.backend.GetItem(s.key)
	if err != nil || !ok {
		return 0, err
	}
	return len(raw), nil
}

func (s *Store) loadLocked() (*Database, error) {
	raw, ok, err := s.backend.GetItem(s.key)
	if err != nil {
		return nil, err
	}
	if !ok {
		db := NewDatabase()
		return db, s.saveLocked(db)
	}

	var db Database
	if err := json.Unmarshal([]byte(raw), &db); err != nil {
		s.logger.Warn("stored database is unreadable, reinitializing",
			zap.String("key", s.key), zap.Error(err))
		fresh := NewDatabase()
		return fresh, s.saveLocked(fresh)
	}
	db.normalize()
	return &db, nil
}

func (s *Store) saveLocked(db *Database) error {
	raw, err := json.Marshal(db)
	if err != nil {
		return err
	}
	return s.backend.SetItem(s.key, string(raw))
}
