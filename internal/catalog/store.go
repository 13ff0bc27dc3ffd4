// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/cinequiz/internal/models"
)

// Key layout. Movie keys are zero-padded so that badger's lexicographic
// iteration returns them in catalog order.
const (
	movieKeyPrefix = "movie:"
	countKey       = "catalog:count"
)

// ErrNoSnapshot is returned by Store.Load when nothing has been saved.
var ErrNoSnapshot = errors.New("no catalog snapshot in store")

// Store persists a catalog snapshot in BadgerDB.
type Store struct {
	db *badger.DB
}

// OpenStore opens (or creates) a Badger database at path.
func OpenStore(path string) (*Store, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// NewStore wraps an already open database.
func NewStore(db *badger.DB) *Store {
	return &Store{db: db}
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func movieKey(i int) []byte {
	return []byte(fmt.Sprintf("%s%08d", movieKeyPrefix, i))
}

// Save replaces the stored snapshot with movies.
func (s *Store) Save(ctx context.Context, movies []models.Movie) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// The count key is written last; until then Load reports no snapshot
	// instead of a partial one.
	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(countKey))
	}); err != nil {
		return fmt.Errorf("clear count: %w", err)
	}

	stale, err := s.keysFrom(len(movies))
	if err != nil {
		return err
	}

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()

	for _, key := range stale {
		if err := wb.Delete(key); err != nil {
			return fmt.Errorf("delete %s: %w", key, err)
		}
	}
	for i := range movies {
		data, err := json.Marshal(&movies[i])
		if err != nil {
			return fmt.Errorf("marshal movie %d: %w", i, err)
		}
		if err := wb.Set(movieKey(i), data); err != nil {
			return fmt.Errorf("set movie %d: %w", i, err)
		}
	}
	if err := wb.Flush(); err != nil {
		return fmt.Errorf("flush snapshot: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(countKey), []byte(strconv.Itoa(len(movies))))
	})
}

// keysFrom returns the movie keys at or beyond index n.
func (s *Store) keysFrom(n int) ([][]byte, error) {
	var keys [][]byte
	first := movieKey(n)

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(movieKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(first); it.Valid(); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan stale keys: %w", err)
	}
	return keys, nil
}

// Load returns the stored snapshot in catalog order.
func (s *Store) Load(ctx context.Context) ([]models.Movie, error) {
	var movies []models.Movie

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(countKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNoSnapshot
		}
		if err != nil {
			return fmt.Errorf("get count: %w", err)
		}

		var count int
		if err := item.Value(func(val []byte) error {
			n, convErr := strconv.Atoi(string(val))
			count = n
			return convErr
		}); err != nil {
			return fmt.Errorf("parse count: %w", err)
		}

		movies = make([]models.Movie, 0, count)

		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(movieKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var m models.Movie
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &m)
			}); err != nil {
				return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
			}
			movies = append(movies, m)
		}

		if len(movies) != count {
			return fmt.Errorf("snapshot is inconsistent: count %d, found %d", count, len(movies))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return movies, nil
}

// BadgerSource reads the catalog from a Store.
type BadgerSource struct {
	store *Store
}

// NewBadgerSource creates a source backed by store.
func NewBadgerSource(store *Store) *BadgerSource {
	return &BadgerSource{store: store}
}

// Name implements Source.
func (s *BadgerSource) Name() string { return "badger" }

// Fetch implements Source.
func (s *BadgerSource) Fetch(ctx context.Context) ([]models.Movie, error) {
	return s.store.Load(ctx)
}
