package storage

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/s-age/pipe-sub004/internal/adapters/filelock"
	"github.com/s-age/pipe-sub004/internal/domain"
	"github.com/s-age/pipe-sub004/internal/ports"
)

// IndexRepository keeps index.json, the list of existing sessions
type IndexRepository struct {
	locker *filelock.Locker
	path   string
}

// Verify interface compliance at compile time
var _ ports.SessionIndex = (*IndexRepository)(nil)

// NewIndexRepository creates an IndexRepository backed by path
func NewIndexRepository(locker *filelock.Locker, path string) *IndexRepository {
	return &IndexRepository{locker: locker, path: path}
}

func (r *IndexRepository) update(ctx context.Context, fn func(idx *indexFile) error) error {
	return filelock.Update(ctx, r.locker, filelock.LockPath(r.path), r.path, newIndexFile(), func(idx *indexFile, _ bool) error {
		if idx.Sessions == nil {
			idx.Sessions = make(map[string]indexRecord)
		}
		idx.Version = schemaVersion
		return fn(idx)
	})
}

func (r *IndexRepository) read(ctx context.Context) (indexFile, error) {
	idx, err := filelock.Read(ctx, r.locker, filelock.LockPath(r.path), r.path, newIndexFile())
	if err != nil {
		return indexFile{}, err
	}
	if idx.Sessions == nil {
		idx.Sessions = make(map[string]indexRecord)
	}
	return idx, nil
}

// Add registers entry, failing when the id is already present
func (r *IndexRepository) Add(ctx context.Context, entry domain.IndexEntry) error {
	return r.update(ctx, func(idx *indexFile) error {
		if _, exists := idx.Sessions[entry.SessionID]; exists {
			return fmt.Errorf("%s: %w", entry.SessionID, domain.ErrSessionExists)
		}
		idx.Sessions[entry.SessionID] = indexRecord{
			CreatedAt:   entry.CreatedAt,
			LastUpdated: entry.LastUpdated,
			Purpose:     entry.Purpose,
		}
		return nil
	})
}

// Delete removes id and every descendant id, returning the removed ids
// sorted. Nothing is written when no id matched.
func (r *IndexRepository) Delete(ctx context.Context, id string) ([]string, error) {
	var removed []string
	err := r.update(ctx, func(idx *indexFile) error {
		for key := range idx.Sessions {
			if domain.IsSelfOrDescendant(key, id) {
				removed = append(removed, key)
			}
		}
		if len(removed) == 0 {
			return filelock.ErrSkipWrite
		}
		for _, key := range removed {
			delete(idx.Sessions, key)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(removed)
	return removed, nil
}

// Find returns the entry for id
func (r *IndexRepository) Find(ctx context.Context, id string) (*domain.IndexEntry, error) {
	idx, err := r.read(ctx)
	if err != nil {
		return nil, err
	}
	rec, ok := idx.Sessions[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, domain.ErrSessionNotFound)
	}
	entry := entryFromRecord(id, rec)
	return &entry, nil
}

// List returns every entry, most recently updated first
func (r *IndexRepository) List(ctx context.Context) ([]domain.IndexEntry, error) {
	idx, err := r.read(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]domain.IndexEntry, 0, len(idx.Sessions))
	for id, rec := range idx.Sessions {
		entries = append(entries, entryFromRecord(id, rec))
	}
	domain.SortEntriesByLastUpdated(entries)
	return entries, nil
}

// Touch refreshes purpose and last_updated of an existing entry
func (r *IndexRepository) Touch(ctx context.Context, id, purpose string, lastUpdated time.Time) error {
	return r.update(ctx, func(idx *indexFile) error {
		rec, ok := idx.Sessions[id]
		if !ok {
			return fmt.Errorf("%s: %w", id, domain.ErrSessionNotFound)
		}
		rec.Purpose = purpose
		rec.LastUpdated = lastUpdated
		idx.Sessions[id] = rec
		return nil
	})
}
