package resumes

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of ParseRepo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Record // ownerKey -> records
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string][]Record),
	}
}

// Create appends a parse record for an owner.
func (r *MemoryRepo) Create(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[rec.OwnerKey] = append(r.data[rec.OwnerKey], rec)
	return nil
}

// ListByOwner returns parse records for an owner, newest first, honoring limit/offset.
func (r *MemoryRepo) ListByOwner(ctx context.Context, ownerKey string, limit, offset int) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	ownerRecs := r.data[ownerKey]
	r.mu.RUnlock()

	if len(ownerRecs) == 0 || offset >= len(ownerRecs) {
		return []Record{}, nil
	}

	recs := make([]Record, len(ownerRecs))
	copy(recs, ownerRecs)
	sort.Slice(recs, func(i, j int) bool {
		return recs[i].CreatedAt.After(recs[j].CreatedAt)
	})

	end := len(recs)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	return recs[offset:end], nil
}

var _ ParseRepo = (*MemoryRepo)(nil)
