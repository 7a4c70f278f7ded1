package resumes

import "context"

// ParseRepo defines persistence operations for parse records.
type ParseRepo interface {
	Create(ctx context.Context, rec Record) error
	ListByOwner(ctx context.Context, ownerKey string, limit, offset int) ([]Record, error)
}
