package resumes

import (
	"context"
	"database/sql"
)

// PGRepo implements ParseRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new parse record.
func (r *PGRepo) Create(ctx context.Context, rec Record) error {
	const query = `
INSERT INTO resumes (
    id,
    owner_key,
    file_name,
    media_type,
    size_bytes,
    storage_key,
    overall_confidence,
    needs_review,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		rec.ID,
		rec.OwnerKey,
		rec.FileName,
		rec.MediaType,
		rec.SizeBytes,
		rec.StorageKey,
		rec.Overall,
		rec.NeedsReview,
		rec.CreatedAt,
	)
	return err
}

// ListByOwner lists parse records ordered newest-first.
func (r *PGRepo) ListByOwner(ctx context.Context, ownerKey string, limit, offset int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, owner_key, file_name, media_type, size_bytes, storage_key, overall_confidence, needs_review, created_at
FROM resumes
WHERE owner_key = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, ownerKey, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(
			&rec.ID,
			&rec.OwnerKey,
			&rec.FileName,
			&rec.MediaType,
			&rec.SizeBytes,
			&rec.StorageKey,
			&rec.Overall,
			&rec.NeedsReview,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

var _ ParseRepo = (*PGRepo)(nil)
