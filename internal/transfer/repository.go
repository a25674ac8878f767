// Package transfer implements the transfer lifecycle coordinator: the
// three-phase workflow that moves an image upload from intent to confirmed,
// and the cache-aside lookup serving public image URLs.
package transfer

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Image is a confirmed upload. Rows are created exactly once per id and never
// mutated by this service; D and P are reserved for external sync tooling and
// written empty.
type Image struct {
	ID         string
	Key        string
	SizeMB     float64
	UploadedAt int64
	D          string
	P          string
}

// ErrImageNotFound is returned when no image exists for an id.
var ErrImageNotFound = errors.New("image not found")

// ErrImageExists is returned by CreateIfAbsent when a row with the same id
// already exists.
var ErrImageExists = errors.New("image already exists")

// ImageRepository persists confirmed image records.
type ImageRepository interface {
	CreateIfAbsent(ctx context.Context, img *Image) error
	Get(ctx context.Context, id string) (*Image, error)
}

// Repository handles all image database operations.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new Repository with the given connection pool.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// CreateIfAbsent inserts the image record, reporting ErrImageExists instead of
// overwriting when the id is already taken.
func (r *Repository) CreateIfAbsent(ctx context.Context, img *Image) error {
	tag, err := r.db.Exec(ctx,
		`INSERT INTO images (id, file_key, size_mb, uploaded_at, d, p)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (id) DO NOTHING`,
		img.ID, img.Key, img.SizeMB, img.UploadedAt, img.D, img.P,
	)
	if err != nil {
		return fmt.Errorf("insert image: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrImageExists
	}
	return nil
}

// Get fetches an image record by id.
func (r *Repository) Get(ctx context.Context, id string) (*Image, error) {
	img := &Image{}
	err := r.db.QueryRow(ctx,
		`SELECT id, file_key, size_mb, uploaded_at, d, p
		 FROM images WHERE id = $1`,
		id,
	).Scan(&img.ID, &img.Key, &img.SizeMB, &img.UploadedAt, &img.D, &img.P)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrImageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get image by id: %w", err)
	}
	return img, nil
}
