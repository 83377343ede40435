package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "safarihub/internal/errors"
)

// CatalogRepository defines persistence operations shared by every catalog
// kind. One generic implementation replaces four bespoke repositories.
type CatalogRepository[T any] interface {
	Create(ctx context.Context, record *T) error
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	Save(ctx context.Context, record *T) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]T, error)
}

type catalogRepository[T any] struct {
	db *gorm.DB
	// newestFirst orders List by creation time descending (gallery only).
	newestFirst bool
}

// NewCatalogRepository builds a GORM-backed repository for one record type.
func NewCatalogRepository[T any](db *gorm.DB, newestFirst bool) CatalogRepository[T] {
	return &catalogRepository[T]{db: db, newestFirst: newestFirst}
}

func (r *catalogRepository[T]) Create(ctx context.Context, record *T) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *catalogRepository[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var record T
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// Save writes the full record back. Concurrent updates to the same id are
// last-write-wins; there is no version column.
func (r *catalogRepository[T]) Save(ctx context.Context, record *T) error {
	return r.db.WithContext(ctx).Save(record).Error
}

// Delete hard-deletes the record. The media file it referenced stays on disk.
func (r *catalogRepository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *catalogRepository[T]) List(ctx context.Context) ([]T, error) {
	q := r.db.WithContext(ctx)
	if r.newestFirst {
		q = q.Order("created_at DESC")
	}
	var records []T
	if err := q.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
