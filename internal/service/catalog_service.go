package service

import (
	"context"
	"encoding/json"
	"mime/multipart"

	"github.com/google/uuid"

	"safarihub/internal/cache"
	"safarihub/internal/catalog"
	apperrors "safarihub/internal/errors"
	"safarihub/internal/repository"
)

// Uploader accepts one uploaded file and returns its stored reference.
type Uploader interface {
	Accept(file *multipart.FileHeader) (string, error)
}

// CatalogInput carries the raw string fields of a create or update request
// plus an optional upload. Absent fields stay out of the map, which is what
// makes partial updates a true merge.
type CatalogInput struct {
	Fields map[string]string
	File   *multipart.FileHeader
}

// CatalogService exposes the CRUD operations for one catalog kind. The same
// generic implementation, parameterized by record type and driven by the
// kind's schema, serves tours, rentals, packages and the gallery.
type CatalogService[T any, P catalog.ResourcePtr[T]] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id uuid.UUID) (*T, error)
	Create(ctx context.Context, in CatalogInput) (*T, error)
	Update(ctx context.Context, id uuid.UUID, in CatalogInput) (*T, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type catalogService[T any, P catalog.ResourcePtr[T]] struct {
	schema catalog.Schema
	repo   repository.CatalogRepository[T]
	media  Uploader
	cache  *cache.Client
}

// NewCatalogService builds the service for one kind. media may be nil for
// kinds that never take an upload.
func NewCatalogService[T any, P catalog.ResourcePtr[T]](
	schema catalog.Schema,
	repo repository.CatalogRepository[T],
	media Uploader,
	cacheClient *cache.Client,
) CatalogService[T, P] {
	return &catalogService[T, P]{
		schema: schema,
		repo:   repo,
		media:  media,
		cache:  cacheClient,
	}
}

// List returns all records, newest first for kinds declaring that ordering.
// Results are cached; every mutation invalidates the cache.
func (s *catalogService[T, P]) List(ctx context.Context) ([]T, error) {
	if data := s.cache.GetList(ctx, s.schema.Kind); data != nil {
		var cached []T
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(records); err == nil {
		s.cache.SetList(ctx, s.schema.Kind, payload)
	}
	return records, nil
}

func (s *catalogService[T, P]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	return s.repo.FindByID(ctx, id)
}

// Create validates input against the kind's schema and persists a fresh
// record. When the kind takes an upload, the file is accepted before
// validation; a validation failure after acceptance leaves the file on disk
// with nothing referencing it.
func (s *catalogService[T, P]) Create(ctx context.Context, in CatalogInput) (*T, error) {
	var mediaRef string
	if s.schema.Media == catalog.MediaUpload {
		if in.File == nil {
			return nil, apperrors.NewValidationError(s.schema.MediaField, "is required")
		}
		ref, err := s.media.Accept(in.File)
		if err != nil {
			return nil, err
		}
		mediaRef = ref
	}

	values, err := s.schema.Validate(in.Fields, false)
	if err != nil {
		return nil, err
	}

	var record T
	p := P(&record)
	p.SetID(uuid.New())
	p.Apply(values)
	if mediaRef != "" {
		p.SetMediaRef(mediaRef)
	}

	if err := s.repo.Create(ctx, &record); err != nil {
		return nil, err
	}
	s.cache.InvalidateList(ctx, s.schema.Kind)
	return &record, nil
}

// Update merges only the supplied fields into the stored record and replaces
// the media reference when a new file arrives. The previous file is not
// deleted.
func (s *catalogService[T, P]) Update(ctx context.Context, id uuid.UUID, in CatalogInput) (*T, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var mediaRef string
	if in.File != nil && s.schema.Media == catalog.MediaUpload {
		ref, err := s.media.Accept(in.File)
		if err != nil {
			return nil, err
		}
		mediaRef = ref
	}

	values, err := s.schema.Validate(in.Fields, true)
	if err != nil {
		return nil, err
	}

	p := P(record)
	p.Apply(values)
	if mediaRef != "" {
		p.SetMediaRef(mediaRef)
	}

	if err := s.repo.Save(ctx, record); err != nil {
		return nil, err
	}
	s.cache.InvalidateList(ctx, s.schema.Kind)
	return record, nil
}

// Delete hard-deletes the record without touching its media file.
func (s *catalogService[T, P]) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.InvalidateList(ctx, s.schema.Kind)
	return nil
}
