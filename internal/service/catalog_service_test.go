package service

import (
	"context"
	"mime/multipart"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"safarihub/internal/catalog"
	apperrors "safarihub/internal/errors"
	"safarihub/internal/model"
)

// MockGalleryRepository is a mock CatalogRepository for gallery items.
type MockGalleryRepository struct {
	mock.Mock
}

func (m *MockGalleryRepository) Create(ctx context.Context, record *model.GalleryItem) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockGalleryRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.GalleryItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GalleryItem), args.Error(1)
}

func (m *MockGalleryRepository) Save(ctx context.Context, record *model.GalleryItem) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockGalleryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockGalleryRepository) List(ctx context.Context) ([]model.GalleryItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.GalleryItem), args.Error(1)
}

// MockUploader is a mock media store.
type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) Accept(file *multipart.FileHeader) (string, error) {
	args := m.Called(file)
	return args.String(0), args.Error(1)
}

func newGalleryService(repo *MockGalleryRepository, uploads *MockUploader) CatalogService[model.GalleryItem, *model.GalleryItem] {
	return NewCatalogService[model.GalleryItem, *model.GalleryItem](catalog.Gallery, repo, uploads, nil)
}

func TestCatalogService_Create(t *testing.T) {
	repo := new(MockGalleryRepository)
	uploads := new(MockUploader)
	svc := newGalleryService(repo, uploads)

	file := &multipart.FileHeader{Filename: "sunrise.jpg"}
	uploads.On("Accept", file).Return("/uploads/generated.jpg", nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.GalleryItem")).Return(nil)

	record, err := svc.Create(context.Background(), CatalogInput{
		Fields: map[string]string{
			"title":       "  Sunrise  ",
			"type":        "Safari",
			"description": "Morning",
		},
		File: file,
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, record.ID, "a fresh id is assigned at creation")
	assert.Equal(t, "Sunrise", record.Title, "string fields are trimmed")
	assert.Equal(t, "Safari", record.Type)
	assert.Equal(t, "/uploads/generated.jpg", record.Image)

	repo.AssertExpectations(t)
	uploads.AssertExpectations(t)
}

func TestCatalogService_Create_MissingUpload(t *testing.T) {
	repo := new(MockGalleryRepository)
	uploads := new(MockUploader)
	svc := newGalleryService(repo, uploads)

	_, err := svc.Create(context.Background(), CatalogInput{
		Fields: map[string]string{"title": "Sunrise", "type": "Safari", "description": "Morning"},
	})

	require.Error(t, err)
	ve, ok := err.(*apperrors.ValidationError)
	require.True(t, ok)
	assert.Equal(t, "image", ve.Field)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// The upload is accepted before field validation; a validation failure
// afterwards leaves the accepted file in place and persists nothing.
func TestCatalogService_Create_FileAcceptedBeforeValidation(t *testing.T) {
	repo := new(MockGalleryRepository)
	uploads := new(MockUploader)
	svc := newGalleryService(repo, uploads)

	file := &multipart.FileHeader{Filename: "sunrise.jpg"}
	uploads.On("Accept", file).Return("/uploads/orphan.jpg", nil)

	_, err := svc.Create(context.Background(), CatalogInput{
		Fields: map[string]string{"title": "   ", "type": "Safari", "description": "Morning"},
		File:   file,
	})

	require.Error(t, err)
	ve, ok := err.(*apperrors.ValidationError)
	require.True(t, ok)
	assert.Equal(t, "title", ve.Field)

	uploads.AssertExpectations(t)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCatalogService_Update_PartialMerge(t *testing.T) {
	repo := new(MockGalleryRepository)
	uploads := new(MockUploader)
	svc := newGalleryService(repo, uploads)

	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(&model.GalleryItem{
		ID:          id,
		Title:       "Sunrise",
		Type:        "Safari",
		Description: "Morning",
		Image:       "/uploads/original.jpg",
	}, nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*model.GalleryItem")).Return(nil)

	record, err := svc.Update(context.Background(), id, CatalogInput{
		Fields: map[string]string{"title": "Sunset"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Sunset", record.Title)
	assert.Equal(t, "Safari", record.Type, "absent fields stay untouched")
	assert.Equal(t, "Morning", record.Description)
	assert.Equal(t, "/uploads/original.jpg", record.Image, "no upload means the reference is kept")

	repo.AssertExpectations(t)
}

func TestCatalogService_Update_ReplacesMediaRef(t *testing.T) {
	repo := new(MockGalleryRepository)
	uploads := new(MockUploader)
	svc := newGalleryService(repo, uploads)

	id := uuid.New()
	file := &multipart.FileHeader{Filename: "new.jpg"}
	repo.On("FindByID", mock.Anything, id).Return(&model.GalleryItem{
		ID:    id,
		Title: "Sunrise", Type: "Safari", Description: "Morning",
		Image: "/uploads/original.jpg",
	}, nil)
	uploads.On("Accept", file).Return("/uploads/replacement.jpg", nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*model.GalleryItem")).Return(nil)

	record, err := svc.Update(context.Background(), id, CatalogInput{File: file})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/replacement.jpg", record.Image)

	repo.AssertExpectations(t)
	uploads.AssertExpectations(t)
}

func TestCatalogService_Update_NotFound(t *testing.T) {
	repo := new(MockGalleryRepository)
	svc := newGalleryService(repo, new(MockUploader))

	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(nil, apperrors.ErrNotFound)

	_, err := svc.Update(context.Background(), id, CatalogInput{
		Fields: map[string]string{"title": "Sunset"},
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCatalogService_Delete(t *testing.T) {
	repo := new(MockGalleryRepository)
	svc := newGalleryService(repo, new(MockUploader))

	id := uuid.New()
	repo.On("Delete", mock.Anything, id).Return(nil).Once()
	require.NoError(t, svc.Delete(context.Background(), id))

	// A second delete of the same id reports NotFound.
	repo.On("Delete", mock.Anything, id).Return(apperrors.ErrNotFound).Once()
	assert.ErrorIs(t, svc.Delete(context.Background(), id), apperrors.ErrNotFound)

	repo.AssertExpectations(t)
}

func TestCatalogService_List(t *testing.T) {
	repo := new(MockGalleryRepository)
	svc := newGalleryService(repo, new(MockUploader))

	items := []model.GalleryItem{{Title: "Newest"}, {Title: "Oldest"}}
	repo.On("List", mock.Anything).Return(items, nil)

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, items, got)
}
