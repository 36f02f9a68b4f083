package service

import (
	"context"
	"database/sql"
	"errors"
	"path"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/coop-office-api/internal/models"
	appErrors "github.com/noah-isme/coop-office-api/pkg/errors"
	"github.com/noah-isme/coop-office-api/pkg/storage"
)

type galleryRepository interface {
	Create(ctx context.Context, image *models.GalleryImage) error
	List(ctx context.Context, page, limit int) ([]models.GalleryImage, int, error)
	GetByID(ctx context.Context, id string) (*models.GalleryImage, error)
	Delete(ctx context.Context, id string) error
}

// GalleryService manages the public image gallery.
type GalleryService struct {
	repo      galleryRepository
	blobs     storage.BlobStore
	metrics   *MetricsService
	logger    *zap.Logger
	maxUpload int64
}

// NewGalleryService constructs the gallery service.
func NewGalleryService(repo galleryRepository, blobs storage.BlobStore, metrics *MetricsService, logger *zap.Logger, maxUpload int64) *GalleryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GalleryService{repo: repo, blobs: blobs, metrics: metrics, logger: logger, maxUpload: maxUpload}
}

// Create stores an uploaded image and its gallery record. Both the location
// and the provider identifier are kept so deletion can reach the blob.
func (s *GalleryService) Create(ctx context.Context, description, filename string, file []byte) (*models.GalleryImage, error) {
	if len(file) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "image file is required")
	}
	if err := checkUploadSize(file, s.maxUpload); err != nil {
		return nil, err
	}

	ext := strings.ToLower(path.Ext(filename))
	if ext == "" {
		ext = ".jpg"
	}

	object, err := s.blobs.Upload("gallery", file, ext)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUploadFailed.Code, appErrors.ErrUploadFailed.Status, appErrors.ErrUploadFailed.Message)
	}
	if s.metrics != nil {
		s.metrics.RecordUpload("gallery")
	}

	image := &models.GalleryImage{
		Description: description,
		ImageURL:    object.Location,
		PublicID:    object.PublicID,
	}
	if err := s.repo.Create(ctx, image); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store gallery image")
	}
	return image, nil
}

// List returns a page of gallery images. An empty page is reported as not
// found rather than as an empty list.
func (s *GalleryService) List(ctx context.Context, page, limit int) ([]models.GalleryImage, models.Page, error) {
	images, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return nil, models.Page{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list gallery images")
	}
	if len(images) == 0 {
		return nil, models.Page{}, appErrors.Clone(appErrors.ErrNotFound, "No gallery images found")
	}

	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	return images, models.NewPage(len(images), total, page, limit), nil
}

// Delete removes a gallery image. The blob must be destroyed first; when the
// store refuses, the record is left untouched.
func (s *GalleryService) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return appErrors.Clone(appErrors.ErrValidation, "invalid image id")
	}

	image, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "gallery image not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load gallery image")
	}

	if err := s.blobs.Destroy(image.PublicID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete image from storage")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "gallery image not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete gallery image")
	}
	return nil
}
