package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/coop-office-api/internal/dto"
	"github.com/noah-isme/coop-office-api/internal/models"
	appErrors "github.com/noah-isme/coop-office-api/pkg/errors"
	"github.com/noah-isme/coop-office-api/pkg/storage"
)

const tenderCachePrefix = "tenders"

type tenderRepository interface {
	Create(ctx context.Context, tender *models.Tender) error
	List(ctx context.Context, filter models.TenderFilter) ([]models.Tender, int, error)
	ListAll(ctx context.Context) ([]models.Tender, error)
	GetByID(ctx context.Context, id string) (*models.Tender, error)
	Delete(ctx context.Context, id string) error
}

type tenderSubmissionStore interface {
	ListByTender(ctx context.Context, tenderID string) ([]models.Credential, error)
}

// TenderService manages published tenders and their attached PDFs.
type TenderService struct {
	repo        tenderRepository
	submissions tenderSubmissionStore
	blobs       storage.BlobStore
	signer      *storage.SignedURLSigner
	cache       *CacheService
	metrics     *MetricsService
	validator   *validator.Validate
	logger      *zap.Logger
	maxUpload   int64
	now         func() time.Time
}

// NewTenderService constructs the tender service.
func NewTenderService(repo tenderRepository, submissions tenderSubmissionStore, blobs storage.BlobStore, signer *storage.SignedURLSigner, cache *CacheService, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger, maxUpload int64) *TenderService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TenderService{repo: repo, submissions: submissions, blobs: blobs, signer: signer, cache: cache, metrics: metrics, validator: validate, logger: logger, maxUpload: maxUpload, now: time.Now}
}

// Create publishes a new tender. The PDF is mandatory, size-checked and
// content-sniffed before upload. An omitted closing date defaults to ten
// days after creation; a supplied one must not lie in the past.
func (s *TenderService) Create(ctx context.Context, req dto.CreateTenderRequest, file []byte) (*models.Tender, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "title is required")
	}
	if len(file) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "tender PDF is required")
	}
	if err := checkUploadSize(file, s.maxUpload); err != nil {
		return nil, err
	}
	if err := sniffPDF(file); err != nil {
		return nil, err
	}

	createdAt := s.now().UTC()
	closingDate, err := s.resolveClosingDate(req.ClosingDate, createdAt)
	if err != nil {
		return nil, err
	}

	object, err := s.blobs.Upload("tenders", file, ".pdf")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUploadFailed.Code, appErrors.ErrUploadFailed.Status, appErrors.ErrUploadFailed.Message)
	}
	if s.metrics != nil {
		s.metrics.RecordUpload("tenders")
	}

	tender := &models.Tender{
		Title:       req.Title,
		Description: req.Description,
		PDFURL:      object.Location,
		PDFPublicID: object.PublicID,
		CreatedAt:   createdAt,
		ClosingDate: closingDate,
	}
	if err := s.repo.Create(ctx, tender); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create tender")
	}

	_ = s.cache.Invalidate(ctx, tenderCachePrefix+":*")
	return tender, nil
}

// List returns a page of tenders, newest first, optionally only open ones.
func (s *TenderService) List(ctx context.Context, filter models.TenderFilter) ([]models.Tender, models.Page, error) {
	type cached struct {
		Tenders []models.Tender `json:"tenders"`
		Page    models.Page     `json:"page"`
	}

	key := fmt.Sprintf("%s:list:%t:%d:%d", tenderCachePrefix, filter.ActiveOnly, filter.Page, filter.Limit)
	var entry cached
	if hit, _ := s.cache.Get(ctx, key, &entry); hit {
		return entry.Tenders, entry.Page, nil
	}

	tenders, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, models.Page{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list tenders")
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	meta := models.NewPage(len(tenders), total, page, limit)

	_ = s.cache.Set(ctx, key, cached{Tenders: tenders, Page: meta}, 0)
	return tenders, meta, nil
}

// Get returns a single tender.
func (s *TenderService) Get(ctx context.Context, id string) (*models.Tender, error) {
	return s.getByID(ctx, id)
}

// Download returns a signed URL for the tender's PDF plus its metadata.
func (s *TenderService) Download(ctx context.Context, id string) (*dto.TenderDownloadResponse, error) {
	tender, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tender.PDFPublicID == "" {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "tender has no file attached")
	}

	url, _, err := s.signer.SignedURL("", tender.PDFPublicID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign download url")
	}

	return &dto.TenderDownloadResponse{
		PDFURL:      url,
		Title:       tender.Title,
		Description: tender.Description,
		CreatedAt:   tender.CreatedAt,
		ClosingDate: tender.ClosingDate,
	}, nil
}

// Delete removes a tender together with its submissions. Submission rows go
// with the tender via the database cascade; their blobs are destroyed here,
// best-effort like the tender's own PDF.
func (s *TenderService) Delete(ctx context.Context, id string) error {
	tender, err := s.getByID(ctx, id)
	if err != nil {
		return err
	}

	if tender.PDFPublicID != "" {
		if err := s.blobs.Destroy(tender.PDFPublicID); err != nil {
			s.logger.Warn("failed to destroy tender blob", zap.String("public_id", tender.PDFPublicID), zap.Error(err))
		}
	}

	credentials, err := s.submissions.ListByTender(ctx, id)
	if err != nil {
		s.logger.Warn("failed to list submissions before tender delete", zap.String("tender_id", id), zap.Error(err))
	}
	for _, credential := range credentials {
		if credential.PDFPublicID == "" {
			continue
		}
		if err := s.blobs.Destroy(credential.PDFPublicID); err != nil {
			s.logger.Warn("failed to destroy credential blob", zap.String("public_id", credential.PDFPublicID), zap.Error(err))
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "tender not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete tender")
	}

	_ = s.cache.Invalidate(ctx, tenderCachePrefix+":*")
	return nil
}

func (s *TenderService) getByID(ctx context.Context, id string) (*models.Tender, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid tender id")
	}
	tender, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "tender not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load tender")
	}
	return tender, nil
}

func (s *TenderService) resolveClosingDate(raw string, createdAt time.Time) (time.Time, error) {
	if raw == "" {
		return createdAt.Add(models.DefaultClosingWindow), nil
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		parsed, err = time.Parse("2006-01-02", raw)
	}
	if err != nil {
		return time.Time{}, appErrors.Clone(appErrors.ErrValidation, "closing date must be RFC3339 or YYYY-MM-DD")
	}

	startOfToday := time.Date(createdAt.Year(), createdAt.Month(), createdAt.Day(), 0, 0, 0, 0, time.UTC)
	if parsed.Before(startOfToday) {
		return time.Time{}, appErrors.Clone(appErrors.ErrValidation, "closing date cannot be in the past")
	}
	return parsed.UTC(), nil
}
