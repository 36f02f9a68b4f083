package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/coop-office-api/internal/dto"
	"github.com/noah-isme/coop-office-api/internal/models"
	appErrors "github.com/noah-isme/coop-office-api/pkg/errors"
	"github.com/noah-isme/coop-office-api/pkg/storage"
)

const documentCachePrefix = "documents"

type documentRepository interface {
	Create(ctx context.Context, doc *models.Document) error
	List(ctx context.Context, filter models.DocumentFilter) ([]models.Document, int, error)
	GetByID(ctx context.Context, id string) (*models.Document, error)
	Delete(ctx context.Context, id string) error
}

// DocumentService manages published notices, forms and announcements.
type DocumentService struct {
	repo      documentRepository
	blobs     storage.BlobStore
	signer    *storage.SignedURLSigner
	cache     *CacheService
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	maxUpload int64
}

// NewDocumentService constructs the document service.
func NewDocumentService(repo documentRepository, blobs storage.BlobStore, signer *storage.SignedURLSigner, cache *CacheService, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger, maxUpload int64) *DocumentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DocumentService{repo: repo, blobs: blobs, signer: signer, cache: cache, metrics: metrics, validator: validate, logger: logger, maxUpload: maxUpload}
}

// Create publishes a new document. The PDF is optional; when present it is
// size-checked and content-sniffed before it touches the blob store.
func (s *DocumentService) Create(ctx context.Context, req dto.CreateDocumentRequest, file []byte) (*models.Document, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "title, type and date are required")
	}
	docType := models.DocumentType(req.Type)
	if !docType.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "type must be Form or Announcement")
	}

	doc := &models.Document{
		Title:       req.Title,
		Type:        docType,
		Date:        req.Date,
		Description: req.Description,
	}

	if len(file) > 0 {
		if err := checkUploadSize(file, s.maxUpload); err != nil {
			return nil, err
		}
		if err := sniffPDF(file); err != nil {
			return nil, err
		}
		object, err := s.blobs.Upload("documents", file, ".pdf")
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrUploadFailed.Code, appErrors.ErrUploadFailed.Status, appErrors.ErrUploadFailed.Message)
		}
		doc.FileURL = object.Location
		doc.FilePublicID = object.PublicID
		if s.metrics != nil {
			s.metrics.RecordUpload("documents")
		}
	}

	if err := s.repo.Create(ctx, doc); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create document")
	}

	_ = s.cache.Invalidate(ctx, documentCachePrefix+":*")
	return doc, nil
}

// List returns a page of documents. Public listings are served from cache
// when possible.
func (s *DocumentService) List(ctx context.Context, filter models.DocumentFilter) ([]models.Document, models.Page, error) {
	type cached struct {
		Documents []models.Document `json:"documents"`
		Page      models.Page       `json:"page"`
	}

	key := listCacheKey(documentCachePrefix, filter)
	var entry cached
	if hit, _ := s.cache.Get(ctx, key, &entry); hit {
		return entry.Documents, entry.Page, nil
	}

	docs, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, models.Page{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list documents")
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	meta := models.NewPage(len(docs), total, page, limit)

	_ = s.cache.Set(ctx, key, cached{Documents: docs, Page: meta}, 0)
	return docs, meta, nil
}

// Download returns a signed URL for a document's PDF plus its metadata.
func (s *DocumentService) Download(ctx context.Context, id string) (*dto.DocumentDownloadResponse, error) {
	doc, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc.FilePublicID == "" {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "document has no file attached")
	}

	url, _, err := s.signer.SignedURL("", doc.FilePublicID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign download url")
	}

	return &dto.DocumentDownloadResponse{
		PDFURL:      url,
		Title:       doc.Title,
		Type:        string(doc.Type),
		Date:        doc.Date,
		Description: doc.Description,
		CreatedAt:   doc.CreatedAt,
	}, nil
}

// Delete removes a document and best-effort destroys its blob.
func (s *DocumentService) Delete(ctx context.Context, id string) error {
	doc, err := s.getByID(ctx, id)
	if err != nil {
		return err
	}

	if doc.FilePublicID != "" {
		if err := s.blobs.Destroy(doc.FilePublicID); err != nil {
			s.logger.Warn("failed to destroy document blob", zap.String("public_id", doc.FilePublicID), zap.Error(err))
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "document not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete document")
	}

	_ = s.cache.Invalidate(ctx, documentCachePrefix+":*")
	return nil
}

func (s *DocumentService) getByID(ctx context.Context, id string) (*models.Document, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid document id")
	}
	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "document not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load document")
	}
	return doc, nil
}

func listCacheKey(prefix string, filter models.DocumentFilter) string {
	docType := "all"
	if filter.Type != nil {
		docType = string(*filter.Type)
	}
	return fmt.Sprintf("%s:list:%s:%d:%d:%t", prefix, docType, filter.Page, filter.Limit, filter.SortByDate)
}
