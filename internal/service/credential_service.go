package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/coop-office-api/internal/dto"
	"github.com/noah-isme/coop-office-api/internal/models"
	appErrors "github.com/noah-isme/coop-office-api/pkg/errors"
	"github.com/noah-isme/coop-office-api/pkg/storage"
)

type credentialRepository interface {
	Create(ctx context.Context, credential *models.Credential) error
	ListByTender(ctx context.Context, tenderID string) ([]models.Credential, error)
	GetByID(ctx context.Context, id string) (*models.Credential, error)
	Delete(ctx context.Context, id string) error
}

type credentialTenderRepository interface {
	GetByID(ctx context.Context, id string) (*models.Tender, error)
}

// CredentialService manages contractor submissions against tenders. The
// tender's closing date cuts both ways: submissions are accepted only while
// it lies ahead, and the submitted list is disclosed only once it has passed.
type CredentialService struct {
	repo      credentialRepository
	tenders   credentialTenderRepository
	blobs     storage.BlobStore
	signer    *storage.SignedURLSigner
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	maxUpload int64
	now       func() time.Time
}

// NewCredentialService constructs the credential service.
func NewCredentialService(repo credentialRepository, tenders credentialTenderRepository, blobs storage.BlobStore, signer *storage.SignedURLSigner, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger, maxUpload int64) *CredentialService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CredentialService{repo: repo, tenders: tenders, blobs: blobs, signer: signer, metrics: metrics, validator: validate, logger: logger, maxUpload: maxUpload, now: time.Now}
}

// Submit records a contractor's submission for an open tender.
func (s *CredentialService) Submit(ctx context.Context, tenderID string, req dto.SubmitCredentialRequest, file []byte) (*models.Credential, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "contractor name is required")
	}

	tender, err := s.loadTender(ctx, tenderID)
	if err != nil {
		return nil, err
	}
	if !tender.Open(s.now()) {
		return nil, appErrors.Clone(appErrors.ErrSubmissionClosed, "")
	}

	if len(file) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "credential PDF is required")
	}
	if err := checkUploadSize(file, s.maxUpload); err != nil {
		return nil, err
	}
	if err := sniffPDF(file); err != nil {
		return nil, err
	}

	object, err := s.blobs.Upload("credentials", file, ".pdf")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUploadFailed.Code, appErrors.ErrUploadFailed.Status, appErrors.ErrUploadFailed.Message)
	}
	if s.metrics != nil {
		s.metrics.RecordUpload("credentials")
	}

	credential := &models.Credential{
		TenderID:       tender.ID,
		ContractorName: req.ContractorName,
		PDFURL:         object.Location,
		PDFPublicID:    object.PublicID,
		SubmittedAt:    s.now().UTC(),
	}
	if err := s.repo.Create(ctx, credential); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store submission")
	}

	s.logger.Info("credential submitted",
		zap.String("tender_id", tender.ID),
		zap.String("contractor", credential.ContractorName))
	return credential, nil
}

// ListByTender returns all submissions for a tender, latest first. The list
// stays sealed until the tender closes.
func (s *CredentialService) ListByTender(ctx context.Context, tenderID string) ([]models.Credential, error) {
	tender, err := s.loadTender(ctx, tenderID)
	if err != nil {
		return nil, err
	}
	if tender.Open(s.now()) {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "submissions are sealed until the tender closes")
	}

	credentials, err := s.repo.ListByTender(ctx, tenderID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list submissions")
	}
	return credentials, nil
}

// Download returns a signed URL for a submission's PDF plus its metadata.
func (s *CredentialService) Download(ctx context.Context, id string) (*dto.CredentialDownloadResponse, error) {
	credential, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tenderTitle := ""
	if tender, err := s.tenders.GetByID(ctx, credential.TenderID); err == nil {
		tenderTitle = tender.Title
	}

	url, _, err := s.signer.SignedURL("", credential.PDFPublicID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign download url")
	}

	return &dto.CredentialDownloadResponse{
		PDFURL:         url,
		ContractorName: credential.ContractorName,
		TenderID:       credential.TenderID,
		TenderTitle:    tenderTitle,
		SubmittedAt:    credential.SubmittedAt,
	}, nil
}

// Delete removes a submission. The blob identifier is recovered from the
// stored location URL and its destruction is best-effort.
func (s *CredentialService) Delete(ctx context.Context, id string) error {
	credential, err := s.getByID(ctx, id)
	if err != nil {
		return err
	}

	if publicID := storage.PublicIDFromLocation(credential.PDFURL); publicID != "" {
		if err := s.blobs.Destroy(publicID); err != nil {
			s.logger.Warn("failed to destroy credential blob", zap.String("public_id", publicID), zap.Error(err))
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "submission not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete submission")
	}
	return nil
}

func (s *CredentialService) loadTender(ctx context.Context, tenderID string) (*models.Tender, error) {
	if _, err := uuid.Parse(tenderID); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid tender id")
	}
	tender, err := s.tenders.GetByID(ctx, tenderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "tender not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load tender")
	}
	return tender, nil
}

func (s *CredentialService) getByID(ctx context.Context, id string) (*models.Credential, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid submission id")
	}
	credential, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "submission not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load submission")
	}
	return credential, nil
}
