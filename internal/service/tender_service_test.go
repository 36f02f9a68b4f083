package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/coop-office-api/internal/dto"
	"github.com/noah-isme/coop-office-api/internal/models"
	appErrors "github.com/noah-isme/coop-office-api/pkg/errors"
	"github.com/noah-isme/coop-office-api/pkg/storage"
)

// pdfBytes carries a minimal PDF magic header so content sniffing accepts it.
var pdfBytes = []byte("%PDF-1.4 test payload")

type stubBlobStore struct {
	uploads    []string
	destroyed  []string
	uploadErr  error
	destroyErr error
}

func (s *stubBlobStore) Upload(folder string, data []byte, ext string) (*storage.Object, error) {
	if s.uploadErr != nil {
		return nil, s.uploadErr
	}
	s.uploads = append(s.uploads, folder)
	publicID := fmt.Sprintf("%s/blob%d%s", folder, len(s.uploads), ext)
	return &storage.Object{PublicID: publicID, Location: "http://localhost/files/" + publicID}, nil
}

func (s *stubBlobStore) Open(publicID string) (*os.File, error) { return nil, errors.New("not used") }

func (s *stubBlobStore) Destroy(publicID string) error {
	if s.destroyErr != nil {
		return s.destroyErr
	}
	s.destroyed = append(s.destroyed, publicID)
	return nil
}

type mockTenderRepo struct {
	created  []*models.Tender
	tenders  []models.Tender
	byID     *models.Tender
	getErr   error
	listErr  error
	deleted  []string
	deleteEr error
}

func (m *mockTenderRepo) Create(ctx context.Context, tender *models.Tender) error {
	m.created = append(m.created, tender)
	return nil
}

func (m *mockTenderRepo) List(ctx context.Context, filter models.TenderFilter) ([]models.Tender, int, error) {
	if m.listErr != nil {
		return nil, 0, m.listErr
	}
	return m.tenders, len(m.tenders), nil
}

func (m *mockTenderRepo) ListAll(ctx context.Context) ([]models.Tender, error) {
	return m.tenders, m.listErr
}

func (m *mockTenderRepo) GetByID(ctx context.Context, id string) (*models.Tender, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.byID, nil
}

func (m *mockTenderRepo) Delete(ctx context.Context, id string) error {
	if m.deleteEr != nil {
		return m.deleteEr
	}
	m.deleted = append(m.deleted, id)
	return nil
}

type stubSubmissionStore struct {
	credentials []models.Credential
	listErr     error
}

func (s *stubSubmissionStore) ListByTender(ctx context.Context, tenderID string) ([]models.Credential, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.credentials, nil
}

func newTenderServiceForTest(repo *mockTenderRepo, blobs *stubBlobStore) *TenderService {
	signer := storage.NewSignedURLSigner("test-secret", time.Hour)
	return NewTenderService(repo, &stubSubmissionStore{}, blobs, signer, nil, nil, nil, nil, 5<<20)
}

func TestTenderServiceCreateDefaultsClosingDate(t *testing.T) {
	repo := &mockTenderRepo{}
	blobs := &stubBlobStore{}
	svc := newTenderServiceForTest(repo, blobs)
	fixed := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	tender, err := svc.Create(context.Background(), dto.CreateTenderRequest{Title: "Road works"}, pdfBytes)
	require.NoError(t, err)
	assert.Equal(t, fixed.Add(models.DefaultClosingWindow), tender.ClosingDate)
	assert.Len(t, blobs.uploads, 1)
}

func TestTenderServiceCreateRejectsPastClosingDate(t *testing.T) {
	repo := &mockTenderRepo{}
	blobs := &stubBlobStore{}
	svc := newTenderServiceForTest(repo, blobs)
	svc.now = func() time.Time { return time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC) }

	_, err := svc.Create(context.Background(), dto.CreateTenderRequest{Title: "Road works", ClosingDate: "2026-08-30"}, pdfBytes)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Empty(t, blobs.uploads)
}

func TestTenderServiceCreateAcceptsTodayClosingDate(t *testing.T) {
	repo := &mockTenderRepo{}
	blobs := &stubBlobStore{}
	svc := newTenderServiceForTest(repo, blobs)
	svc.now = func() time.Time { return time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC) }

	tender, err := svc.Create(context.Background(), dto.CreateTenderRequest{Title: "Road works", ClosingDate: "2026-08-31"}, pdfBytes)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), tender.ClosingDate)
}

func TestTenderServiceCreateRejectsNonPDFWithoutUpload(t *testing.T) {
	repo := &mockTenderRepo{}
	blobs := &stubBlobStore{}
	svc := newTenderServiceForTest(repo, blobs)

	_, err := svc.Create(context.Background(), dto.CreateTenderRequest{Title: "Road works"}, []byte("<html>not a pdf</html>"))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Empty(t, blobs.uploads)
	assert.Empty(t, repo.created)
}

func TestTenderServiceCreateRejectsOversizedFile(t *testing.T) {
	repo := &mockTenderRepo{}
	blobs := &stubBlobStore{}
	svc := newTenderServiceForTest(repo, blobs)

	big := append([]byte("%PDF-1.4 "), make([]byte, 6<<20)...)
	_, err := svc.Create(context.Background(), dto.CreateTenderRequest{Title: "Road works"}, big)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Contains(t, appErr.Message, "5.0 MiB")
	assert.Empty(t, blobs.uploads)
}

func TestTenderServiceDeleteDestroysBlobBestEffort(t *testing.T) {
	tender := &models.Tender{ID: "0b9a8a1e-54c3-46a7-9a5a-7f8e9d0c1b2a", PDFPublicID: "tenders/blob1.pdf"}
	repo := &mockTenderRepo{byID: tender}
	blobs := &stubBlobStore{}
	svc := newTenderServiceForTest(repo, blobs)

	require.NoError(t, svc.Delete(context.Background(), tender.ID))
	assert.Equal(t, []string{"tenders/blob1.pdf"}, blobs.destroyed)
	assert.Equal(t, []string{tender.ID}, repo.deleted)
}

func TestTenderServiceDeleteWithSubmissionsDestroysTheirBlobs(t *testing.T) {
	tender := &models.Tender{ID: "0b9a8a1e-54c3-46a7-9a5a-7f8e9d0c1b2a", PDFPublicID: "tenders/blob1.pdf"}
	repo := &mockTenderRepo{byID: tender}
	blobs := &stubBlobStore{}
	svc := newTenderServiceForTest(repo, blobs)
	svc.submissions = &stubSubmissionStore{credentials: []models.Credential{
		{ID: "c5a6b7c8-1d2e-4f3a-8b9c-0d1e2f3a4b5c", TenderID: tender.ID, PDFPublicID: "credentials/blob1.pdf"},
		{ID: "d6b7c8d9-2e3f-4a4b-9c0d-1e2f3a4b5c6d", TenderID: tender.ID},
	}}

	require.NoError(t, svc.Delete(context.Background(), tender.ID))
	assert.Equal(t, []string{"tenders/blob1.pdf", "credentials/blob1.pdf"}, blobs.destroyed)
	assert.Equal(t, []string{tender.ID}, repo.deleted)
}

func TestTenderServiceDeleteProceedsWhenSubmissionListFails(t *testing.T) {
	tender := &models.Tender{ID: "0b9a8a1e-54c3-46a7-9a5a-7f8e9d0c1b2a"}
	repo := &mockTenderRepo{byID: tender}
	blobs := &stubBlobStore{}
	svc := newTenderServiceForTest(repo, blobs)
	svc.submissions = &stubSubmissionStore{listErr: errors.New("connection reset")}

	require.NoError(t, svc.Delete(context.Background(), tender.ID))
	assert.Equal(t, []string{tender.ID}, repo.deleted)
}
