package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/coop-office-api/internal/dto"
	"github.com/noah-isme/coop-office-api/internal/models"
	appErrors "github.com/noah-isme/coop-office-api/pkg/errors"
	"github.com/noah-isme/coop-office-api/pkg/storage"
)

type mockCredentialRepo struct {
	created     []*models.Credential
	credentials []models.Credential
	byID        *models.Credential
	getErr      error
	deleted     []string
}

func (m *mockCredentialRepo) Create(ctx context.Context, credential *models.Credential) error {
	m.created = append(m.created, credential)
	return nil
}

func (m *mockCredentialRepo) ListByTender(ctx context.Context, tenderID string) ([]models.Credential, error) {
	return m.credentials, nil
}

func (m *mockCredentialRepo) GetByID(ctx context.Context, id string) (*models.Credential, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.byID, nil
}

func (m *mockCredentialRepo) Delete(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	return nil
}

const testTenderID = "3e1f0a2b-6c5d-4e7f-8a9b-0c1d2e3f4a5b"

func newCredentialServiceForTest(repo *mockCredentialRepo, tenders *mockTenderRepo, blobs *stubBlobStore) *CredentialService {
	signer := storage.NewSignedURLSigner("test-secret", time.Hour)
	return NewCredentialService(repo, tenders, blobs, signer, nil, nil, nil, 5<<20)
}

func TestCredentialSubmitClosedTender(t *testing.T) {
	tender := &models.Tender{ID: testTenderID, Title: "Road works", ClosingDate: time.Now().Add(-time.Hour)}
	repo := &mockCredentialRepo{}
	blobs := &stubBlobStore{}
	svc := newCredentialServiceForTest(repo, &mockTenderRepo{byID: tender}, blobs)

	_, err := svc.Submit(context.Background(), testTenderID, dto.SubmitCredentialRequest{ContractorName: "Acme"}, pdfBytes)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrSubmissionClosed.Code, appErr.Code)
	assert.Equal(t, 400, appErr.Status)
	assert.Empty(t, blobs.uploads)
	assert.Empty(t, repo.created)
}

func TestCredentialSubmitOpenTender(t *testing.T) {
	tender := &models.Tender{ID: testTenderID, Title: "Road works", ClosingDate: time.Now().Add(time.Hour)}
	repo := &mockCredentialRepo{}
	blobs := &stubBlobStore{}
	svc := newCredentialServiceForTest(repo, &mockTenderRepo{byID: tender}, blobs)

	credential, err := svc.Submit(context.Background(), testTenderID, dto.SubmitCredentialRequest{ContractorName: "Acme"}, pdfBytes)
	require.NoError(t, err)
	assert.Equal(t, testTenderID, credential.TenderID)
	assert.Equal(t, "Acme", credential.ContractorName)
	assert.False(t, credential.SubmittedAt.IsZero())
	assert.Len(t, blobs.uploads, 1)
}

func TestCredentialSubmitAtClosingInstant(t *testing.T) {
	closing := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	tender := &models.Tender{ID: testTenderID, Title: "Road works", ClosingDate: closing}
	repo := &mockCredentialRepo{}
	blobs := &stubBlobStore{}
	svc := newCredentialServiceForTest(repo, &mockTenderRepo{byID: tender}, blobs)
	svc.now = func() time.Time { return closing }

	credential, err := svc.Submit(context.Background(), testTenderID, dto.SubmitCredentialRequest{ContractorName: "Acme"}, pdfBytes)
	require.NoError(t, err)
	assert.Equal(t, testTenderID, credential.TenderID)
	assert.Len(t, blobs.uploads, 1)

	svc.now = func() time.Time { return closing.Add(time.Second) }
	_, err = svc.Submit(context.Background(), testTenderID, dto.SubmitCredentialRequest{ContractorName: "Acme"}, pdfBytes)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrSubmissionClosed.Code, appErrors.FromError(err).Code)
}

func TestCredentialSubmitUnknownTender(t *testing.T) {
	repo := &mockCredentialRepo{}
	svc := newCredentialServiceForTest(repo, &mockTenderRepo{getErr: sql.ErrNoRows}, &stubBlobStore{})

	_, err := svc.Submit(context.Background(), testTenderID, dto.SubmitCredentialRequest{ContractorName: "Acme"}, pdfBytes)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestCredentialListSealedWhileOpen(t *testing.T) {
	tender := &models.Tender{ID: testTenderID, ClosingDate: time.Now().Add(time.Hour)}
	repo := &mockCredentialRepo{credentials: []models.Credential{{ID: "x"}}}
	svc := newCredentialServiceForTest(repo, &mockTenderRepo{byID: tender}, &stubBlobStore{})

	_, err := svc.ListByTender(context.Background(), testTenderID)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErr.Code)
	assert.Equal(t, 403, appErr.Status)
}

func TestCredentialListDisclosedAfterClose(t *testing.T) {
	tender := &models.Tender{ID: testTenderID, ClosingDate: time.Now().Add(-time.Hour)}
	repo := &mockCredentialRepo{credentials: []models.Credential{{ID: "x", ContractorName: "Acme"}}}
	svc := newCredentialServiceForTest(repo, &mockTenderRepo{byID: tender}, &stubBlobStore{})

	credentials, err := svc.ListByTender(context.Background(), testTenderID)
	require.NoError(t, err)
	assert.Len(t, credentials, 1)
}

func TestCredentialDeleteParsesPublicIDFromURL(t *testing.T) {
	credential := &models.Credential{
		ID:     "5a4b3c2d-1e0f-4a5b-8c7d-6e5f4a3b2c1d",
		PDFURL: "http://localhost/files/credentials/blob1.pdf",
	}
	repo := &mockCredentialRepo{byID: credential}
	blobs := &stubBlobStore{}
	svc := newCredentialServiceForTest(repo, &mockTenderRepo{}, blobs)

	require.NoError(t, svc.Delete(context.Background(), credential.ID))
	assert.Equal(t, []string{"credentials/blob1.pdf"}, blobs.destroyed)
	assert.Equal(t, []string{credential.ID}, repo.deleted)
}
