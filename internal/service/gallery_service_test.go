package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/coop-office-api/internal/models"
	appErrors "github.com/noah-isme/coop-office-api/pkg/errors"
)

type mockGalleryRepo struct {
	created []*models.GalleryImage
	images  []models.GalleryImage
	byID    *models.GalleryImage
	getErr  error
	deleted []string
}

func (m *mockGalleryRepo) Create(ctx context.Context, image *models.GalleryImage) error {
	m.created = append(m.created, image)
	return nil
}

func (m *mockGalleryRepo) List(ctx context.Context, page, limit int) ([]models.GalleryImage, int, error) {
	return m.images, len(m.images), nil
}

func (m *mockGalleryRepo) GetByID(ctx context.Context, id string) (*models.GalleryImage, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.byID, nil
}

func (m *mockGalleryRepo) Delete(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func TestGalleryCreateKeepsPublicID(t *testing.T) {
	repo := &mockGalleryRepo{}
	blobs := &stubBlobStore{}
	svc := NewGalleryService(repo, blobs, nil, nil, 5<<20)

	image, err := svc.Create(context.Background(), "office opening", "photo.png", []byte("fake image bytes"))
	require.NoError(t, err)
	assert.NotEmpty(t, image.PublicID)
	assert.NotEmpty(t, image.ImageURL)
	assert.Equal(t, []string{"gallery"}, blobs.uploads)
}

func TestGalleryListEmptyPageIsNotFound(t *testing.T) {
	svc := NewGalleryService(&mockGalleryRepo{}, &stubBlobStore{}, nil, nil, 5<<20)

	_, _, err := svc.List(context.Background(), 1, 10)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
	assert.Equal(t, "No gallery images found", appErr.Message)
}

func TestGalleryDeleteAbortsWhenBlobDestroyFails(t *testing.T) {
	image := &models.GalleryImage{ID: "7c6d5e4f-3a2b-4c1d-9e8f-7a6b5c4d3e2f", PublicID: "gallery/blob1.png"}
	repo := &mockGalleryRepo{byID: image}
	blobs := &stubBlobStore{destroyErr: errors.New("provider down")}
	svc := NewGalleryService(repo, blobs, nil, nil, 5<<20)

	err := svc.Delete(context.Background(), image.ID)
	require.Error(t, err)
	assert.Equal(t, 500, appErrors.FromError(err).Status)
	assert.Empty(t, repo.deleted)
}

func TestGalleryDeleteRemovesBlobThenRecord(t *testing.T) {
	image := &models.GalleryImage{ID: "7c6d5e4f-3a2b-4c1d-9e8f-7a6b5c4d3e2f", PublicID: "gallery/blob1.png"}
	repo := &mockGalleryRepo{byID: image}
	blobs := &stubBlobStore{}
	svc := NewGalleryService(repo, blobs, nil, nil, 5<<20)

	require.NoError(t, svc.Delete(context.Background(), image.ID))
	assert.Equal(t, []string{"gallery/blob1.png"}, blobs.destroyed)
	assert.Equal(t, []string{image.ID}, repo.deleted)
}
