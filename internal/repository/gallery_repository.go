package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/coop-office-api/internal/models"
)

// GalleryRepository provides persistence for gallery images.
type GalleryRepository struct {
	db *sqlx.DB
}

// NewGalleryRepository creates the repository.
func NewGalleryRepository(db *sqlx.DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

// Create inserts a new gallery row.
func (r *GalleryRepository) Create(ctx context.Context, image *models.GalleryImage) error {
	if image.ID == "" {
		image.ID = uuid.NewString()
	}
	if image.CreatedAt.IsZero() {
		image.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO gallery_images (id, description, image_url, public_id, created_at)
VALUES (:id, :description, :image_url, :public_id, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, image); err != nil {
		return fmt.Errorf("create gallery image: %w", err)
	}
	return nil
}

// List returns a page of images plus the total count.
func (r *GalleryRepository) List(ctx context.Context, page, limit int) ([]models.GalleryImage, int, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	query := fmt.Sprintf(`SELECT id, description, image_url, public_id, created_at
FROM gallery_images ORDER BY created_at DESC LIMIT %d OFFSET %d`, limit, offset)
	var images []models.GalleryImage
	if err := r.db.SelectContext(ctx, &images, query); err != nil {
		return nil, 0, fmt.Errorf("list gallery images: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM gallery_images"); err != nil {
		return nil, 0, fmt.Errorf("count gallery images: %w", err)
	}
	return images, total, nil
}

// GetByID returns a gallery image by identifier.
func (r *GalleryRepository) GetByID(ctx context.Context, id string) (*models.GalleryImage, error) {
	const query = `SELECT id, description, image_url, public_id, created_at FROM gallery_images WHERE id = $1`
	var image models.GalleryImage
	if err := r.db.GetContext(ctx, &image, query, id); err != nil {
		return nil, err
	}
	return &image, nil
}

// Delete removes a gallery row.
func (r *GalleryRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM gallery_images WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete gallery image: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete gallery image: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
