package models

import "time"

// GalleryImage represents a gallery entry. The public ID is required because
// deletion at the blob store goes by identifier, not URL.
type GalleryImage struct {
	ID          string    `db:"id" json:"id"`
	Description string    `db:"description" json:"description,omitempty"`
	ImageURL    string    `db:"image_url" json:"galleryImage"`
	PublicID    string    `db:"public_id" json:"galleryPublicUrl"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}
