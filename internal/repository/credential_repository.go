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

// CredentialRepository provides persistence for contractor submissions.
type CredentialRepository struct {
	db *sqlx.DB
}

// NewCredentialRepository creates the repository.
func NewCredentialRepository(db *sqlx.DB) *CredentialRepository {
	return &CredentialRepository{db: db}
}

// Create inserts a new credential row.
func (r *CredentialRepository) Create(ctx context.Context, credential *models.Credential) error {
	if credential.ID == "" {
		credential.ID = uuid.NewString()
	}
	if credential.SubmittedAt.IsZero() {
		credential.SubmittedAt = time.Now().UTC()
	}
	const query = `INSERT INTO credentials (id, tender_id, contractor_name, pdf_url, pdf_public_id, submitted_at)
VALUES (:id, :tender_id, :contractor_name, :pdf_url, :pdf_public_id, :submitted_at)`
	if _, err := r.db.NamedExecContext(ctx, query, credential); err != nil {
		return fmt.Errorf("create credential: %w", err)
	}
	return nil
}

// ListByTender returns all submissions for a tender, latest first.
func (r *CredentialRepository) ListByTender(ctx context.Context, tenderID string) ([]models.Credential, error) {
	const query = `SELECT id, tender_id, contractor_name, pdf_url, pdf_public_id, submitted_at
FROM credentials WHERE tender_id = $1 ORDER BY submitted_at DESC`
	var credentials []models.Credential
	if err := r.db.SelectContext(ctx, &credentials, query, tenderID); err != nil {
		return nil, fmt.Errorf("list credentials: %w", err)
	}
	return credentials, nil
}

// GetByID returns a credential by identifier.
func (r *CredentialRepository) GetByID(ctx context.Context, id string) (*models.Credential, error) {
	const query = `SELECT id, tender_id, contractor_name, pdf_url, pdf_public_id, submitted_at
FROM credentials WHERE id = $1`
	var credential models.Credential
	if err := r.db.GetContext(ctx, &credential, query, id); err != nil {
		return nil, err
	}
	return &credential, nil
}

// Delete removes a credential row.
func (r *CredentialRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM credentials WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete credential: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete credential: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
