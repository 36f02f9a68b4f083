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

// TenderRepository provides persistence for tenders.
type TenderRepository struct {
	db *sqlx.DB
}

// NewTenderRepository creates the repository.
func NewTenderRepository(db *sqlx.DB) *TenderRepository {
	return &TenderRepository{db: db}
}

// Create inserts a new tender row.
func (r *TenderRepository) Create(ctx context.Context, tender *models.Tender) error {
	if tender.ID == "" {
		tender.ID = uuid.NewString()
	}
	if tender.CreatedAt.IsZero() {
		tender.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO tenders (id, title, description, pdf_url, pdf_public_id, created_at, closing_date)
VALUES (:id, :title, :description, :pdf_url, :pdf_public_id, :created_at, :closing_date)`
	if _, err := r.db.NamedExecContext(ctx, query, tender); err != nil {
		return fmt.Errorf("create tender: %w", err)
	}
	return nil
}

// List returns a page of tenders plus the total matching count, newest
// first. The active filter keeps only tenders whose closing date has not
// passed.
func (r *TenderRepository) List(ctx context.Context, filter models.TenderFilter) ([]models.Tender, int, error) {
	where := "1=1"
	if filter.ActiveOnly {
		where = "closing_date >= NOW()"
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := fmt.Sprintf(`SELECT id, title, description, pdf_url, pdf_public_id, created_at, closing_date
FROM tenders WHERE %s ORDER BY created_at DESC LIMIT %d OFFSET %d`, where, limit, offset)
	var tenders []models.Tender
	if err := r.db.SelectContext(ctx, &tenders, query); err != nil {
		return nil, 0, fmt.Errorf("list tenders: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM tenders WHERE %s", where)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, 0, fmt.Errorf("count tenders: %w", err)
	}
	return tenders, total, nil
}

// ListAll returns every tender for the register report, newest first.
func (r *TenderRepository) ListAll(ctx context.Context) ([]models.Tender, error) {
	const query = `SELECT id, title, description, pdf_url, pdf_public_id, created_at, closing_date
FROM tenders ORDER BY created_at DESC`
	var tenders []models.Tender
	if err := r.db.SelectContext(ctx, &tenders, query); err != nil {
		return nil, fmt.Errorf("list all tenders: %w", err)
	}
	return tenders, nil
}

// GetByID returns a tender by identifier.
func (r *TenderRepository) GetByID(ctx context.Context, id string) (*models.Tender, error) {
	const query = `SELECT id, title, description, pdf_url, pdf_public_id, created_at, closing_date
FROM tenders WHERE id = $1`
	var tender models.Tender
	if err := r.db.GetContext(ctx, &tender, query, id); err != nil {
		return nil, err
	}
	return &tender, nil
}

// Delete removes a tender row.
func (r *TenderRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM tenders WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete tender: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete tender: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
