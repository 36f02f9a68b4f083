package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// VisitorRepository tracks daily visit counters. The increment is a single
// atomic upsert so concurrent visits never lose updates.
type VisitorRepository struct {
	db *sqlx.DB
}

// NewVisitorRepository creates the repository.
func NewVisitorRepository(db *sqlx.DB) *VisitorRepository {
	return &VisitorRepository{db: db}
}

// Increment bumps the counter for the given day, creating the row on the
// first visit.
func (r *VisitorRepository) Increment(ctx context.Context, date string) error {
	const query = `INSERT INTO visitor_counts (visit_date, count) VALUES ($1, 1)
ON CONFLICT (visit_date) DO UPDATE SET count = visitor_counts.count + 1`
	if _, err := r.db.ExecContext(ctx, query, date); err != nil {
		return fmt.Errorf("increment visitor count: %w", err)
	}
	return nil
}

// CountOn returns the counter for a single day, zero when absent.
func (r *VisitorRepository) CountOn(ctx context.Context, date string) (int64, error) {
	const query = `SELECT COALESCE(SUM(count), 0) FROM visitor_counts WHERE visit_date = $1`
	var count int64
	if err := r.db.GetContext(ctx, &count, query, date); err != nil {
		return 0, fmt.Errorf("visitor count on %s: %w", date, err)
	}
	return count, nil
}

// SumBetween returns the counter sum over an inclusive date range.
func (r *VisitorRepository) SumBetween(ctx context.Context, from, to string) (int64, error) {
	const query = `SELECT COALESCE(SUM(count), 0) FROM visitor_counts WHERE visit_date BETWEEN $1 AND $2`
	var sum int64
	if err := r.db.GetContext(ctx, &sum, query, from, to); err != nil {
		return 0, fmt.Errorf("visitor sum %s..%s: %w", from, to, err)
	}
	return sum, nil
}

// SumTotal returns the all-time counter sum.
func (r *VisitorRepository) SumTotal(ctx context.Context) (int64, error) {
	const query = `SELECT COALESCE(SUM(count), 0) FROM visitor_counts`
	var sum int64
	if err := r.db.GetContext(ctx, &sum, query); err != nil {
		return 0, fmt.Errorf("visitor total: %w", err)
	}
	return sum, nil
}
