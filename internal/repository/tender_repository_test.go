package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/coop-office-api/internal/models"
)

func newTenderMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestTenderRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newTenderMock(t)
	defer cleanup()
	repo := NewTenderRepository(db)

	mock.ExpectExec("INSERT INTO tenders").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	tender := &models.Tender{Title: "Road works", PDFURL: "http://x/t.pdf", PDFPublicID: "tenders/t", ClosingDate: time.Now().Add(240 * time.Hour)}
	err := repo.Create(context.Background(), tender)
	require.NoError(t, err)
	assert.NotEmpty(t, tender.ID)
	assert.False(t, tender.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTenderRepositoryList(t *testing.T) {
	db, mock, cleanup := newTenderMock(t)
	defer cleanup()
	repo := NewTenderRepository(db)

	rows := sqlmock.NewRows([]string{"id", "title", "description", "pdf_url", "pdf_public_id", "created_at", "closing_date"}).
		AddRow("1", "Road works", "", "http://x/t.pdf", "tenders/t", time.Now(), time.Now().Add(time.Hour))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, description, pdf_url, pdf_public_id, created_at, closing_date\nFROM tenders WHERE 1=1 ORDER BY created_at DESC LIMIT 20 OFFSET 0")).
		WillReturnRows(rows)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM tenders WHERE 1=1")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	tenders, total, err := repo.List(context.Background(), models.TenderFilter{})
	require.NoError(t, err)
	assert.Len(t, tenders, 1)
	assert.Equal(t, 1, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTenderRepositoryListActiveOnly(t *testing.T) {
	db, mock, cleanup := newTenderMock(t)
	defer cleanup()
	repo := NewTenderRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, description, pdf_url, pdf_public_id, created_at, closing_date\nFROM tenders WHERE closing_date >= NOW() ORDER BY created_at DESC LIMIT 20 OFFSET 20")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description", "pdf_url", "pdf_public_id", "created_at", "closing_date"}))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM tenders WHERE closing_date >= NOW()")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	tenders, total, err := repo.List(context.Background(), models.TenderFilter{ActiveOnly: true, Page: 2})
	require.NoError(t, err)
	assert.Empty(t, tenders)
	assert.Equal(t, 0, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTenderRepositoryDeleteMissing(t *testing.T) {
	db, mock, cleanup := newTenderMock(t)
	defer cleanup()
	repo := NewTenderRepository(db)

	mock.ExpectExec("DELETE FROM tenders").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
