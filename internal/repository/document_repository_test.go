package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/coop-office-api/internal/models"
)

func newDocumentMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestDocumentRepositoryListByType(t *testing.T) {
	db, mock, cleanup := newDocumentMock(t)
	defer cleanup()
	repo := NewDocumentRepository(db)

	docType := models.DocumentTypeForm
	rows := sqlmock.NewRows([]string{"id", "title", "doc_type", "doc_date", "file_url", "file_public_id", "description", "created_at"}).
		AddRow("1", "Loan form", "Form", "2026-08-01", "http://x/f.pdf", "documents/f", "", time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, doc_type, doc_date, file_url, file_public_id, description, created_at\nFROM documents WHERE doc_type = $1 ORDER BY created_at DESC LIMIT 10 OFFSET 0")).
		WithArgs("Form").
		WillReturnRows(rows)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM documents WHERE doc_type = $1")).
		WithArgs("Form").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	docs, total, err := repo.List(context.Background(), models.DocumentFilter{Type: &docType})
	require.NoError(t, err)
	assert.Len(t, docs, 1)
	assert.Equal(t, 1, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepositoryListSortedByDate(t *testing.T) {
	db, mock, cleanup := newDocumentMock(t)
	defer cleanup()
	repo := NewDocumentRepository(db)

	docType := models.DocumentTypeAnnouncement
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, doc_type, doc_date, file_url, file_public_id, description, created_at\nFROM documents WHERE doc_type = $1 ORDER BY doc_date DESC LIMIT 10 OFFSET 0")).
		WithArgs("Announcement").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "doc_type", "doc_date", "file_url", "file_public_id", "description", "created_at"}))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM documents WHERE doc_type = $1")).
		WithArgs("Announcement").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	_, _, err := repo.List(context.Background(), models.DocumentFilter{Type: &docType, SortByDate: true})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newDocumentMock(t)
	defer cleanup()
	repo := NewDocumentRepository(db)

	mock.ExpectExec("INSERT INTO documents").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	doc := &models.Document{Title: "Notice", Type: models.DocumentTypeAnnouncement, Date: "2026-08-31"}
	err := repo.Create(context.Background(), doc)
	require.NoError(t, err)
	assert.NotEmpty(t, doc.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
