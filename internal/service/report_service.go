package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	appErrors "github.com/noah-isme/coop-office-api/pkg/errors"
	"github.com/noah-isme/coop-office-api/pkg/export"
)

// ReportService renders administrative PDF reports.
type ReportService struct {
	tenders  tenderRepository
	exporter *export.PDFExporter
	logger   *zap.Logger
	now      func() time.Time
}

// NewReportService constructs the report service.
func NewReportService(tenders tenderRepository, exporter *export.PDFExporter, logger *zap.Logger) *ReportService {
	if exporter == nil {
		exporter = export.NewPDFExporter()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{tenders: tenders, exporter: exporter, logger: logger, now: time.Now}
}

// TenderRegister renders the full tender register as a PDF table.
func (s *ReportService) TenderRegister(ctx context.Context) ([]byte, error) {
	tenders, err := s.tenders.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load tenders")
	}

	now := s.now()
	data := export.Dataset{
		Headers: []string{"Title", "Created", "Closing Date", "Status"},
	}
	for _, tender := range tenders {
		status := "Closed"
		if tender.Open(now) {
			status = "Open"
		}
		data.Rows = append(data.Rows, map[string]string{
			"Title":        tender.Title,
			"Created":      tender.CreatedAt.Format("2006-01-02"),
			"Closing Date": tender.ClosingDate.Format("2006-01-02"),
			"Status":       status,
		})
	}

	pdf, err := s.exporter.Render(data, "Tender Register")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render report")
	}
	return pdf, nil
}
