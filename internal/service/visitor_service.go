package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/coop-office-api/internal/models"
	appErrors "github.com/noah-isme/coop-office-api/pkg/errors"
)

const visitDateLayout = "2006-01-02"

type visitorRepository interface {
	Increment(ctx context.Context, date string) error
	CountOn(ctx context.Context, date string) (int64, error)
	SumBetween(ctx context.Context, from, to string) (int64, error)
	SumTotal(ctx context.Context) (int64, error)
}

// VisitorService tracks site visits per calendar day.
type VisitorService struct {
	repo    visitorRepository
	metrics *MetricsService
	logger  *zap.Logger
	now     func() time.Time
}

// NewVisitorService constructs the visitor service.
func NewVisitorService(repo visitorRepository, metrics *MetricsService, logger *zap.Logger) *VisitorService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VisitorService{repo: repo, metrics: metrics, logger: logger, now: time.Now}
}

// Track bumps today's counter.
func (s *VisitorService) Track(ctx context.Context) error {
	today := s.now().UTC().Format(visitDateLayout)
	if err := s.repo.Increment(ctx, today); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to track visit")
	}
	if s.metrics != nil {
		s.metrics.RecordVisit()
	}
	return nil
}

// Stats returns today's count and the running total for the current month.
func (s *VisitorService) Stats(ctx context.Context) (*models.VisitorStats, error) {
	now := s.now().UTC()
	today := now.Format(visitDateLayout)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).Format(visitDateLayout)

	daily, err := s.repo.CountOn(ctx, today)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load daily count")
	}
	monthly, err := s.repo.SumBetween(ctx, monthStart, today)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load monthly count")
	}

	return &models.VisitorStats{Daily: daily, Monthly: monthly}, nil
}

// Total returns the all-time visit count.
func (s *VisitorService) Total(ctx context.Context) (int64, error) {
	total, err := s.repo.SumTotal(ctx)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load total count")
	}
	return total, nil
}
