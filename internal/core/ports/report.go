package ports

import (
	"context"
	"time"

	"github.com/flowiq/flowiq/internal/core/domain"
)

// ReportCache holds a recent business summary so dashboards don't recompute
// aggregates on every hit. A nil summary with nil error means a miss.
type ReportCache interface {
	GetSummary(ctx context.Context) (*domain.BusinessSummary, error)
	SetSummary(ctx context.Context, summary *domain.BusinessSummary, ttl time.Duration) error
}

// ReportService assembles cross-area snapshots.
type ReportService interface {
	Summary(ctx context.Context) (*domain.BusinessSummary, error)
	ExportCSV(ctx context.Context) ([]byte, error)
}
