package queries

import (
	"context"

	"campusbook/internal/pkg/errs"

	"github.com/google/uuid"
)

// UtilizationRow aggregates confirmed and completed bookings per resource:
// how many bookings it hosted and how many hours they cover in total.
type UtilizationRow struct {
	ResourceID   uuid.UUID
	ResourceName string
	ResourceKind string
	TotalHours   float64
	BookingCount int64
}

type ReportReadStore interface {
	ResourceUtilization(ctx context.Context) ([]*UtilizationRow, error)
}

type ReportQueries interface {
	ResourceUtilization(ctx context.Context) ([]*UtilizationRow, error)
}

type reportQueriesImpl struct {
	readStore ReportReadStore
}

func NewReportQueries(readStore ReportReadStore) ReportQueries {
	return &reportQueriesImpl{readStore: readStore}
}

func (q *reportQueriesImpl) ResourceUtilization(ctx context.Context) ([]*UtilizationRow, error) {
	rows, err := q.readStore.ResourceUtilization(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to aggregate utilization")
	}
	return rows, nil
}
