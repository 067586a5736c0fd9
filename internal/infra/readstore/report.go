package readstore

import (
	"context"

	"campusbook/internal/infra"
	"campusbook/internal/infra/db"
	"campusbook/internal/usecase/queries"
)

type ReportReadStore struct {
	db db.DBTX
}

func NewReportReadStore(dbtx db.DBTX) *ReportReadStore {
	return &ReportReadStore{db: dbtx}
}

var _ queries.ReportReadStore = (*ReportReadStore)(nil)

// ResourceUtilization counts only confirmed and completed bookings. Pending
// bookings hold capacity but have not happened yet, cancelled ones never did.
func (s *ReportReadStore) ResourceUtilization(ctx context.Context) ([]*queries.UtilizationRow, error) {
	const query = `
		SELECT
			r.id,
			r.name,
			r.kind,
			COALESCE(SUM(EXTRACT(EPOCH FROM (b.end_time - b.start_time)) / 3600), 0),
			COUNT(b.id)
		FROM resources r
		LEFT JOIN bookings b
			ON b.resource_id = r.id
			AND b.status IN ('confirmed', 'completed')
		GROUP BY r.id, r.name, r.kind
		ORDER BY r.name, r.id
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to aggregate utilization", err)
	}
	defer rows.Close()

	var result []*queries.UtilizationRow
	for rows.Next() {
		var row queries.UtilizationRow
		if err := rows.Scan(&row.ResourceID, &row.ResourceName, &row.ResourceKind, &row.TotalHours, &row.BookingCount); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan utilization row", err)
		}
		result = append(result, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate utilization rows", err)
	}

	return result, nil
}
