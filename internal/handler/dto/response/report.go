package response

import (
	"campusbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type UtilizationResponse struct {
	ResourceID   uuid.UUID `json:"resourceId"`
	ResourceName string    `json:"resourceName"`
	ResourceKind string    `json:"resourceKind"`
	TotalHours   float64   `json:"totalHours"`
	BookingCount int64     `json:"bookingCount"`
}

func FromUtilizationRows(rows []*queries.UtilizationRow) []*UtilizationResponse {
	result := make([]*UtilizationResponse, len(rows))
	for i, r := range rows {
		result[i] = &UtilizationResponse{
			ResourceID:   r.ResourceID,
			ResourceName: r.ResourceName,
			ResourceKind: r.ResourceKind,
			TotalHours:   r.TotalHours,
			BookingCount: r.BookingCount,
		}
	}
	return result
}
