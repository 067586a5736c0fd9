package response

import (
	"time"

	"campusbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID           uuid.UUID `json:"id"`
	ResourceID   uuid.UUID `json:"resourceId"`
	ResourceName string    `json:"resourceName"`
	ResourceKind string    `json:"resourceKind"`
	UserID       uuid.UUID `json:"userId"`
	UserName     string    `json:"userName"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	Status       string    `json:"status"`
	Note         *string   `json:"note,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:           v.ID,
		ResourceID:   v.ResourceID,
		ResourceName: v.ResourceName,
		ResourceKind: v.ResourceKind,
		UserID:       v.UserID,
		UserName:     v.UserName,
		StartTime:    v.StartTime,
		EndTime:      v.EndTime,
		Status:       v.Status,
		Note:         v.Note,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	result := make([]*BookingResponse, len(views))
	for i, v := range views {
		result[i] = FromBookingView(v)
	}
	return result
}
