package response

import (
	"encoding/json"
	"time"

	"campusbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type ResourceResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Kind        string          `json:"kind"`
	Description string          `json:"description,omitempty"`
	Capacity    int32           `json:"capacity"`
	IsActive    bool            `json:"isActive"`
	Details     json.RawMessage `json:"details,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func FromResourceView(v *queries.ResourceView) *ResourceResponse {
	return &ResourceResponse{
		ID:          v.ID,
		Name:        v.Name,
		Kind:        v.Kind,
		Description: v.Description,
		Capacity:    v.Capacity,
		IsActive:    v.IsActive,
		Details:     v.Details,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func FromResourceViews(views []*queries.ResourceView) []*ResourceResponse {
	result := make([]*ResourceResponse, len(views))
	for i, v := range views {
		result[i] = FromResourceView(v)
	}
	return result
}
