package request

import (
	"encoding/json"

	"campusbook/internal/domain/resource"
)

type CreateResourceRequest struct {
	Name        string          `json:"name" binding:"required"`
	Kind        string          `json:"kind" binding:"required"`
	Description string          `json:"description,omitempty"`
	Capacity    *int32          `json:"capacity,omitempty"`
	Details     json.RawMessage `json:"details,omitempty"`
}

// DecodeDetails resolves the raw detail payload against the declared kind.
func (r CreateResourceRequest) DecodeDetails() (resource.Details, error) {
	kind, err := resource.NewKind(r.Kind)
	if err != nil {
		return nil, err
	}
	return resource.UnmarshalDetails(kind, r.Details)
}

type UpdateResourceRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Capacity    *int32  `json:"capacity,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}
