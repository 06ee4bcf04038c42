package request

import (
	"facility-booking/internal/domain/resource"
	"facility-booking/internal/usecase/commands"
)

type CreateResourceRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Category    string `json:"category" binding:"max=100"`
	Capacity    int    `json:"capacity" binding:"omitempty,min=1"`
	Location    string `json:"location" binding:"required,max=200"`
	Description string `json:"description" binding:"max=1000"`
}

type UpdateResourceRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=200"`
	Category    *string `json:"category" binding:"omitempty,max=100"`
	Capacity    *int    `json:"capacity" binding:"omitempty,min=1"`
	Location    *string `json:"location" binding:"omitempty,max=200"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Status      *string `json:"status"`
}

func (r *CreateResourceRequest) ToInput() commands.CreateResourceInput {
	return commands.CreateResourceInput{
		Name:        r.Name,
		Category:    r.Category,
		Capacity:    r.Capacity,
		Location:    r.Location,
		Description: r.Description,
	}
}

func (r *UpdateResourceRequest) ToPatch() (resource.Patch, error) {
	p := resource.Patch{
		Name:        r.Name,
		Category:    r.Category,
		Capacity:    r.Capacity,
		Location:    r.Location,
		Description: r.Description,
	}
	if r.Status != nil {
		status := resource.Status(*r.Status)
		if !status.IsValid() {
			return resource.Patch{}, resource.ErrInvalidStatus
		}
		p.Status = &status
	}
	return p, nil
}
