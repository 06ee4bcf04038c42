//go:build unit

package builder

import (
	"time"

	domresource "facility-booking/internal/domain/resource"
)

type ResourceBuilder struct {
	Name        string
	Category    string
	Capacity    int
	Location    string
	Description string
	CreatedAt   time.Time
}

func NewResourceBuilder() *ResourceBuilder {
	return &ResourceBuilder{
		Name:        "Chemistry Lab",
		Category:    "laboratory",
		Capacity:    30,
		Location:    "Building C, Floor 2",
		Description: "Wet lab with fume hoods",
		CreatedAt:   time.Date(2026, time.September, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (r *ResourceBuilder) With(mutate func(*ResourceBuilder)) *ResourceBuilder {
	mutate(r)
	return r
}

func (r *ResourceBuilder) BuildDomain() (*domresource.Resource, error) {
	return domresource.NewResource(r.Name, r.Category, r.Capacity, r.Location, r.Description, r.CreatedAt)
}

func (r *ResourceBuilder) WithName(name string) *ResourceBuilder {
	r.Name = name
	return r
}

func (r *ResourceBuilder) WithLocation(location string) *ResourceBuilder {
	r.Location = location
	return r
}

func (r *ResourceBuilder) WithCapacity(capacity int) *ResourceBuilder {
	r.Capacity = capacity
	return r
}
