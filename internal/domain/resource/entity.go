package resource

import (
	"errors"
	"time"

	"facility-booking/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("resource name must not be empty")
	ErrEmptyLocation = errors.New("resource location must not be empty")
	ErrInvalidStatus = errors.New("invalid resource status")
)

type Resource struct {
	id          uuid.UUID
	name        string
	category    string
	capacity    int
	location    string
	description string
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

func NewResource(name, category string, capacity int, location, description string, now time.Time) (*Resource, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if location == "" {
		return nil, ErrEmptyLocation
	}
	return &Resource{
		id:          uuid.New(),
		name:        name,
		category:    category,
		capacity:    capacity,
		location:    location,
		description: description,
		status:      StatusAvailable,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructResource(
	id uuid.UUID,
	name, category string,
	capacity int,
	location, description string,
	status Status,
	createdAt, updatedAt time.Time,
) *Resource {
	return &Resource{
		id:          id,
		name:        name,
		category:    category,
		capacity:    capacity,
		location:    location,
		description: description,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Patch carries a partial update; nil fields keep their previous value.
type Patch struct {
	Name        *string
	Category    *string
	Capacity    *int
	Location    *string
	Description *string
	Status      *Status
}

func (r *Resource) Apply(p Patch, now time.Time) error {
	name := patch.Coalesce(p.Name, r.name)
	if name == "" {
		return ErrEmptyName
	}
	location := patch.Coalesce(p.Location, r.location)
	if location == "" {
		return ErrEmptyLocation
	}
	status := patch.Coalesce(p.Status, r.status)
	if !status.IsValid() {
		return ErrInvalidStatus
	}

	r.name = name
	r.category = patch.Coalesce(p.Category, r.category)
	r.capacity = patch.Coalesce(p.Capacity, r.capacity)
	r.location = location
	r.description = patch.Coalesce(p.Description, r.description)
	r.status = status
	r.updatedAt = now
	return nil
}

// IsBookable reports whether new booking requests may target this resource.
// Resources under maintenance or removed reject requests even when the slot
// itself is free.
func (r *Resource) IsBookable() bool {
	return r.status == StatusAvailable
}

func (r *Resource) ID() uuid.UUID       { return r.id }
func (r *Resource) Name() string        { return r.name }
func (r *Resource) Category() string    { return r.category }
func (r *Resource) Capacity() int       { return r.capacity }
func (r *Resource) Location() string    { return r.location }
func (r *Resource) Description() string { return r.description }
func (r *Resource) Status() Status      { return r.status }
func (r *Resource) CreatedAt() time.Time { return r.createdAt }
func (r *Resource) UpdatedAt() time.Time { return r.updatedAt }
