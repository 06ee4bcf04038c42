package usage

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyRemarks = errors.New("usage remarks must not be empty")

// Record documents how a completed booking was used. At most one record
// exists per booking; its presence is surfaced to booking views as a derived
// boolean and never feeds back into the state machine.
type Record struct {
	id         uuid.UUID
	bookingID  uuid.UUID
	uploadedBy uuid.UUID
	remarks    string
	issues     *string
	createdAt  time.Time
}

func NewRecord(bookingID, uploadedBy uuid.UUID, remarks string, issues *string, now time.Time) (*Record, error) {
	if remarks == "" {
		return nil, ErrEmptyRemarks
	}
	return &Record{
		id:         uuid.New(),
		bookingID:  bookingID,
		uploadedBy: uploadedBy,
		remarks:    remarks,
		issues:     issues,
		createdAt:  now,
	}, nil
}

func ReconstructRecord(id, bookingID, uploadedBy uuid.UUID, remarks string, issues *string, createdAt time.Time) *Record {
	return &Record{
		id:         id,
		bookingID:  bookingID,
		uploadedBy: uploadedBy,
		remarks:    remarks,
		issues:     issues,
		createdAt:  createdAt,
	}
}

func (r *Record) ID() uuid.UUID         { return r.id }
func (r *Record) BookingID() uuid.UUID  { return r.bookingID }
func (r *Record) UploadedBy() uuid.UUID { return r.uploadedBy }
func (r *Record) Remarks() string       { return r.remarks }
func (r *Record) Issues() *string       { return r.issues }
func (r *Record) CreatedAt() time.Time  { return r.createdAt }
