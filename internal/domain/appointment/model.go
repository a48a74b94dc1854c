package appointment

import (
	"strings"
	"time"

	"github.com/portal/portal/internal/platform/apperr"
)

// Appointment is a scheduled visit between a patient and a provider.
// The patient is always the authenticated caller.
type Appointment struct {
	ID          int64     `db:"id" json:"id"`
	PatientID   int64     `db:"patient_id" json:"patient_id"`
	ProviderID  int64     `db:"provider_id" json:"provider_id"`
	DateTime    time.Time `db:"date_time" json:"date_time"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// CreateAppointmentInput is the booking payload. The patient id comes
// from the request principal, never from the body.
type CreateAppointmentInput struct {
	ProviderID  int64     `json:"provider_id"`
	DateTime    time.Time `json:"date_time"`
	Description string    `json:"description"`
}

func (in *CreateAppointmentInput) Validate() error {
	in.Description = strings.TrimSpace(in.Description)

	if in.ProviderID <= 0 {
		return apperr.Validationf("provider_id is required")
	}
	if in.DateTime.IsZero() {
		return apperr.Validationf("date_time is required")
	}
	if in.Description == "" {
		return apperr.Validationf("description is required")
	}
	return nil
}
