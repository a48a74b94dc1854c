package medicalrecord

import (
	"strings"
	"time"

	"github.com/portal/portal/internal/platform/apperr"
)

// MedicalRecord is a document attached to the patient's chart. The
// document body is stored inline as text.
type MedicalRecord struct {
	ID         int64     `db:"id" json:"id"`
	PatientID  int64     `db:"patient_id" json:"patient_id"`
	Document   string    `db:"document" json:"document"`
	UploadDate time.Time `db:"upload_date" json:"upload_date"`
}

// CreateMedicalRecordInput is the upload payload. The patient id comes
// from the request principal.
type CreateMedicalRecordInput struct {
	Document string `json:"document"`
}

func (in *CreateMedicalRecordInput) Validate() error {
	if strings.TrimSpace(in.Document) == "" {
		return apperr.Validationf("document is required")
	}
	return nil
}
