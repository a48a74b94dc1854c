package medicalrecord

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/portal/portal/internal/platform/apperr"
)

type mockRepo struct {
	items  map[int64]*MedicalRecord
	nextID int64
}

func newMockRepo() *mockRepo {
	return &mockRepo{items: make(map[int64]*MedicalRecord), nextID: 1}
}

func (m *mockRepo) Create(_ context.Context, rec *MedicalRecord) error {
	rec.ID = m.nextID
	m.nextID++
	rec.UploadDate = time.Now()
	m.items[rec.ID] = rec
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id int64) (*MedicalRecord, error) {
	rec, ok := m.items[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return rec, nil
}

func (m *mockRepo) ListByPatient(_ context.Context, patientID int64, limit, offset int) ([]*MedicalRecord, int, error) {
	var all []*MedicalRecord
	for _, rec := range m.items {
		if rec.PatientID == patientID {
			all = append(all, rec)
		}
	}
	total := len(all)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func newTestService() *Service {
	return NewService(newMockRepo())
}

func TestService_Upload(t *testing.T) {
	svc := newTestService()
	rec, err := svc.Upload(context.Background(), 7, &CreateMedicalRecordInput{Document: "lab results"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.PatientID != 7 {
		t.Errorf("patient_id = %d, want caller id 7", rec.PatientID)
	}
	if rec.UploadDate.IsZero() {
		t.Error("expected upload_date assigned at insert")
	}
}

func TestService_Upload_BlankDocument(t *testing.T) {
	svc := newTestService()
	_, err := svc.Upload(context.Background(), 7, &CreateMedicalRecordInput{Document: "  "})
	if !apperr.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestService_Get_NotFound(t *testing.T) {
	svc := newTestService()
	_, err := svc.Get(context.Background(), 3)
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestService_ListByPatient_ScopedToCaller(t *testing.T) {
	svc := newTestService()
	for i := 0; i < 2; i++ {
		if _, err := svc.Upload(context.Background(), 7, &CreateMedicalRecordInput{Document: "doc"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if _, err := svc.Upload(context.Background(), 8, &CreateMedicalRecordInput{Document: "other"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items, total, err := svc.ListByPatient(context.Background(), 7, 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 2 || len(items) != 2 {
		t.Errorf("got %d items (total %d), want 2", len(items), total)
	}
}
