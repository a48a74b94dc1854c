package medicalrecord

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Upload attaches a document to the authenticated caller's chart.
func (s *Service) Upload(ctx context.Context, patientID int64, in *CreateMedicalRecordInput) (*MedicalRecord, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	rec := &MedicalRecord{
		PatientID: patientID,
		Document:  in.Document,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*MedicalRecord, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByPatient(ctx context.Context, patientID int64, limit, offset int) ([]*MedicalRecord, int, error) {
	return s.repo.ListByPatient(ctx, patientID, limit, offset)
}
