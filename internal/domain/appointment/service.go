package appointment

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create books an appointment for the given patient, who is always the
// authenticated caller.
func (s *Service) Create(ctx context.Context, patientID int64, in *CreateAppointmentInput) (*Appointment, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	a := &Appointment{
		PatientID:   patientID,
		ProviderID:  in.ProviderID,
		DateTime:    in.DateTime,
		Description: in.Description,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByPatient(ctx context.Context, patientID int64, limit, offset int) ([]*Appointment, int, error) {
	return s.repo.ListByPatient(ctx, patientID, limit, offset)
}
