package message

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Send records a message from the authenticated caller to the
// recipient named in the input.
func (s *Service) Send(ctx context.Context, senderID int64, in *CreateMessageInput) (*Message, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	m := &Message{
		SenderID:    senderID,
		RecipientID: in.RecipientID,
		Content:     in.Content,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Message, error) {
	return s.repo.GetByID(ctx, id)
}

// ListByParticipant returns messages the user sent or received.
func (s *Service) ListByParticipant(ctx context.Context, userID int64, limit, offset int) ([]*Message, int, error) {
	return s.repo.ListByParticipant(ctx, userID, limit, offset)
}
