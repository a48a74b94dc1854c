package message

import "context"

type Repository interface {
	Create(ctx context.Context, m *Message) error
	GetByID(ctx context.Context, id int64) (*Message, error)
	ListByParticipant(ctx context.Context, userID int64, limit, offset int) ([]*Message, int, error)
}
