package message

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/portal/portal/internal/platform/apperr"
	"github.com/portal/portal/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const messageCols = `id, sender_id, recipient_id, content, timestamp`

func scanMessage(row pgx.Row) (*Message, error) {
	var m Message
	err := row.Scan(&m.ID, &m.SenderID, &m.RecipientID, &m.Content, &m.Timestamp)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repoPG) Create(ctx context.Context, m *Message) error {
	row := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO messages (sender_id, recipient_id, content)
		VALUES ($1,$2,$3)
		RETURNING id, timestamp`,
		m.SenderID, m.RecipientID, m.Content)
	if err := row.Scan(&m.ID, &m.Timestamp); err != nil {
		return apperr.FromPG("create message", err)
	}
	return nil
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Message, error) {
	m, err := scanMessage(r.conn(ctx).QueryRow(ctx,
		`SELECT `+messageCols+` FROM messages WHERE id = $1`, id))
	if err != nil {
		return nil, apperr.FromPG("get message", err)
	}
	return m, nil
}

func (r *repoPG) ListByParticipant(ctx context.Context, userID int64, limit, offset int) ([]*Message, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM messages WHERE sender_id = $1 OR recipient_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, apperr.FromPG("count messages", err)
	}
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+messageCols+` FROM messages
		WHERE sender_id = $1 OR recipient_id = $1
		ORDER BY timestamp DESC
		LIMIT $2 OFFSET $3`, userID, limit, offset)
	if err != nil {
		return nil, 0, apperr.FromPG("list messages", err)
	}
	defer rows.Close()
	var items []*Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, 0, apperr.FromPG("scan message", err)
		}
		items = append(items, m)
	}
	return items, total, nil
}
