package sqlite

import (
	"context"

	"github.com/murmurapp/murmur/internal/domain"
)

type messagesRepo struct {
	q querier
}

func (r *messagesRepo) AppendMessage(ctx context.Context, m domain.Message) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO messages (id, user_id, content, created_at)
		 VALUES (?, ?, ?, ?)`,
		m.ID, m.UserID, m.Content, m.CreatedAt.UTC())
	return mapConstraint(err)
}

func (r *messagesRepo) ListMessagesSortedDesc(ctx context.Context, userID string) ([]domain.Message, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, user_id, content, created_at FROM messages
		 WHERE user_id = ?
		 ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []domain.Message{}
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.UserID, &m.Content, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// RemoveMessageByID is scoped to the owner: a messageID belonging to
// another user deletes nothing and reports not found.
func (r *messagesRepo) RemoveMessageByID(ctx context.Context, userID, messageID string) error {
	res, err := r.q.ExecContext(ctx,
		`DELETE FROM messages WHERE id = ? AND user_id = ?`,
		messageID, userID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}
