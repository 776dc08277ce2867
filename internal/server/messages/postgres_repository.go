package messages

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/mlajnef/rpc-messenger/internal/dbx"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, m *Message) error {
	query :=
		`INSERT INTO messages (id, sender, recipient, content, group_name, created_at)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
		 `

	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.Sender, m.Recipient, m.Content, m.Group, m.Timestamp)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	return nil
}

func (r *PostgresRepository) ListByRecipient(ctx context.Context, recipient string) ([]*Message, error) {
	query :=
		`SELECT id, sender, recipient, content, COALESCE(group_name, ''), created_at
		 FROM messages
		 WHERE recipient = $1
		 ORDER BY created_at, id
		 `

	rows, err := r.db.QueryContext(ctx, query, recipient)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	result := []*Message{}
	for rows.Next() {
		m := &Message{}
		if err := rows.Scan(&m.ID, &m.Sender, &m.Recipient, &m.Content, &m.Group, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, recipient string, ids []uuid.UUID) (int64, error) {
	var deleted int64

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, id := range ids {
			res, err := tx.ExecContext(ctx,
				`DELETE FROM messages WHERE id = $1 AND recipient = $2`, id.String(), recipient)
			if err != nil {
				return err
			}
			rows, err := res.RowsAffected()
			if err != nil {
				return err
			}
			deleted += rows
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("error performing sql request: %w", err)
	}

	return deleted, nil
}
