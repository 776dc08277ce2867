package secondary

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mlajnef/rpc-messenger/internal/common"
)

const pgUniqueViolation = "23505"

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateUser(ctx context.Context, username, passwordHash string) error {
	query :=
		`INSERT INTO users (username, password)
		 VALUES ($1, $2)
		 `

	_, err := r.db.ExecContext(ctx, query, username, passwordHash)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return common.ErrAlreadyExists
		}
		return fmt.Errorf("error performing sql request: %w", err)
	}

	return nil
}

func (r *PostgresRepository) StoreGroup(ctx context.Context, name, owner string) error {
	query :=
		`INSERT INTO chat_groups (name, owner)
		 VALUES ($1, $2)
		 `

	_, err := r.db.ExecContext(ctx, query, name, owner)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return common.ErrAlreadyExists
		}
		return fmt.Errorf("error performing sql request: %w", err)
	}

	return nil
}

func (r *PostgresRepository) StoreMessage(ctx context.Context, sender, recipient, content, timestamp string) error {
	query :=
		`INSERT INTO messages (sender, recipient, content, sent_at)
		 VALUES ($1, $2, $3, $4)
		 `

	_, err := r.db.ExecContext(ctx, query, sender, recipient, content, timestamp)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	return nil
}
