package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

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

func (r *PostgresRepository) Create(ctx context.Context, user *User) error {
	query :=
		`INSERT INTO users (username, password_hash)
		 VALUES ($1, $2)
		 `

	_, err := r.db.ExecContext(ctx, query, user.Username, user.PasswordHash)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return common.ErrAlreadyExists
		}
		return fmt.Errorf("error performing sql request: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*User, error) {
	query :=
		`SELECT username, password_hash, last_seen FROM users
		 WHERE username = $1
		 `

	user := &User{}
	var lastSeen sql.NullTime
	err := r.db.QueryRowContext(ctx, query, username).Scan(&user.Username, &user.PasswordHash, &lastSeen)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	if lastSeen.Valid {
		t := lastSeen.Time
		user.LastSeen = &t
	}

	return user, nil
}

func (r *PostgresRepository) Touch(ctx context.Context, username string, at time.Time) error {
	query :=
		`UPDATE users SET last_seen = $2
		 WHERE username = $1
		 `

	if _, err := r.db.ExecContext(ctx, query, username, at); err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	return nil
}
