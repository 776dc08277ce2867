package groups

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mlajnef/rpc-messenger/internal/common"
	"github.com/mlajnef/rpc-messenger/internal/dbx"
)

const pgUniqueViolation = "23505"

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, name, owner string) error {
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO groups (name, owner) VALUES ($1, $2)`, name, owner); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO group_members (group_name, username) VALUES ($1, $2)`, name, owner)
		return err
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return common.ErrAlreadyExists
		}
		return fmt.Errorf("error performing sql request: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, name string) (*Group, error) {
	query :=
		`SELECT name, owner FROM groups
		 WHERE name = $1
		 `

	group := &Group{}
	err := r.db.QueryRowContext(ctx, query, name).Scan(&group.Name, &group.Owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return group, nil
}

func (r *PostgresRepository) AddMember(ctx context.Context, name, member string) (bool, error) {
	// ON CONFLICT keeps the insert a single atomic statement: two
	// concurrent adds both land, duplicates report rows=0.
	query :=
		`INSERT INTO group_members (group_name, username)
		 VALUES ($1, $2)
		 ON CONFLICT DO NOTHING
		 `

	res, err := r.db.ExecContext(ctx, query, name, member)
	if err != nil {
		return false, fmt.Errorf("error performing sql request: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("error reading rows affected: %w", err)
	}

	return rows > 0, nil
}

func (r *PostgresRepository) RemoveMember(ctx context.Context, name, member string) (bool, error) {
	query :=
		`DELETE FROM group_members
		 WHERE group_name = $1 AND username = $2
		 `

	res, err := r.db.ExecContext(ctx, query, name, member)
	if err != nil {
		return false, fmt.Errorf("error performing sql request: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("error reading rows affected: %w", err)
	}

	return rows > 0, nil
}

func (r *PostgresRepository) Members(ctx context.Context, name string) ([]string, error) {
	query :=
		`SELECT username FROM group_members
		 WHERE group_name = $1
		 ORDER BY joined_at, username
		 `

	rows, err := r.db.QueryContext(ctx, query, name)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	members := []string{}
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return members, nil
}

func (r *PostgresRepository) Exists(ctx context.Context, name string) (bool, error) {
	query :=
		`SELECT EXISTS (SELECT 1 FROM groups WHERE name = $1)
		 `

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("error performing sql request: %w", err)
	}

	return exists, nil
}

func (r *PostgresRepository) GroupsFor(ctx context.Context, username string) ([]string, error) {
	query :=
		`SELECT group_name FROM group_members
		 WHERE username = $1
		 ORDER BY group_name
		 `

	rows, err := r.db.QueryContext(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		names = append(names, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return names, nil
}
