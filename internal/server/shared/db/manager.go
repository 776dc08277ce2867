package db

import (
	"context"
	"database/sql"

	"github.com/mlajnef/rpc-messenger/internal/server/groups"
	"github.com/mlajnef/rpc-messenger/internal/server/messages"
	"github.com/mlajnef/rpc-messenger/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	Groups() groups.Repository
	Messages() messages.Repository
	Close() error
}
