package messages

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Insert(ctx context.Context, m *Message) error

	// ListByRecipient returns the recipient's buffer in arrival order
	// without consuming it.
	ListByRecipient(ctx context.Context, recipient string) ([]*Message, error)

	// Delete removes the given ids from the recipient's buffer and
	// reports how many rows went away. Ids belonging to other
	// recipients are left alone.
	Delete(ctx context.Context, recipient string, ids []uuid.UUID) (int64, error)
}
