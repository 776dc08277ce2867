// Package secondary implements the replica store: a separate database
// that receives best-effort copies of user creations, group creations
// and produced messages from the relay.
package secondary

import "context"

type Repository interface {
	// CreateUser returns common.ErrAlreadyExists for a replayed
	// creation.
	CreateUser(ctx context.Context, username, passwordHash string) error

	// StoreGroup returns common.ErrAlreadyExists for a replayed
	// creation.
	StoreGroup(ctx context.Context, name, owner string) error

	// StoreMessage appends one copy; replays produce duplicate rows,
	// acceptable for an advisory replica.
	StoreMessage(ctx context.Context, sender, recipient, content, timestamp string) error
}
