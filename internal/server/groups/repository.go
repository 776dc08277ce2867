package groups

import "context"

type Repository interface {
	// Create persists the group and the owner's membership in one
	// transaction. Returns common.ErrAlreadyExists when the name is
	// taken.
	Create(ctx context.Context, name, owner string) error

	// Get returns common.ErrNotFound for unknown groups.
	Get(ctx context.Context, name string) (*Group, error)

	// AddMember inserts one membership row. The second return value is
	// false when the member was already present. A single atomic
	// statement, so concurrent adds never lose each other.
	AddMember(ctx context.Context, name, member string) (bool, error)

	// RemoveMember deletes one membership row; the second return value
	// is false when there was nothing to delete.
	RemoveMember(ctx context.Context, name, member string) (bool, error)

	// Members lists usernames in join order; empty for unknown groups.
	Members(ctx context.Context, name string) ([]string, error)

	Exists(ctx context.Context, name string) (bool, error)

	// GroupsFor lists the names of groups the user belongs to.
	GroupsFor(ctx context.Context, username string) ([]string, error)
}
