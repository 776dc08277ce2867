package groups

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mlajnef/rpc-messenger/internal/common"
	"github.com/mlajnef/rpc-messenger/internal/server/replication"
)

// Service owns the group registry rules: the creator becomes owner and
// first member, and only the owner may change the roster.
type Service struct {
	repo Repository
	sink replication.Sink
}

func NewService(repo Repository, sink replication.Sink) *Service {
	return &Service{repo: repo, sink: sink}
}

// Create registers the group with owner as its first member and forwards
// the creation to the secondary store. Membership changes after this
// point are not replicated.
func (s *Service) Create(ctx context.Context, name, owner string) error {
	if err := s.repo.Create(ctx, name, owner); err != nil {
		return err
	}
	s.sink.GroupCreated(name, owner)
	return nil
}

// AddMember adds member to the group. Only the owner may do this; an
// unknown group and a non-owner caller both come back as
// common.ErrForbidden so the response does not leak which groups exist.
func (s *Service) AddMember(ctx context.Context, caller, name, member string) error {
	if _, err := s.checkOwner(ctx, caller, name); err != nil {
		return err
	}

	added, err := s.repo.AddMember(ctx, name, member)
	if err != nil {
		return err
	}
	if !added {
		return common.ErrAlreadyMember
	}
	return nil
}

// RemoveMember removes member from the group, owner only. Removing an
// absent member is a no-op, not a rejection. The owner's own membership
// can never be removed: the roster always contains the owner.
func (s *Service) RemoveMember(ctx context.Context, caller, name, member string) error {
	group, err := s.checkOwner(ctx, caller, name)
	if err != nil {
		return err
	}
	if member == group.Owner {
		return common.ErrForbidden
	}

	_, err = s.repo.RemoveMember(ctx, name, member)
	return err
}

// Leave removes the caller's own membership. The owner cannot leave, the
// group would be orphaned.
func (s *Service) Leave(ctx context.Context, username, name string) error {
	group, err := s.repo.Get(ctx, name)
	if err != nil {
		return err
	}
	if group.Owner == username {
		return common.ErrOwnerCannotLeave
	}

	removed, err := s.repo.RemoveMember(ctx, name, username)
	if err != nil {
		return err
	}
	if !removed {
		return common.ErrNotMember
	}
	return nil
}

// Members returns the roster in join order, dropping blank usernames
// that may have crept into old rows.
func (s *Service) Members(ctx context.Context, name string) ([]string, error) {
	members, err := s.repo.Members(ctx, name)
	if err != nil {
		return nil, err
	}

	cleaned := []string{}
	for _, m := range members {
		if strings.TrimSpace(m) == "" {
			continue
		}
		cleaned = append(cleaned, m)
	}
	return cleaned, nil
}

func (s *Service) Exists(ctx context.Context, name string) (bool, error) {
	return s.repo.Exists(ctx, name)
}

// Details returns the group together with its roster, or
// common.ErrNotFound for unknown names.
func (s *Service) Details(ctx context.Context, name string) (*Details, error) {
	group, err := s.repo.Get(ctx, name)
	if err != nil {
		return nil, err
	}

	members, err := s.Members(ctx, name)
	if err != nil {
		return nil, err
	}

	return &Details{Name: group.Name, Owner: group.Owner, Members: members}, nil
}

func (s *Service) GroupsFor(ctx context.Context, username string) ([]string, error) {
	return s.repo.GroupsFor(ctx, username)
}

func (s *Service) checkOwner(ctx context.Context, caller, name string) (*Group, error) {
	group, err := s.repo.Get(ctx, name)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrForbidden
		}
		return nil, fmt.Errorf("error loading group: %w", err)
	}
	if group.Owner != caller {
		return nil, common.ErrForbidden
	}
	return group, nil
}
