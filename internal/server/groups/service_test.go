package groups

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/mlajnef/rpc-messenger/internal/common"
)

// ---- fakes ----

type fakeRepo struct {
	createErr error
	created   [][2]string

	getOut *Group
	getErr error

	addOut bool
	addErr error
	added  [][2]string

	removeOut bool
	removeErr error
	removed   [][2]string

	membersOut []string
	membersErr error

	existsOut bool

	groupsOut []string
}

func (f *fakeRepo) Create(ctx context.Context, name, owner string) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, [2]string{name, owner})
	return nil
}

func (f *fakeRepo) Get(ctx context.Context, name string) (*Group, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeRepo) AddMember(ctx context.Context, name, member string) (bool, error) {
	if f.addErr != nil {
		return false, f.addErr
	}
	f.added = append(f.added, [2]string{name, member})
	return f.addOut, nil
}

func (f *fakeRepo) RemoveMember(ctx context.Context, name, member string) (bool, error) {
	if f.removeErr != nil {
		return false, f.removeErr
	}
	f.removed = append(f.removed, [2]string{name, member})
	return f.removeOut, nil
}

func (f *fakeRepo) Members(ctx context.Context, name string) ([]string, error) {
	if f.membersErr != nil {
		return nil, f.membersErr
	}
	return f.membersOut, nil
}

func (f *fakeRepo) Exists(ctx context.Context, name string) (bool, error) {
	return f.existsOut, nil
}

func (f *fakeRepo) GroupsFor(ctx context.Context, username string) ([]string, error) {
	return f.groupsOut, nil
}

type recordingSink struct {
	mu     sync.Mutex
	groups [][2]string
}

func (r *recordingSink) UserCreated(string, string) {}
func (r *recordingSink) GroupCreated(name, owner string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.groups = append(r.groups, [2]string{name, owner})
}
func (r *recordingSink) MessageProduced(string, string, string, string) {}

// ---- tests ----

func TestCreate_ReplicatesCreation(t *testing.T) {
	repo := &fakeRepo{}
	sink := &recordingSink{}
	s := NewService(repo, sink)

	if err := s.Create(context.Background(), "devs", "alice"); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if len(repo.created) != 1 {
		t.Fatalf("expected one create, got %d", len(repo.created))
	}
	if len(sink.groups) != 1 || sink.groups[0] != [2]string{"devs", "alice"} {
		t.Errorf("expected one replication event for devs/alice, got %v", sink.groups)
	}
}

func TestCreate_DuplicateNotReplicated(t *testing.T) {
	repo := &fakeRepo{createErr: common.ErrAlreadyExists}
	sink := &recordingSink{}
	s := NewService(repo, sink)

	err := s.Create(context.Background(), "devs", "alice")
	if !errors.Is(err, common.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	if len(sink.groups) != 0 {
		t.Error("duplicate creation must not be replicated")
	}
}

func TestAddMember_OwnerOnly(t *testing.T) {
	tests := []struct {
		name string
		repo *fakeRepo
		want error
	}{
		{"unknown group", &fakeRepo{getErr: common.ErrNotFound}, common.ErrForbidden},
		{"non-owner caller", &fakeRepo{getOut: &Group{Name: "devs", Owner: "bob"}}, common.ErrForbidden},
		{"already member", &fakeRepo{getOut: &Group{Name: "devs", Owner: "alice"}, addOut: false}, common.ErrAlreadyMember},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewService(tc.repo, &recordingSink{})
			err := s.AddMember(context.Background(), "alice", "devs", "carol")
			if !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestAddMember_Success(t *testing.T) {
	repo := &fakeRepo{getOut: &Group{Name: "devs", Owner: "alice"}, addOut: true}
	s := NewService(repo, &recordingSink{})

	if err := s.AddMember(context.Background(), "alice", "devs", "carol"); err != nil {
		t.Fatalf("AddMember error: %v", err)
	}
	if len(repo.added) != 1 || repo.added[0] != [2]string{"devs", "carol"} {
		t.Errorf("unexpected add calls %v", repo.added)
	}
}

func TestRemoveMember_AbsentMemberIsNoop(t *testing.T) {
	repo := &fakeRepo{getOut: &Group{Name: "devs", Owner: "alice"}, removeOut: false}
	s := NewService(repo, &recordingSink{})

	if err := s.RemoveMember(context.Background(), "alice", "devs", "ghost"); err != nil {
		t.Fatalf("removing an absent member must succeed, got %v", err)
	}
}

func TestRemoveMember_OwnerMembershipIsPermanent(t *testing.T) {
	repo := &fakeRepo{getOut: &Group{Name: "devs", Owner: "alice"}, removeOut: true}
	s := NewService(repo, &recordingSink{})

	err := s.RemoveMember(context.Background(), "alice", "devs", "alice")
	if !errors.Is(err, common.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if len(repo.removed) != 0 {
		t.Errorf("owner membership must never reach the store for deletion, got %v", repo.removed)
	}
}

func TestRemoveMember_NonOwnerForbidden(t *testing.T) {
	repo := &fakeRepo{getOut: &Group{Name: "devs", Owner: "alice"}, removeOut: true}
	s := NewService(repo, &recordingSink{})

	err := s.RemoveMember(context.Background(), "bob", "devs", "carol")
	if !errors.Is(err, common.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if len(repo.removed) != 0 {
		t.Error("forbidden call must not reach the store")
	}
}

func TestLeave(t *testing.T) {
	tests := []struct {
		name string
		repo *fakeRepo
		user string
		want error
	}{
		{"unknown group", &fakeRepo{getErr: common.ErrNotFound}, "bob", common.ErrNotFound},
		{"owner cannot leave", &fakeRepo{getOut: &Group{Name: "devs", Owner: "alice"}}, "alice", common.ErrOwnerCannotLeave},
		{"not a member", &fakeRepo{getOut: &Group{Name: "devs", Owner: "alice"}, removeOut: false}, "bob", common.ErrNotMember},
		{"member leaves", &fakeRepo{getOut: &Group{Name: "devs", Owner: "alice"}, removeOut: true}, "bob", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewService(tc.repo, &recordingSink{})
			err := s.Leave(context.Background(), tc.user, "devs")
			if !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestMembers_FiltersBlankNames(t *testing.T) {
	repo := &fakeRepo{membersOut: []string{"alice", "", "  ", "bob"}}
	s := NewService(repo, &recordingSink{})

	got, err := s.Members(context.Background(), "devs")
	if err != nil {
		t.Fatalf("Members error: %v", err)
	}
	if len(got) != 2 || got[0] != "alice" || got[1] != "bob" {
		t.Errorf("expected [alice bob], got %v", got)
	}
}

func TestDetails(t *testing.T) {
	repo := &fakeRepo{
		getOut:     &Group{Name: "devs", Owner: "alice"},
		membersOut: []string{"alice", "bob"},
	}
	s := NewService(repo, &recordingSink{})

	d, err := s.Details(context.Background(), "devs")
	if err != nil {
		t.Fatalf("Details error: %v", err)
	}
	if d.Name != "devs" || d.Owner != "alice" || len(d.Members) != 2 {
		t.Errorf("unexpected details %+v", d)
	}
}

func TestDetails_Unknown(t *testing.T) {
	s := NewService(&fakeRepo{getErr: common.ErrNotFound}, &recordingSink{})

	_, err := s.Details(context.Background(), "ghost")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
