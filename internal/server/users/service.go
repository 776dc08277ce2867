package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mlajnef/rpc-messenger/internal/common"
	"github.com/mlajnef/rpc-messenger/internal/server/replication"
)

// onlineWindow is how recent the last activity must be for a user to
// count as online.
const onlineWindow = 30 * time.Second

// Presence strings shown to other users. The code surface for callers
// is the status string itself; it is derived, never stored.
const (
	statusOffline      = "Hors ligne"
	statusOnline       = "En ligne"
	statusSeenAtPrefix = "Vu à "
)

// Service implements the credential store and the presence tracker.
type Service struct {
	repo Repository
	sink replication.Sink
	now  func() time.Time
}

func NewService(repo Repository, sink replication.Sink) *Service {
	return &Service{repo: repo, sink: sink, now: time.Now}
}

// Register creates the credential record and forwards a replica of it
// (username and hash only — the plaintext password never leaves this
// method). A taken username is reported as common.ErrAlreadyExists, a
// domain rejection rather than a fault.
func (s *Service) Register(ctx context.Context, username, password string) error {
	hash, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	if err := s.repo.Create(ctx, &User{Username: username, PasswordHash: hash}); err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return common.ErrAlreadyExists
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	s.sink.UserCreated(username, hash)
	return nil
}

// Authenticate returns false for unknown users and wrong passwords,
// never an error; errors are reserved for store faults. A successful
// authentication refreshes last_seen.
func (s *Service) Authenticate(ctx context.Context, username, password string) (bool, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	if !VerifyPassword(user.PasswordHash, password) {
		return false, nil
	}

	if err := s.repo.Touch(ctx, username, s.now().UTC()); err != nil {
		return false, err
	}

	return true, nil
}

// Status derives presence from last_seen: never-seen or unknown users
// are offline, activity within the online window means online, anything
// older is reported as the last-seen time of day.
func (s *Service) Status(ctx context.Context, username string) (string, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return statusOffline, nil
		}
		return "", err
	}

	if user.LastSeen == nil {
		return statusOffline, nil
	}

	if s.now().UTC().Sub(user.LastSeen.UTC()) < onlineWindow {
		return statusOnline, nil
	}

	return statusSeenAtPrefix + user.LastSeen.Local().Format("15:04"), nil
}

// Touch refreshes last_seen; the message store calls it on every inbox
// peek so polling counts as activity.
func (s *Service) Touch(ctx context.Context, username string) error {
	return s.repo.Touch(ctx, username, s.now().UTC())
}
