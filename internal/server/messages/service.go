package messages

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mlajnef/rpc-messenger/internal/cryptox"
	"github.com/mlajnef/rpc-messenger/internal/logging"
	"github.com/mlajnef/rpc-messenger/internal/server/replication"
)

// Toucher refreshes a user's last-seen mark; reading the inbox counts
// as activity.
type Toucher interface {
	Touch(ctx context.Context, username string) error
}

// MemberResolver supplies the roster for group fan-out.
type MemberResolver interface {
	Members(ctx context.Context, name string) ([]string, error)
}

// Service is the store-and-forward message buffer. Content is encrypted
// before it touches the store and decrypted on the way back out; peeks
// leave the buffer intact until the recipient acknowledges.
type Service struct {
	repo   Repository
	cipher *cryptox.Cipher
	users  Toucher
	sink   replication.Sink
	logger logging.Logger
	now    func() time.Time
}

func NewService(repo Repository, cipher *cryptox.Cipher, users Toucher, sink replication.Sink, logger logging.Logger) *Service {
	return &Service{
		repo:   repo,
		cipher: cipher,
		users:  users,
		sink:   sink,
		logger: logger.With("module", "messages"),
		now:    time.Now,
	}
}

// Produce buffers one message for recipient. The recipient is not
// checked against the credential store; messages to unknown names
// simply sit unread. The replica receives the ciphertext, never the
// plaintext.
func (s *Service) Produce(ctx context.Context, sender, recipient, content, group string) error {
	sealed, err := s.cipher.Encrypt(content)
	if err != nil {
		return fmt.Errorf("error encrypting message: %w", err)
	}

	m := &Message{
		ID:        uuid.NewString(),
		Sender:    sender,
		Recipient: recipient,
		Content:   sealed,
		Group:     group,
		Timestamp: s.now().UTC(),
	}

	if err := s.repo.Insert(ctx, m); err != nil {
		return fmt.Errorf("error storing message: %w", err)
	}

	s.sink.MessageProduced(sender, recipient, sealed, m.Timestamp.Format(time.RFC3339Nano))
	return nil
}

// Peek returns the recipient's buffer without consuming it, decrypted.
// Reading the inbox refreshes the recipient's presence. Rows that fail
// to decrypt are dropped from the response rather than failing the
// whole read.
func (s *Service) Peek(ctx context.Context, recipient string) ([]*Message, error) {
	if err := s.users.Touch(ctx, recipient); err != nil {
		return nil, fmt.Errorf("error refreshing presence: %w", err)
	}

	stored, err := s.repo.ListByRecipient(ctx, recipient)
	if err != nil {
		return nil, fmt.Errorf("error listing messages: %w", err)
	}

	result := []*Message{}
	for _, m := range stored {
		plain, err := s.cipher.Decrypt(m.Content)
		if err != nil {
			s.logger.Warn(ctx, "undecryptable message skipped", "id", m.ID, "error", err)
			continue
		}
		out := *m
		out.Content = plain
		result = append(result, &out)
	}

	return result, nil
}

// Acknowledge deletes the given ids from the recipient's buffer and
// returns how many were actually removed. Malformed ids are skipped,
// not rejected, so one bad id never blocks the rest of the batch.
func (s *Service) Acknowledge(ctx context.Context, recipient string, ids []string) (int64, error) {
	parsed := []uuid.UUID{}
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			s.logger.Debug(ctx, "malformed message id skipped", "id", raw)
			continue
		}
		parsed = append(parsed, id)
	}

	if len(parsed) == 0 {
		return 0, nil
	}

	deleted, err := s.repo.Delete(ctx, recipient, parsed)
	if err != nil {
		return 0, fmt.Errorf("error deleting messages: %w", err)
	}

	return deleted, nil
}

// SendToGroup fans the message out to every member except the sender
// and returns the number of copies delivered. One failed copy is logged
// and skipped; the rest of the roster still gets theirs.
func (s *Service) SendToGroup(ctx context.Context, resolver MemberResolver, sender, group, content string) (int, error) {
	members, err := resolver.Members(ctx, group)
	if err != nil {
		return 0, fmt.Errorf("error resolving members: %w", err)
	}

	delivered := 0
	for _, member := range members {
		if member == sender {
			continue
		}
		if err := s.Produce(ctx, sender, member, content, group); err != nil {
			s.logger.Warn(ctx, "group fan-out copy failed", "group", group, "recipient", member, "error", err)
			continue
		}
		delivered++
	}

	return delivered, nil
}
