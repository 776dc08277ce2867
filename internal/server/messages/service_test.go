package messages

import (
	"context"
	"crypto/rand"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mlajnef/rpc-messenger/internal/cryptox"
	"github.com/mlajnef/rpc-messenger/internal/logging"
)

// ---- fakes ----

type fakeRepo struct {
	mu        sync.Mutex
	insertErr error
	inserted  []*Message

	listOut []*Message
	listErr error

	deleteOut int64
	deleteIDs []uuid.UUID
}

func (f *fakeRepo) Insert(ctx context.Context, m *Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, m)
	return nil
}

func (f *fakeRepo) ListByRecipient(ctx context.Context, recipient string) ([]*Message, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakeRepo) Delete(ctx context.Context, recipient string, ids []uuid.UUID) (int64, error) {
	f.deleteIDs = ids
	return f.deleteOut, nil
}

type fakeToucher struct {
	touched []string
}

func (f *fakeToucher) Touch(ctx context.Context, username string) error {
	f.touched = append(f.touched, username)
	return nil
}

type recordingSink struct {
	mu       sync.Mutex
	messages [][4]string
}

func (r *recordingSink) UserCreated(string, string) {}
func (r *recordingSink) GroupCreated(string, string) {}
func (r *recordingSink) MessageProduced(sender, recipient, content, timestamp string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, [4]string{sender, recipient, content, timestamp})
}

type fakeResolver struct {
	out []string
	err error
}

func (f *fakeResolver) Members(ctx context.Context, name string) ([]string, error) {
	return f.out, f.err
}

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (l nopLogger) With(...any) logging.Logger          { return l }

func newTestCipher(t *testing.T) *cryptox.Cipher {
	t.Helper()
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		t.Fatalf("rand.Read error: %v", err)
	}
	c, err := cryptox.New(key)
	if err != nil {
		t.Fatalf("cryptox.New error: %v", err)
	}
	return c
}

func newTestService(t *testing.T, repo *fakeRepo, users *fakeToucher, sink *recordingSink) *Service {
	t.Helper()
	s := NewService(repo, newTestCipher(t), users, sink, nopLogger{})
	s.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	return s
}

// ---- tests ----

func TestProduce_EncryptsAndReplicates(t *testing.T) {
	repo := &fakeRepo{}
	sink := &recordingSink{}
	s := newTestService(t, repo, &fakeToucher{}, sink)

	if err := s.Produce(context.Background(), "alice", "bob", "secret plan", ""); err != nil {
		t.Fatalf("Produce error: %v", err)
	}

	if len(repo.inserted) != 1 {
		t.Fatalf("expected one insert, got %d", len(repo.inserted))
	}
	stored := repo.inserted[0]
	if stored.Content == "secret plan" || strings.Contains(stored.Content, "secret") {
		t.Error("stored content must be ciphertext")
	}
	if _, err := uuid.Parse(stored.ID); err != nil {
		t.Errorf("stored id is not a uuid: %q", stored.ID)
	}

	if len(sink.messages) != 1 {
		t.Fatalf("expected one replication event, got %d", len(sink.messages))
	}
	if sink.messages[0][2] != stored.Content {
		t.Error("replica must receive the ciphertext, not the plaintext")
	}
}

func TestProduce_InsertFailureNotReplicated(t *testing.T) {
	repo := &fakeRepo{insertErr: errors.New("db down")}
	sink := &recordingSink{}
	s := newTestService(t, repo, &fakeToucher{}, sink)

	if err := s.Produce(context.Background(), "alice", "bob", "x", ""); err == nil {
		t.Fatal("expected error")
	}
	if len(sink.messages) != 0 {
		t.Error("failed insert must not be replicated")
	}
}

func TestPeek_TouchesAndDecrypts(t *testing.T) {
	repo := &fakeRepo{}
	users := &fakeToucher{}
	sink := &recordingSink{}
	s := newTestService(t, repo, users, sink)

	if err := s.Produce(context.Background(), "alice", "bob", "hello bob", ""); err != nil {
		t.Fatalf("Produce error: %v", err)
	}
	repo.listOut = repo.inserted

	got, err := s.Peek(context.Background(), "bob")
	if err != nil {
		t.Fatalf("Peek error: %v", err)
	}

	if len(users.touched) != 1 || users.touched[0] != "bob" {
		t.Errorf("peek must refresh the recipient's presence, got %v", users.touched)
	}
	if len(got) != 1 || got[0].Content != "hello bob" {
		t.Fatalf("expected decrypted message, got %+v", got)
	}

	// A second peek returns the same buffer: nothing was consumed.
	again, err := s.Peek(context.Background(), "bob")
	if err != nil {
		t.Fatalf("second Peek error: %v", err)
	}
	if len(again) != 1 {
		t.Errorf("peek must not consume the buffer, got %d messages", len(again))
	}
}

func TestPeek_SkipsUndecryptableRows(t *testing.T) {
	repo := &fakeRepo{listOut: []*Message{
		{ID: uuid.NewString(), Sender: "a", Recipient: "bob", Content: "not-a-token"},
	}}
	s := newTestService(t, repo, &fakeToucher{}, &recordingSink{})

	got, err := s.Peek(context.Background(), "bob")
	if err != nil {
		t.Fatalf("Peek error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("undecryptable rows must be skipped, got %d", len(got))
	}
}

func TestAcknowledge_SkipsMalformedIDs(t *testing.T) {
	repo := &fakeRepo{deleteOut: 1}
	s := newTestService(t, repo, &fakeToucher{}, &recordingSink{})

	valid := uuid.NewString()
	deleted, err := s.Acknowledge(context.Background(), "bob", []string{"garbage", valid, ""})
	if err != nil {
		t.Fatalf("Acknowledge error: %v", err)
	}
	if deleted != 1 {
		t.Errorf("expected 1 deleted, got %d", deleted)
	}
	if len(repo.deleteIDs) != 1 || repo.deleteIDs[0].String() != valid {
		t.Errorf("expected only the valid id to reach the store, got %v", repo.deleteIDs)
	}
}

func TestAcknowledge_AllMalformedIsZero(t *testing.T) {
	repo := &fakeRepo{}
	s := newTestService(t, repo, &fakeToucher{}, &recordingSink{})

	deleted, err := s.Acknowledge(context.Background(), "bob", []string{"x", "y"})
	if err != nil {
		t.Fatalf("Acknowledge error: %v", err)
	}
	if deleted != 0 {
		t.Errorf("expected 0 deleted, got %d", deleted)
	}
	if repo.deleteIDs != nil {
		t.Error("store must not be called when no id parses")
	}
}

func TestSendToGroup_ExcludesSender(t *testing.T) {
	repo := &fakeRepo{}
	s := newTestService(t, repo, &fakeToucher{}, &recordingSink{})
	resolver := &fakeResolver{out: []string{"alice", "bob", "carol"}}

	n, err := s.SendToGroup(context.Background(), resolver, "alice", "devs", "standup?")
	if err != nil {
		t.Fatalf("SendToGroup error: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 copies, got %d", n)
	}

	recipients := map[string]bool{}
	for _, m := range repo.inserted {
		recipients[m.Recipient] = true
		if m.Group != "devs" {
			t.Errorf("fan-out copy must carry the group name, got %q", m.Group)
		}
	}
	if recipients["alice"] {
		t.Error("sender must not receive their own group message")
	}
	if !recipients["bob"] || !recipients["carol"] {
		t.Errorf("missing recipients: %v", recipients)
	}
}

func TestSendToGroup_CountsOnlySuccesses(t *testing.T) {
	repo := &failOnceRepo{failFor: "bob"}
	s := NewService(repo, newTestCipher(t), &fakeToucher{}, &recordingSink{}, nopLogger{})
	resolver := &fakeResolver{out: []string{"bob", "carol"}}

	n, err := s.SendToGroup(context.Background(), resolver, "alice", "devs", "hi")
	if err != nil {
		t.Fatalf("SendToGroup error: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 delivered copy, got %d", n)
	}
}

func TestSendToGroup_ResolverFailure(t *testing.T) {
	s := newTestService(t, &fakeRepo{}, &fakeToucher{}, &recordingSink{})
	resolver := &fakeResolver{err: errors.New("db down")}

	if _, err := s.SendToGroup(context.Background(), resolver, "alice", "devs", "hi"); err == nil {
		t.Fatal("expected error")
	}
}

// failOnceRepo rejects inserts addressed to failFor and accepts the rest.
type failOnceRepo struct {
	fakeRepo
	failFor string
}

func (f *failOnceRepo) Insert(ctx context.Context, m *Message) error {
	if m.Recipient == f.failFor {
		return errors.New("db down")
	}
	return f.fakeRepo.Insert(ctx, m)
}
