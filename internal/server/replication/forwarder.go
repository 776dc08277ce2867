// Package replication pushes a best-effort copy of every mutating
// operation to the secondary store. The replica is advisory: a forward
// either completes within its timeout or is abandoned, and no failure
// ever reaches the caller of the primary operation. Nothing is retried
// or queued.
package replication

import (
	"context"
	"time"

	"github.com/mlajnef/rpc-messenger/internal/logging"
	pb "github.com/mlajnef/rpc-messenger/internal/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// codeAlreadyExists is the replica's answer to a replayed creation.
const codeAlreadyExists = "already_exists"

// Sink receives replication events after the primary write has
// committed. Implementations must not block the caller.
type Sink interface {
	UserCreated(username, passwordHash string)
	GroupCreated(name, owner string)
	MessageProduced(sender, recipient, content, timestamp string)
}

// Forwarder is the gRPC-backed Sink. Each event runs in its own
// goroutine under a bounded-timeout context.
type Forwarder struct {
	client  pb.SecondaryStoreClient
	timeout time.Duration
	logger  logging.Logger
}

func NewForwarder(client pb.SecondaryStoreClient, timeout time.Duration, logger logging.Logger) *Forwarder {
	return &Forwarder{
		client:  client,
		timeout: timeout,
		logger:  logger.With("module", "replication"),
	}
}

func (f *Forwarder) UserCreated(username, passwordHash string) {
	go f.forward("create_user", func(ctx context.Context) (*pb.ReplicaOutcome, error) {
		return f.client.CreateUser(ctx, &pb.CreateUserRequest{Username: username, PasswordHash: passwordHash})
	})
}

func (f *Forwarder) GroupCreated(name, owner string) {
	go f.forward("store_group", func(ctx context.Context) (*pb.ReplicaOutcome, error) {
		return f.client.StoreGroup(ctx, &pb.StoreGroupRequest{Name: name, Owner: owner})
	})
}

func (f *Forwarder) MessageProduced(sender, recipient, content, timestamp string) {
	go f.forward("store_message", func(ctx context.Context) (*pb.ReplicaOutcome, error) {
		return f.client.StoreMessage(ctx, &pb.StoreMessageRequest{
			Sender:    sender,
			Recipient: recipient,
			Content:   content,
			Timestamp: timestamp,
		})
	})
}

// forward runs one replica call to completion or abandonment. Duplicate
// keys on the secondary are a normal consequence of replays and are
// logged at debug level; everything else is a warning and nothing more.
func (f *Forwarder) forward(op string, call func(ctx context.Context) (*pb.ReplicaOutcome, error)) {
	ctx, cancel := context.WithTimeout(context.Background(), f.timeout)
	defer cancel()

	out, err := call(ctx)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			f.logger.Debug(ctx, "replica already present", "op", op)
			return
		}
		f.logger.Warn(ctx, "replication failed", "op", op, "error", err)
		return
	}

	if out.GetCode() == codeAlreadyExists {
		f.logger.Debug(ctx, "replica already present", "op", op)
	}
}
