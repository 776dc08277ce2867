package grpc

import (
	"context"
	"net"

	"github.com/mlajnef/rpc-messenger/internal/logging"
	pb "github.com/mlajnef/rpc-messenger/internal/proto"
	"github.com/mlajnef/rpc-messenger/internal/server/groups"
	"github.com/mlajnef/rpc-messenger/internal/server/messages"
	"google.golang.org/grpc"
)

// UserService is the slice of the credential store and presence tracker
// the façade needs.
type UserService interface {
	Register(ctx context.Context, username, password string) error
	Authenticate(ctx context.Context, username, password string) (bool, error)
	Status(ctx context.Context, username string) (string, error)
}

// GroupService is the group registry surface. It also satisfies
// messages.MemberResolver, so the façade hands it straight to the
// message service for fan-out.
type GroupService interface {
	Create(ctx context.Context, name, owner string) error
	AddMember(ctx context.Context, caller, name, member string) error
	RemoveMember(ctx context.Context, caller, name, member string) error
	Leave(ctx context.Context, username, name string) error
	Members(ctx context.Context, name string) ([]string, error)
	Exists(ctx context.Context, name string) (bool, error)
	Details(ctx context.Context, name string) (*groups.Details, error)
	GroupsFor(ctx context.Context, username string) ([]string, error)
}

// MessageService is the store-and-forward buffer surface.
type MessageService interface {
	Produce(ctx context.Context, sender, recipient, content, group string) error
	Peek(ctx context.Context, recipient string) ([]*messages.Message, error)
	Acknowledge(ctx context.Context, recipient string, ids []string) (int64, error)
	SendToGroup(ctx context.Context, resolver messages.MemberResolver, sender, group, content string) (int, error)
}

type GRPCServer struct {
	pb.UnimplementedRelayServiceServer
	address  string
	users    UserService
	groups   GroupService
	messages MessageService
	logger   logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, us UserService, gs GroupService, ms MessageService) (*GRPCServer, error) {
	return &GRPCServer{
		address:  a,
		logger:   l.With("module", "grpc_server"),
		users:    us,
		groups:   gs,
		messages: ms,
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer()

	pb.RegisterRelayServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
