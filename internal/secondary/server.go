package secondary

import (
	"context"
	"errors"
	"net"

	"github.com/mlajnef/rpc-messenger/internal/common"
	"github.com/mlajnef/rpc-messenger/internal/logging"
	pb "github.com/mlajnef/rpc-messenger/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	codeOK            = "ok"
	codeAlreadyExists = "already_exists"
)

// GRPCServer answers the relay's replication calls. Replayed creations
// are reported with a duplicate code, never a fault, so the forwarder
// can stay quiet about them.
type GRPCServer struct {
	pb.UnimplementedSecondaryStoreServer
	address string
	repo    Repository
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, repo Repository) (*GRPCServer, error) {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "secondary_grpc_server"),
		repo:    repo,
	}, nil
}

func (s *GRPCServer) CreateUser(ctx context.Context, req *pb.CreateUserRequest) (*pb.ReplicaOutcome, error) {

	err := s.repo.CreateUser(ctx, req.Username, req.PasswordHash)

	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return &pb.ReplicaOutcome{Code: codeAlreadyExists, Message: "Utilisateur déjà existant"}, nil
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.ReplicaOutcome{Code: codeOK, Message: "Utilisateur enregistré"}, nil
}

func (s *GRPCServer) StoreGroup(ctx context.Context, req *pb.StoreGroupRequest) (*pb.ReplicaOutcome, error) {

	err := s.repo.StoreGroup(ctx, req.Name, req.Owner)

	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return &pb.ReplicaOutcome{Code: codeAlreadyExists, Message: "Groupe déjà existant"}, nil
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.ReplicaOutcome{Code: codeOK, Message: "Groupe enregistré"}, nil
}

func (s *GRPCServer) StoreMessage(ctx context.Context, req *pb.StoreMessageRequest) (*pb.ReplicaOutcome, error) {

	err := s.repo.StoreMessage(ctx, req.Sender, req.Recipient, req.Content, req.Timestamp)

	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.ReplicaOutcome{Code: codeOK, Message: "Message enregistré"}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer()

	pb.RegisterSecondaryStoreServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping secondary store server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting secondary store server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
