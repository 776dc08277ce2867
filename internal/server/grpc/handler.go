package grpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mlajnef/rpc-messenger/internal/common"
	pb "github.com/mlajnef/rpc-messenger/internal/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Structured outcome codes. Clients branch on these; the message fields
// are display text only.
const (
	codeOK               = "ok"
	codeAlreadyExists    = "already_exists"
	codeForbidden        = "forbidden"
	codeAlreadyMember    = "already_member"
	codeNotMember        = "not_member"
	codeOwnerCannotLeave = "owner_cannot_leave"
	codeUnknownGroup     = "unknown_group"
)

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.OutcomeResponse, error) {

	err := s.users.Register(ctx, req.Username, req.Password)

	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return &pb.OutcomeResponse{Code: codeAlreadyExists, Message: "Utilisateur déjà existant"}, nil
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.Info(ctx, "Registered", "username", req.Username)
	return &pb.OutcomeResponse{Code: codeOK, Message: "Compte créé"}, nil
}

func (s *GRPCServer) Authenticate(ctx context.Context, req *pb.AuthenticateRequest) (*pb.AuthenticateResponse, error) {

	ok, err := s.users.Authenticate(ctx, req.Username, req.Password)

	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.AuthenticateResponse{Ok: ok}, nil
}

func (s *GRPCServer) GetUserStatus(ctx context.Context, req *pb.UserStatusRequest) (*pb.UserStatusResponse, error) {

	st, err := s.users.Status(ctx, req.Username)

	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.UserStatusResponse{Status: st}, nil
}

// SendMessage dispatches on the recipient name: when a group carries
// that name the message fans out to its roster, otherwise it is
// buffered for the named user. Unknown user names are accepted as is.
func (s *GRPCServer) SendMessage(ctx context.Context, req *pb.SendMessageRequest) (*pb.OutcomeResponse, error) {

	isGroup, err := s.groups.Exists(ctx, req.Recipient)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	if isGroup {
		n, err := s.messages.SendToGroup(ctx, s.groups, req.Sender, req.Recipient, req.Content)
		if err != nil {
			s.logger.Error(ctx, err.Error())
			return nil, status.Error(codes.Internal, "internal error")
		}
		return &pb.OutcomeResponse{Code: codeOK, Message: fmt.Sprintf("Message envoyé à %d membres", n)}, nil
	}

	if err := s.messages.Produce(ctx, req.Sender, req.Recipient, req.Content, ""); err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.OutcomeResponse{Code: codeOK, Message: "Message envoyé"}, nil
}

func (s *GRPCServer) SendGroupMessage(ctx context.Context, req *pb.SendGroupMessageRequest) (*pb.OutcomeResponse, error) {

	exists, err := s.groups.Exists(ctx, req.Group)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}
	if !exists {
		return &pb.OutcomeResponse{Code: codeUnknownGroup, Message: "Groupe inconnu"}, nil
	}

	n, err := s.messages.SendToGroup(ctx, s.groups, req.Sender, req.Group, req.Content)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.OutcomeResponse{Code: codeOK, Message: fmt.Sprintf("Message envoyé à %d membres", n)}, nil
}

func (s *GRPCServer) GetUnreadMessages(ctx context.Context, req *pb.UnreadMessagesRequest) (*pb.UnreadMessagesResponse, error) {

	list, err := s.messages.Peek(ctx, req.Recipient)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	resp := &pb.UnreadMessagesResponse{}
	for _, m := range list {
		resp.Messages = append(resp.Messages, &pb.Message{
			Id:        m.ID,
			Sender:    m.Sender,
			Content:   m.Content,
			Timestamp: m.Timestamp.UTC().Format(time.RFC3339),
			Group:     m.Group,
		})
	}

	return resp, nil
}

func (s *GRPCServer) AckMessages(ctx context.Context, req *pb.AckMessagesRequest) (*pb.AckMessagesResponse, error) {

	deleted, err := s.messages.Acknowledge(ctx, req.Recipient, req.Ids)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.AckMessagesResponse{
		Code:    codeOK,
		Message: fmt.Sprintf("%d messages supprimés", deleted),
		Deleted: deleted,
	}, nil
}

func (s *GRPCServer) CreateGroup(ctx context.Context, req *pb.CreateGroupRequest) (*pb.OutcomeResponse, error) {

	err := s.groups.Create(ctx, req.Name, req.Owner)

	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return &pb.OutcomeResponse{Code: codeAlreadyExists, Message: "Groupe existant"}, nil
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.Info(ctx, "Group created", "group", req.Name, "owner", req.Owner)
	return &pb.OutcomeResponse{Code: codeOK, Message: "Groupe créé"}, nil
}

func (s *GRPCServer) AddMember(ctx context.Context, req *pb.MemberRequest) (*pb.OutcomeResponse, error) {

	err := s.groups.AddMember(ctx, req.Owner, req.Group, req.Member)

	if err != nil {
		switch {
		case errors.Is(err, common.ErrForbidden):
			return &pb.OutcomeResponse{Code: codeForbidden, Message: "Action interdite"}, nil
		case errors.Is(err, common.ErrAlreadyMember):
			return &pb.OutcomeResponse{Code: codeAlreadyMember, Message: "Déjà membre"}, nil
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.OutcomeResponse{Code: codeOK, Message: "Membre ajouté"}, nil
}

func (s *GRPCServer) RemoveMember(ctx context.Context, req *pb.MemberRequest) (*pb.OutcomeResponse, error) {

	err := s.groups.RemoveMember(ctx, req.Owner, req.Group, req.Member)

	if err != nil {
		if errors.Is(err, common.ErrForbidden) {
			return &pb.OutcomeResponse{Code: codeForbidden, Message: "Action interdite"}, nil
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.OutcomeResponse{Code: codeOK, Message: "Membre supprimé"}, nil
}

func (s *GRPCServer) ListMembers(ctx context.Context, req *pb.GroupRequest) (*pb.MembersResponse, error) {

	members, err := s.groups.Members(ctx, req.Name)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.MembersResponse{Members: members}, nil
}

func (s *GRPCServer) IsGroup(ctx context.Context, req *pb.GroupRequest) (*pb.IsGroupResponse, error) {

	exists, err := s.groups.Exists(ctx, req.Name)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.IsGroupResponse{IsGroup: exists}, nil
}

func (s *GRPCServer) GetGroupsForUser(ctx context.Context, req *pb.UserGroupsRequest) (*pb.UserGroupsResponse, error) {

	list, err := s.groups.GroupsFor(ctx, req.Username)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.UserGroupsResponse{Groups: list}, nil
}

func (s *GRPCServer) LeaveGroup(ctx context.Context, req *pb.LeaveGroupRequest) (*pb.OutcomeResponse, error) {

	err := s.groups.Leave(ctx, req.Username, req.Group)

	if err != nil {
		switch {
		case errors.Is(err, common.ErrNotFound):
			return &pb.OutcomeResponse{Code: codeUnknownGroup, Message: "Groupe introuvable"}, nil
		case errors.Is(err, common.ErrOwnerCannotLeave):
			return &pb.OutcomeResponse{Code: codeOwnerCannotLeave, Message: "Le propriétaire ne peut pas quitter le groupe (supprimez-le si nécessaire)"}, nil
		case errors.Is(err, common.ErrNotMember):
			return &pb.OutcomeResponse{Code: codeNotMember, Message: "Vous n'êtes pas membre"}, nil
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.OutcomeResponse{Code: codeOK, Message: "Vous avez quitté le groupe"}, nil
}

func (s *GRPCServer) GetGroupDetails(ctx context.Context, req *pb.GroupRequest) (*pb.GroupDetailsResponse, error) {

	details, err := s.groups.Details(ctx, req.Name)

	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return &pb.GroupDetailsResponse{Found: false}, nil
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.GroupDetailsResponse{
		Found:   true,
		Name:    details.Name,
		Owner:   details.Owner,
		Members: details.Members,
		Count:   int64(len(details.Members)),
	}, nil
}
