package proto

import (
	"context"

	"google.golang.org/grpc"
)

const (
	relayServiceName   = "messenger.relay.RelayService"
	secondaryStoreName = "messenger.relay.SecondaryStore"
)

// RelayServiceClient is the client API for the relay façade.
type RelayServiceClient interface {
	Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*OutcomeResponse, error)
	Authenticate(ctx context.Context, in *AuthenticateRequest, opts ...grpc.CallOption) (*AuthenticateResponse, error)
	GetUserStatus(ctx context.Context, in *UserStatusRequest, opts ...grpc.CallOption) (*UserStatusResponse, error)
	SendMessage(ctx context.Context, in *SendMessageRequest, opts ...grpc.CallOption) (*OutcomeResponse, error)
	SendGroupMessage(ctx context.Context, in *SendGroupMessageRequest, opts ...grpc.CallOption) (*OutcomeResponse, error)
	GetUnreadMessages(ctx context.Context, in *UnreadMessagesRequest, opts ...grpc.CallOption) (*UnreadMessagesResponse, error)
	AckMessages(ctx context.Context, in *AckMessagesRequest, opts ...grpc.CallOption) (*AckMessagesResponse, error)
	CreateGroup(ctx context.Context, in *CreateGroupRequest, opts ...grpc.CallOption) (*OutcomeResponse, error)
	AddMember(ctx context.Context, in *MemberRequest, opts ...grpc.CallOption) (*OutcomeResponse, error)
	RemoveMember(ctx context.Context, in *MemberRequest, opts ...grpc.CallOption) (*OutcomeResponse, error)
	ListMembers(ctx context.Context, in *GroupRequest, opts ...grpc.CallOption) (*MembersResponse, error)
	IsGroup(ctx context.Context, in *GroupRequest, opts ...grpc.CallOption) (*IsGroupResponse, error)
	GetGroupsForUser(ctx context.Context, in *UserGroupsRequest, opts ...grpc.CallOption) (*UserGroupsResponse, error)
	LeaveGroup(ctx context.Context, in *LeaveGroupRequest, opts ...grpc.CallOption) (*OutcomeResponse, error)
	GetGroupDetails(ctx context.Context, in *GroupRequest, opts ...grpc.CallOption) (*GroupDetailsResponse, error)
}

type relayServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewRelayServiceClient(cc grpc.ClientConnInterface) RelayServiceClient {
	return &relayServiceClient{cc}
}

func (c *relayServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	return c.cc.Invoke(ctx, "/"+relayServiceName+"/"+method, in, out, opts...)
}

func (c *relayServiceClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*OutcomeResponse, error) {
	out := new(OutcomeResponse)
	if err := c.invoke(ctx, "Register", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *relayServiceClient) Authenticate(ctx context.Context, in *AuthenticateRequest, opts ...grpc.CallOption) (*AuthenticateResponse, error) {
	out := new(AuthenticateResponse)
	if err := c.invoke(ctx, "Authenticate", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *relayServiceClient) GetUserStatus(ctx context.Context, in *UserStatusRequest, opts ...grpc.CallOption) (*UserStatusResponse, error) {
	out := new(UserStatusResponse)
	if err := c.invoke(ctx, "GetUserStatus", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *relayServiceClient) SendMessage(ctx context.Context, in *SendMessageRequest, opts ...grpc.CallOption) (*OutcomeResponse, error) {
	out := new(OutcomeResponse)
	if err := c.invoke(ctx, "SendMessage", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *relayServiceClient) SendGroupMessage(ctx context.Context, in *SendGroupMessageRequest, opts ...grpc.CallOption) (*OutcomeResponse, error) {
	out := new(OutcomeResponse)
	if err := c.invoke(ctx, "SendGroupMessage", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *relayServiceClient) GetUnreadMessages(ctx context.Context, in *UnreadMessagesRequest, opts ...grpc.CallOption) (*UnreadMessagesResponse, error) {
	out := new(UnreadMessagesResponse)
	if err := c.invoke(ctx, "GetUnreadMessages", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *relayServiceClient) AckMessages(ctx context.Context, in *AckMessagesRequest, opts ...grpc.CallOption) (*AckMessagesResponse, error) {
	out := new(AckMessagesResponse)
	if err := c.invoke(ctx, "AckMessages", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *relayServiceClient) CreateGroup(ctx context.Context, in *CreateGroupRequest, opts ...grpc.CallOption) (*OutcomeResponse, error) {
	out := new(OutcomeResponse)
	if err := c.invoke(ctx, "CreateGroup", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *relayServiceClient) AddMember(ctx context.Context, in *MemberRequest, opts ...grpc.CallOption) (*OutcomeResponse, error) {
	out := new(OutcomeResponse)
	if err := c.invoke(ctx, "AddMember", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *relayServiceClient) RemoveMember(ctx context.Context, in *MemberRequest, opts ...grpc.CallOption) (*OutcomeResponse, error) {
	out := new(OutcomeResponse)
	if err := c.invoke(ctx, "RemoveMember", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *relayServiceClient) ListMembers(ctx context.Context, in *GroupRequest, opts ...grpc.CallOption) (*MembersResponse, error) {
	out := new(MembersResponse)
	if err := c.invoke(ctx, "ListMembers", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *relayServiceClient) IsGroup(ctx context.Context, in *GroupRequest, opts ...grpc.CallOption) (*IsGroupResponse, error) {
	out := new(IsGroupResponse)
	if err := c.invoke(ctx, "IsGroup", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *relayServiceClient) GetGroupsForUser(ctx context.Context, in *UserGroupsRequest, opts ...grpc.CallOption) (*UserGroupsResponse, error) {
	out := new(UserGroupsResponse)
	if err := c.invoke(ctx, "GetGroupsForUser", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *relayServiceClient) LeaveGroup(ctx context.Context, in *LeaveGroupRequest, opts ...grpc.CallOption) (*OutcomeResponse, error) {
	out := new(OutcomeResponse)
	if err := c.invoke(ctx, "LeaveGroup", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *relayServiceClient) GetGroupDetails(ctx context.Context, in *GroupRequest, opts ...grpc.CallOption) (*GroupDetailsResponse, error) {
	out := new(GroupDetailsResponse)
	if err := c.invoke(ctx, "GetGroupDetails", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

// RelayServiceServer is the server API for the relay façade. Embed
// UnimplementedRelayServiceServer for forward compatibility.
type RelayServiceServer interface {
	Register(context.Context, *RegisterRequest) (*OutcomeResponse, error)
	Authenticate(context.Context, *AuthenticateRequest) (*AuthenticateResponse, error)
	GetUserStatus(context.Context, *UserStatusRequest) (*UserStatusResponse, error)
	SendMessage(context.Context, *SendMessageRequest) (*OutcomeResponse, error)
	SendGroupMessage(context.Context, *SendGroupMessageRequest) (*OutcomeResponse, error)
	GetUnreadMessages(context.Context, *UnreadMessagesRequest) (*UnreadMessagesResponse, error)
	AckMessages(context.Context, *AckMessagesRequest) (*AckMessagesResponse, error)
	CreateGroup(context.Context, *CreateGroupRequest) (*OutcomeResponse, error)
	AddMember(context.Context, *MemberRequest) (*OutcomeResponse, error)
	RemoveMember(context.Context, *MemberRequest) (*OutcomeResponse, error)
	ListMembers(context.Context, *GroupRequest) (*MembersResponse, error)
	IsGroup(context.Context, *GroupRequest) (*IsGroupResponse, error)
	GetGroupsForUser(context.Context, *UserGroupsRequest) (*UserGroupsResponse, error)
	LeaveGroup(context.Context, *LeaveGroupRequest) (*OutcomeResponse, error)
	GetGroupDetails(context.Context, *GroupRequest) (*GroupDetailsResponse, error)
}

type UnimplementedRelayServiceServer struct{}

func (UnimplementedRelayServiceServer) Register(context.Context, *RegisterRequest) (*OutcomeResponse, error) {
	return nil, errUnimplemented("Register")
}
func (UnimplementedRelayServiceServer) Authenticate(context.Context, *AuthenticateRequest) (*AuthenticateResponse, error) {
	return nil, errUnimplemented("Authenticate")
}
func (UnimplementedRelayServiceServer) GetUserStatus(context.Context, *UserStatusRequest) (*UserStatusResponse, error) {
	return nil, errUnimplemented("GetUserStatus")
}
func (UnimplementedRelayServiceServer) SendMessage(context.Context, *SendMessageRequest) (*OutcomeResponse, error) {
	return nil, errUnimplemented("SendMessage")
}
func (UnimplementedRelayServiceServer) SendGroupMessage(context.Context, *SendGroupMessageRequest) (*OutcomeResponse, error) {
	return nil, errUnimplemented("SendGroupMessage")
}
func (UnimplementedRelayServiceServer) GetUnreadMessages(context.Context, *UnreadMessagesRequest) (*UnreadMessagesResponse, error) {
	return nil, errUnimplemented("GetUnreadMessages")
}
func (UnimplementedRelayServiceServer) AckMessages(context.Context, *AckMessagesRequest) (*AckMessagesResponse, error) {
	return nil, errUnimplemented("AckMessages")
}
func (UnimplementedRelayServiceServer) CreateGroup(context.Context, *CreateGroupRequest) (*OutcomeResponse, error) {
	return nil, errUnimplemented("CreateGroup")
}
func (UnimplementedRelayServiceServer) AddMember(context.Context, *MemberRequest) (*OutcomeResponse, error) {
	return nil, errUnimplemented("AddMember")
}
func (UnimplementedRelayServiceServer) RemoveMember(context.Context, *MemberRequest) (*OutcomeResponse, error) {
	return nil, errUnimplemented("RemoveMember")
}
func (UnimplementedRelayServiceServer) ListMembers(context.Context, *GroupRequest) (*MembersResponse, error) {
	return nil, errUnimplemented("ListMembers")
}
func (UnimplementedRelayServiceServer) IsGroup(context.Context, *GroupRequest) (*IsGroupResponse, error) {
	return nil, errUnimplemented("IsGroup")
}
func (UnimplementedRelayServiceServer) GetGroupsForUser(context.Context, *UserGroupsRequest) (*UserGroupsResponse, error) {
	return nil, errUnimplemented("GetGroupsForUser")
}
func (UnimplementedRelayServiceServer) LeaveGroup(context.Context, *LeaveGroupRequest) (*OutcomeResponse, error) {
	return nil, errUnimplemented("LeaveGroup")
}
func (UnimplementedRelayServiceServer) GetGroupDetails(context.Context, *GroupRequest) (*GroupDetailsResponse, error) {
	return nil, errUnimplemented("GetGroupDetails")
}

func RegisterRelayServiceServer(s grpc.ServiceRegistrar, srv RelayServiceServer) {
	s.RegisterService(&RelayService_ServiceDesc, srv)
}

func unaryHandler[Req any, Resp any](srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor, method string, call func(context.Context, any, *Req) (*Resp, error)) (any, error) {
	in := new(Req)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return call(ctx, srv, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: method}
	handler := func(ctx context.Context, req any) (any, error) {
		return call(ctx, srv, req.(*Req))
	}
	return interceptor(ctx, in, info, handler)
}

func _RelayService_Register_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return unaryHandler(srv, ctx, dec, interceptor, "/"+relayServiceName+"/Register",
		func(ctx context.Context, srv any, req *RegisterRequest) (*OutcomeResponse, error) {
			return srv.(RelayServiceServer).Register(ctx, req)
		})
}

func _RelayService_Authenticate_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return unaryHandler(srv, ctx, dec, interceptor, "/"+relayServiceName+"/Authenticate",
		func(ctx context.Context, srv any, req *AuthenticateRequest) (*AuthenticateResponse, error) {
			return srv.(RelayServiceServer).Authenticate(ctx, req)
		})
}

func _RelayService_GetUserStatus_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return unaryHandler(srv, ctx, dec, interceptor, "/"+relayServiceName+"/GetUserStatus",
		func(ctx context.Context, srv any, req *UserStatusRequest) (*UserStatusResponse, error) {
			return srv.(RelayServiceServer).GetUserStatus(ctx, req)
		})
}

func _RelayService_SendMessage_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return unaryHandler(srv, ctx, dec, interceptor, "/"+relayServiceName+"/SendMessage",
		func(ctx context.Context, srv any, req *SendMessageRequest) (*OutcomeResponse, error) {
			return srv.(RelayServiceServer).SendMessage(ctx, req)
		})
}

func _RelayService_SendGroupMessage_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return unaryHandler(srv, ctx, dec, interceptor, "/"+relayServiceName+"/SendGroupMessage",
		func(ctx context.Context, srv any, req *SendGroupMessageRequest) (*OutcomeResponse, error) {
			return srv.(RelayServiceServer).SendGroupMessage(ctx, req)
		})
}

func _RelayService_GetUnreadMessages_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return unaryHandler(srv, ctx, dec, interceptor, "/"+relayServiceName+"/GetUnreadMessages",
		func(ctx context.Context, srv any, req *UnreadMessagesRequest) (*UnreadMessagesResponse, error) {
			return srv.(RelayServiceServer).GetUnreadMessages(ctx, req)
		})
}

func _RelayService_AckMessages_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return unaryHandler(srv, ctx, dec, interceptor, "/"+relayServiceName+"/AckMessages",
		func(ctx context.Context, srv any, req *AckMessagesRequest) (*AckMessagesResponse, error) {
			return srv.(RelayServiceServer).AckMessages(ctx, req)
		})
}

func _RelayService_CreateGroup_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return unaryHandler(srv, ctx, dec, interceptor, "/"+relayServiceName+"/CreateGroup",
		func(ctx context.Context, srv any, req *CreateGroupRequest) (*OutcomeResponse, error) {
			return srv.(RelayServiceServer).CreateGroup(ctx, req)
		})
}

func _RelayService_AddMember_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return unaryHandler(srv, ctx, dec, interceptor, "/"+relayServiceName+"/AddMember",
		func(ctx context.Context, srv any, req *MemberRequest) (*OutcomeResponse, error) {
			return srv.(RelayServiceServer).AddMember(ctx, req)
		})
}

func _RelayService_RemoveMember_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return unaryHandler(srv, ctx, dec, interceptor, "/"+relayServiceName+"/RemoveMember",
		func(ctx context.Context, srv any, req *MemberRequest) (*OutcomeResponse, error) {
			return srv.(RelayServiceServer).RemoveMember(ctx, req)
		})
}

func _RelayService_ListMembers_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return unaryHandler(srv, ctx, dec, interceptor, "/"+relayServiceName+"/ListMembers",
		func(ctx context.Context, srv any, req *GroupRequest) (*MembersResponse, error) {
			return srv.(RelayServiceServer).ListMembers(ctx, req)
		})
}

func _RelayService_IsGroup_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return unaryHandler(srv, ctx, dec, interceptor, "/"+relayServiceName+"/IsGroup",
		func(ctx context.Context, srv any, req *GroupRequest) (*IsGroupResponse, error) {
			return srv.(RelayServiceServer).IsGroup(ctx, req)
		})
}

func _RelayService_GetGroupsForUser_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return unaryHandler(srv, ctx, dec, interceptor, "/"+relayServiceName+"/GetGroupsForUser",
		func(ctx context.Context, srv any, req *UserGroupsRequest) (*UserGroupsResponse, error) {
			return srv.(RelayServiceServer).GetGroupsForUser(ctx, req)
		})
}

func _RelayService_LeaveGroup_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return unaryHandler(srv, ctx, dec, interceptor, "/"+relayServiceName+"/LeaveGroup",
		func(ctx context.Context, srv any, req *LeaveGroupRequest) (*OutcomeResponse, error) {
			return srv.(RelayServiceServer).LeaveGroup(ctx, req)
		})
}

func _RelayService_GetGroupDetails_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return unaryHandler(srv, ctx, dec, interceptor, "/"+relayServiceName+"/GetGroupDetails",
		func(ctx context.Context, srv any, req *GroupRequest) (*GroupDetailsResponse, error) {
			return srv.(RelayServiceServer).GetGroupDetails(ctx, req)
		})
}

var RelayService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: relayServiceName,
	HandlerType: (*RelayServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Register", Handler: _RelayService_Register_Handler},
		{MethodName: "Authenticate", Handler: _RelayService_Authenticate_Handler},
		{MethodName: "GetUserStatus", Handler: _RelayService_GetUserStatus_Handler},
		{MethodName: "SendMessage", Handler: _RelayService_SendMessage_Handler},
		{MethodName: "SendGroupMessage", Handler: _RelayService_SendGroupMessage_Handler},
		{MethodName: "GetUnreadMessages", Handler: _RelayService_GetUnreadMessages_Handler},
		{MethodName: "AckMessages", Handler: _RelayService_AckMessages_Handler},
		{MethodName: "CreateGroup", Handler: _RelayService_CreateGroup_Handler},
		{MethodName: "AddMember", Handler: _RelayService_AddMember_Handler},
		{MethodName: "RemoveMember", Handler: _RelayService_RemoveMember_Handler},
		{MethodName: "ListMembers", Handler: _RelayService_ListMembers_Handler},
		{MethodName: "IsGroup", Handler: _RelayService_IsGroup_Handler},
		{MethodName: "GetGroupsForUser", Handler: _RelayService_GetGroupsForUser_Handler},
		{MethodName: "LeaveGroup", Handler: _RelayService_LeaveGroup_Handler},
		{MethodName: "GetGroupDetails", Handler: _RelayService_GetGroupDetails_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "internal/proto/relay.proto",
}

// SecondaryStoreClient is the client API for the replica store.
type SecondaryStoreClient interface {
	CreateUser(ctx context.Context, in *CreateUserRequest, opts ...grpc.CallOption) (*ReplicaOutcome, error)
	StoreMessage(ctx context.Context, in *StoreMessageRequest, opts ...grpc.CallOption) (*ReplicaOutcome, error)
	StoreGroup(ctx context.Context, in *StoreGroupRequest, opts ...grpc.CallOption) (*ReplicaOutcome, error)
}

type secondaryStoreClient struct {
	cc grpc.ClientConnInterface
}

func NewSecondaryStoreClient(cc grpc.ClientConnInterface) SecondaryStoreClient {
	return &secondaryStoreClient{cc}
}

func (c *secondaryStoreClient) CreateUser(ctx context.Context, in *CreateUserRequest, opts ...grpc.CallOption) (*ReplicaOutcome, error) {
	out := new(ReplicaOutcome)
	if err := c.cc.Invoke(ctx, "/"+secondaryStoreName+"/CreateUser", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *secondaryStoreClient) StoreMessage(ctx context.Context, in *StoreMessageRequest, opts ...grpc.CallOption) (*ReplicaOutcome, error) {
	out := new(ReplicaOutcome)
	if err := c.cc.Invoke(ctx, "/"+secondaryStoreName+"/StoreMessage", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *secondaryStoreClient) StoreGroup(ctx context.Context, in *StoreGroupRequest, opts ...grpc.CallOption) (*ReplicaOutcome, error) {
	out := new(ReplicaOutcome)
	if err := c.cc.Invoke(ctx, "/"+secondaryStoreName+"/StoreGroup", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// SecondaryStoreServer is the server API for the replica store. Embed
// UnimplementedSecondaryStoreServer for forward compatibility.
type SecondaryStoreServer interface {
	CreateUser(context.Context, *CreateUserRequest) (*ReplicaOutcome, error)
	StoreMessage(context.Context, *StoreMessageRequest) (*ReplicaOutcome, error)
	StoreGroup(context.Context, *StoreGroupRequest) (*ReplicaOutcome, error)
}

type UnimplementedSecondaryStoreServer struct{}

func (UnimplementedSecondaryStoreServer) CreateUser(context.Context, *CreateUserRequest) (*ReplicaOutcome, error) {
	return nil, errUnimplemented("CreateUser")
}
func (UnimplementedSecondaryStoreServer) StoreMessage(context.Context, *StoreMessageRequest) (*ReplicaOutcome, error) {
	return nil, errUnimplemented("StoreMessage")
}
func (UnimplementedSecondaryStoreServer) StoreGroup(context.Context, *StoreGroupRequest) (*ReplicaOutcome, error) {
	return nil, errUnimplemented("StoreGroup")
}

func RegisterSecondaryStoreServer(s grpc.ServiceRegistrar, srv SecondaryStoreServer) {
	s.RegisterService(&SecondaryStore_ServiceDesc, srv)
}

func _SecondaryStore_CreateUser_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return unaryHandler(srv, ctx, dec, interceptor, "/"+secondaryStoreName+"/CreateUser",
		func(ctx context.Context, srv any, req *CreateUserRequest) (*ReplicaOutcome, error) {
			return srv.(SecondaryStoreServer).CreateUser(ctx, req)
		})
}

func _SecondaryStore_StoreMessage_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return unaryHandler(srv, ctx, dec, interceptor, "/"+secondaryStoreName+"/StoreMessage",
		func(ctx context.Context, srv any, req *StoreMessageRequest) (*ReplicaOutcome, error) {
			return srv.(SecondaryStoreServer).StoreMessage(ctx, req)
		})
}

func _SecondaryStore_StoreGroup_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return unaryHandler(srv, ctx, dec, interceptor, "/"+secondaryStoreName+"/StoreGroup",
		func(ctx context.Context, srv any, req *StoreGroupRequest) (*ReplicaOutcome, error) {
			return srv.(SecondaryStoreServer).StoreGroup(ctx, req)
		})
}

var SecondaryStore_ServiceDesc = grpc.ServiceDesc{
	ServiceName: secondaryStoreName,
	HandlerType: (*SecondaryStoreServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateUser", Handler: _SecondaryStore_CreateUser_Handler},
		{MethodName: "StoreMessage", Handler: _SecondaryStore_StoreMessage_Handler},
		{MethodName: "StoreGroup", Handler: _SecondaryStore_StoreGroup_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "internal/proto/relay.proto",
}
