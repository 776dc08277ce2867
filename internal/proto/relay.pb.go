package proto

import "fmt"

// OutcomeResponse reports the result of a mutating relay operation:
// a stable code for programs and the legacy human-readable message.
type OutcomeResponse struct {
	Code    string `protobuf:"bytes,1,opt,name=code,proto3" json:"code,omitempty"`
	Message string `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
}

func (m *OutcomeResponse) Reset()         { *m = OutcomeResponse{} }
func (m *OutcomeResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*OutcomeResponse) ProtoMessage()    {}

func (m *OutcomeResponse) GetCode() string {
	if m != nil {
		return m.Code
	}
	return ""
}

func (m *OutcomeResponse) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

type RegisterRequest struct {
	Username string `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
	Password string `protobuf:"bytes,2,opt,name=password,proto3" json:"password,omitempty"`
}

func (m *RegisterRequest) Reset()         { *m = RegisterRequest{} }
func (m *RegisterRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*RegisterRequest) ProtoMessage()    {}

func (m *RegisterRequest) GetUsername() string {
	if m != nil {
		return m.Username
	}
	return ""
}

func (m *RegisterRequest) GetPassword() string {
	if m != nil {
		return m.Password
	}
	return ""
}

type AuthenticateRequest struct {
	Username string `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
	Password string `protobuf:"bytes,2,opt,name=password,proto3" json:"password,omitempty"`
}

func (m *AuthenticateRequest) Reset()         { *m = AuthenticateRequest{} }
func (m *AuthenticateRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*AuthenticateRequest) ProtoMessage()    {}

func (m *AuthenticateRequest) GetUsername() string {
	if m != nil {
		return m.Username
	}
	return ""
}

func (m *AuthenticateRequest) GetPassword() string {
	if m != nil {
		return m.Password
	}
	return ""
}

type AuthenticateResponse struct {
	Ok bool `protobuf:"varint,1,opt,name=ok,proto3" json:"ok,omitempty"`
}

func (m *AuthenticateResponse) Reset()         { *m = AuthenticateResponse{} }
func (m *AuthenticateResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*AuthenticateResponse) ProtoMessage()    {}

func (m *AuthenticateResponse) GetOk() bool {
	if m != nil {
		return m.Ok
	}
	return false
}

type UserStatusRequest struct {
	Username string `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
}

func (m *UserStatusRequest) Reset()         { *m = UserStatusRequest{} }
func (m *UserStatusRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*UserStatusRequest) ProtoMessage()    {}

func (m *UserStatusRequest) GetUsername() string {
	if m != nil {
		return m.Username
	}
	return ""
}

type UserStatusResponse struct {
	Status string `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
}

func (m *UserStatusResponse) Reset()         { *m = UserStatusResponse{} }
func (m *UserStatusResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*UserStatusResponse) ProtoMessage()    {}

func (m *UserStatusResponse) GetStatus() string {
	if m != nil {
		return m.Status
	}
	return ""
}

type SendMessageRequest struct {
	Sender    string `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender,omitempty"`
	Recipient string `protobuf:"bytes,2,opt,name=recipient,proto3" json:"recipient,omitempty"`
	Content   string `protobuf:"bytes,3,opt,name=content,proto3" json:"content,omitempty"`
}

func (m *SendMessageRequest) Reset()         { *m = SendMessageRequest{} }
func (m *SendMessageRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*SendMessageRequest) ProtoMessage()    {}

func (m *SendMessageRequest) GetSender() string {
	if m != nil {
		return m.Sender
	}
	return ""
}

func (m *SendMessageRequest) GetRecipient() string {
	if m != nil {
		return m.Recipient
	}
	return ""
}

func (m *SendMessageRequest) GetContent() string {
	if m != nil {
		return m.Content
	}
	return ""
}

type SendGroupMessageRequest struct {
	Sender  string `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender,omitempty"`
	Group   string `protobuf:"bytes,2,opt,name=group,proto3" json:"group,omitempty"`
	Content string `protobuf:"bytes,3,opt,name=content,proto3" json:"content,omitempty"`
}

func (m *SendGroupMessageRequest) Reset()         { *m = SendGroupMessageRequest{} }
func (m *SendGroupMessageRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*SendGroupMessageRequest) ProtoMessage()    {}

func (m *SendGroupMessageRequest) GetSender() string {
	if m != nil {
		return m.Sender
	}
	return ""
}

func (m *SendGroupMessageRequest) GetGroup() string {
	if m != nil {
		return m.Group
	}
	return ""
}

func (m *SendGroupMessageRequest) GetContent() string {
	if m != nil {
		return m.Content
	}
	return ""
}

type UnreadMessagesRequest struct {
	Recipient string `protobuf:"bytes,1,opt,name=recipient,proto3" json:"recipient,omitempty"`
}

func (m *UnreadMessagesRequest) Reset()         { *m = UnreadMessagesRequest{} }
func (m *UnreadMessagesRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*UnreadMessagesRequest) ProtoMessage()    {}

func (m *UnreadMessagesRequest) GetRecipient() string {
	if m != nil {
		return m.Recipient
	}
	return ""
}

// Message is one undelivered copy as returned by a peek. Content is the
// cipher token, Timestamp is RFC 3339 UTC, Group is empty for direct
// messages.
type Message struct {
	Id        string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Sender    string `protobuf:"bytes,2,opt,name=sender,proto3" json:"sender,omitempty"`
	Content   string `protobuf:"bytes,3,opt,name=content,proto3" json:"content,omitempty"`
	Timestamp string `protobuf:"bytes,4,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
	Group     string `protobuf:"bytes,5,opt,name=group,proto3" json:"group,omitempty"`
}

func (m *Message) Reset()         { *m = Message{} }
func (m *Message) String() string { return fmt.Sprintf("%+v", *m) }
func (*Message) ProtoMessage()    {}

func (m *Message) GetId() string {
	if m != nil {
		return m.Id
	}
	return ""
}

func (m *Message) GetSender() string {
	if m != nil {
		return m.Sender
	}
	return ""
}

func (m *Message) GetContent() string {
	if m != nil {
		return m.Content
	}
	return ""
}

func (m *Message) GetTimestamp() string {
	if m != nil {
		return m.Timestamp
	}
	return ""
}

func (m *Message) GetGroup() string {
	if m != nil {
		return m.Group
	}
	return ""
}

type UnreadMessagesResponse struct {
	Messages []*Message `protobuf:"bytes,1,rep,name=messages,proto3" json:"messages,omitempty"`
}

func (m *UnreadMessagesResponse) Reset()         { *m = UnreadMessagesResponse{} }
func (m *UnreadMessagesResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*UnreadMessagesResponse) ProtoMessage()    {}

func (m *UnreadMessagesResponse) GetMessages() []*Message {
	if m != nil {
		return m.Messages
	}
	return nil
}

type AckMessagesRequest struct {
	Recipient string   `protobuf:"bytes,1,opt,name=recipient,proto3" json:"recipient,omitempty"`
	Ids       []string `protobuf:"bytes,2,rep,name=ids,proto3" json:"ids,omitempty"`
}

func (m *AckMessagesRequest) Reset()         { *m = AckMessagesRequest{} }
func (m *AckMessagesRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*AckMessagesRequest) ProtoMessage()    {}

func (m *AckMessagesRequest) GetRecipient() string {
	if m != nil {
		return m.Recipient
	}
	return ""
}

func (m *AckMessagesRequest) GetIds() []string {
	if m != nil {
		return m.Ids
	}
	return nil
}

type AckMessagesResponse struct {
	Code    string `protobuf:"bytes,1,opt,name=code,proto3" json:"code,omitempty"`
	Message string `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	Deleted int64  `protobuf:"varint,3,opt,name=deleted,proto3" json:"deleted,omitempty"`
}

func (m *AckMessagesResponse) Reset()         { *m = AckMessagesResponse{} }
func (m *AckMessagesResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*AckMessagesResponse) ProtoMessage()    {}

func (m *AckMessagesResponse) GetCode() string {
	if m != nil {
		return m.Code
	}
	return ""
}

func (m *AckMessagesResponse) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

func (m *AckMessagesResponse) GetDeleted() int64 {
	if m != nil {
		return m.Deleted
	}
	return 0
}

type CreateGroupRequest struct {
	Owner string `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	Name  string `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
}

func (m *CreateGroupRequest) Reset()         { *m = CreateGroupRequest{} }
func (m *CreateGroupRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*CreateGroupRequest) ProtoMessage()    {}

func (m *CreateGroupRequest) GetOwner() string {
	if m != nil {
		return m.Owner
	}
	return ""
}

func (m *CreateGroupRequest) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

type MemberRequest struct {
	Owner  string `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	Group  string `protobuf:"bytes,2,opt,name=group,proto3" json:"group,omitempty"`
	Member string `protobuf:"bytes,3,opt,name=member,proto3" json:"member,omitempty"`
}

func (m *MemberRequest) Reset()         { *m = MemberRequest{} }
func (m *MemberRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*MemberRequest) ProtoMessage()    {}

func (m *MemberRequest) GetOwner() string {
	if m != nil {
		return m.Owner
	}
	return ""
}

func (m *MemberRequest) GetGroup() string {
	if m != nil {
		return m.Group
	}
	return ""
}

func (m *MemberRequest) GetMember() string {
	if m != nil {
		return m.Member
	}
	return ""
}

type GroupRequest struct {
	Name string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
}

func (m *GroupRequest) Reset()         { *m = GroupRequest{} }
func (m *GroupRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GroupRequest) ProtoMessage()    {}

func (m *GroupRequest) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

type MembersResponse struct {
	Members []string `protobuf:"bytes,1,rep,name=members,proto3" json:"members,omitempty"`
}

func (m *MembersResponse) Reset()         { *m = MembersResponse{} }
func (m *MembersResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*MembersResponse) ProtoMessage()    {}

func (m *MembersResponse) GetMembers() []string {
	if m != nil {
		return m.Members
	}
	return nil
}

type IsGroupResponse struct {
	IsGroup bool `protobuf:"varint,1,opt,name=is_group,json=isGroup,proto3" json:"is_group,omitempty"`
}

func (m *IsGroupResponse) Reset()         { *m = IsGroupResponse{} }
func (m *IsGroupResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*IsGroupResponse) ProtoMessage()    {}

func (m *IsGroupResponse) GetIsGroup() bool {
	if m != nil {
		return m.IsGroup
	}
	return false
}

type UserGroupsRequest struct {
	Username string `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
}

func (m *UserGroupsRequest) Reset()         { *m = UserGroupsRequest{} }
func (m *UserGroupsRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*UserGroupsRequest) ProtoMessage()    {}

func (m *UserGroupsRequest) GetUsername() string {
	if m != nil {
		return m.Username
	}
	return ""
}

type UserGroupsResponse struct {
	Groups []string `protobuf:"bytes,1,rep,name=groups,proto3" json:"groups,omitempty"`
}

func (m *UserGroupsResponse) Reset()         { *m = UserGroupsResponse{} }
func (m *UserGroupsResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*UserGroupsResponse) ProtoMessage()    {}

func (m *UserGroupsResponse) GetGroups() []string {
	if m != nil {
		return m.Groups
	}
	return nil
}

type LeaveGroupRequest struct {
	Username string `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
	Group    string `protobuf:"bytes,2,opt,name=group,proto3" json:"group,omitempty"`
}

func (m *LeaveGroupRequest) Reset()         { *m = LeaveGroupRequest{} }
func (m *LeaveGroupRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*LeaveGroupRequest) ProtoMessage()    {}

func (m *LeaveGroupRequest) GetUsername() string {
	if m != nil {
		return m.Username
	}
	return ""
}

func (m *LeaveGroupRequest) GetGroup() string {
	if m != nil {
		return m.Group
	}
	return ""
}

type GroupDetailsResponse struct {
	Found   bool     `protobuf:"varint,1,opt,name=found,proto3" json:"found,omitempty"`
	Name    string   `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Owner   string   `protobuf:"bytes,3,opt,name=owner,proto3" json:"owner,omitempty"`
	Members []string `protobuf:"bytes,4,rep,name=members,proto3" json:"members,omitempty"`
	Count   int64    `protobuf:"varint,5,opt,name=count,proto3" json:"count,omitempty"`
}

func (m *GroupDetailsResponse) Reset()         { *m = GroupDetailsResponse{} }
func (m *GroupDetailsResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*GroupDetailsResponse) ProtoMessage()    {}

func (m *GroupDetailsResponse) GetFound() bool {
	if m != nil {
		return m.Found
	}
	return false
}

func (m *GroupDetailsResponse) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *GroupDetailsResponse) GetOwner() string {
	if m != nil {
		return m.Owner
	}
	return ""
}

func (m *GroupDetailsResponse) GetMembers() []string {
	if m != nil {
		return m.Members
	}
	return nil
}

func (m *GroupDetailsResponse) GetCount() int64 {
	if m != nil {
		return m.Count
	}
	return 0
}

type CreateUserRequest struct {
	Username     string `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
	PasswordHash string `protobuf:"bytes,2,opt,name=password_hash,json=passwordHash,proto3" json:"password_hash,omitempty"`
}

func (m *CreateUserRequest) Reset()         { *m = CreateUserRequest{} }
func (m *CreateUserRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*CreateUserRequest) ProtoMessage()    {}

func (m *CreateUserRequest) GetUsername() string {
	if m != nil {
		return m.Username
	}
	return ""
}

func (m *CreateUserRequest) GetPasswordHash() string {
	if m != nil {
		return m.PasswordHash
	}
	return ""
}

type StoreMessageRequest struct {
	Sender    string `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender,omitempty"`
	Recipient string `protobuf:"bytes,2,opt,name=recipient,proto3" json:"recipient,omitempty"`
	Content   string `protobuf:"bytes,3,opt,name=content,proto3" json:"content,omitempty"`
	Timestamp string `protobuf:"bytes,4,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
}

func (m *StoreMessageRequest) Reset()         { *m = StoreMessageRequest{} }
func (m *StoreMessageRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*StoreMessageRequest) ProtoMessage()    {}

func (m *StoreMessageRequest) GetSender() string {
	if m != nil {
		return m.Sender
	}
	return ""
}

func (m *StoreMessageRequest) GetRecipient() string {
	if m != nil {
		return m.Recipient
	}
	return ""
}

func (m *StoreMessageRequest) GetContent() string {
	if m != nil {
		return m.Content
	}
	return ""
}

func (m *StoreMessageRequest) GetTimestamp() string {
	if m != nil {
		return m.Timestamp
	}
	return ""
}

type StoreGroupRequest struct {
	Name  string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Owner string `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
}

func (m *StoreGroupRequest) Reset()         { *m = StoreGroupRequest{} }
func (m *StoreGroupRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*StoreGroupRequest) ProtoMessage()    {}

func (m *StoreGroupRequest) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *StoreGroupRequest) GetOwner() string {
	if m != nil {
		return m.Owner
	}
	return ""
}

type ReplicaOutcome struct {
	Code    string `protobuf:"bytes,1,opt,name=code,proto3" json:"code,omitempty"`
	Message string `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
}

func (m *ReplicaOutcome) Reset()         { *m = ReplicaOutcome{} }
func (m *ReplicaOutcome) String() string { return fmt.Sprintf("%+v", *m) }
func (*ReplicaOutcome) ProtoMessage()    {}

func (m *ReplicaOutcome) GetCode() string {
	if m != nil {
		return m.Code
	}
	return ""
}

func (m *ReplicaOutcome) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}
