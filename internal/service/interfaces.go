package service

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// GroupServiceInterface defines the interface for group service
type GroupServiceInterface interface {
	Create(caller string, req *CreateGroupRequest) (*GroupResponse, error)
	Get(groupID string) (*GroupResponse, error)
	SetCode(caller, groupID string, req *SetGroupCodeRequest) (*GroupResponse, error)
	UpdateSettings(caller, groupID string, req *UpdateGroupSettingsRequest) (*GroupResponse, error)
	ResolveByCode(code string) (*GroupResponse, error)
}

// MembershipServiceInterface defines the interface for membership service
type MembershipServiceInterface interface {
	Join(caller, groupID string, req *JoinGroupRequest) (*MembershipResponse, error)
	Invite(caller, groupID string, req *InviteMemberRequest) (*MembershipResponse, error)
	Leave(caller, groupID string) error
	Kick(caller, groupID, target string) error
	UpdateRole(caller, groupID, target string, req *UpdateMemberRoleRequest) (*MembershipResponse, error)
	UpdateLastRead(caller, groupID string, req *UpdateLastReadRequest) error
	Get(groupID, member string) (*MembershipResponse, error)
	List(groupID string, page, pageSize int) (*MembershipListResponse, error)
}

// InviteLinkServiceInterface defines the interface for invite link service
type InviteLinkServiceInterface interface {
	Create(caller, groupID string, req *CreateInviteLinkRequest) (*InviteLinkResponse, error)
	Revoke(caller, groupID, code string) error
	Redeem(caller, groupID, code string, req *RedeemInviteRequest) (*MembershipResponse, error)
}

// UsernameServiceInterface defines the interface for username service
type UsernameServiceInterface interface {
	Register(caller string, req *RegisterUsernameRequest) (*UsernameResponse, error)
	Lookup(name string) (*UsernameResponse, error)
	Transfer(caller, name string, req *TransferUsernameRequest) (*UsernameResponse, error)
	Release(caller, name string) error
	UpdateEncryptionKey(caller, name string, req *UpdateUsernameKeyRequest) (*UsernameResponse, error)
}
