package domain

// InboundMessage is a chat message delivered by the chat platform.
type InboundMessage struct {
	CommunityID      CommunityID
	ChannelID        ChannelID
	AuthorID         UserID
	AuthorIsBot      bool
	Text             string
	MentionedRoleIDs []RoleID
}

// CloseRequest is a user pressing the close affordance in a notification channel.
type CloseRequest struct {
	CommunityID CommunityID
	ChannelID   ChannelID
	UserID      UserID
	UserTag     string
}

type OutboundMessage struct {
	Content      string
	CloseButton  bool
	MentionRoles []RoleID
}

type ChannelRef struct {
	ID     ChannelID
	Reused bool
}

// CloseButtonID identifies the close affordance attached to intro messages.
const CloseButtonID = "drekar_delete"
