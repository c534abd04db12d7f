package domain

type CommunityID string
type ChannelID string
type UserID string
type RoleID string
type MessageID string

// LobbyCode is the three-word capitalized token naming one game lobby.
type LobbyCode string

func (c LobbyCode) String() string {
	return string(c)
}
