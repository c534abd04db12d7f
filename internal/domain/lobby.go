package domain

import "strings"

// Lobby is one entry of the external live lobby feed.
type Lobby struct {
	OwnerIdentity string `json:"owner"`
	ReportedCount int    `json:"players"`
	Capacity      int    `json:"capacity"`
}

// FindLobby picks the feed entry owned by one of identities. An exact owner
// name match wins over a case-insensitive one.
func FindLobby(lobbies []Lobby, identities []string) (Lobby, string, bool) {
	for _, identity := range identities {
		for _, lobby := range lobbies {
			if lobby.OwnerIdentity == identity {
				return lobby, identity, true
			}
		}
	}
	for _, identity := range identities {
		for _, lobby := range lobbies {
			if strings.EqualFold(lobby.OwnerIdentity, identity) {
				return lobby, identity, true
			}
		}
	}

	return Lobby{}, "", false
}
