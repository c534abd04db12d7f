package ports

import (
	"context"

	"github.com/bnema/gathering-relay/internal/domain"
)

// LobbyFeed lists the lobbies currently open on the game service. It never
// fails: an unreachable or unauthenticated feed yields an empty list.
type LobbyFeed interface {
	ListActiveLobbies(ctx context.Context) []domain.Lobby
}
