package application

import (
	"context"
	"log/slog"

	"github.com/bnema/gathering-relay/internal/domain"
	"github.com/bnema/gathering-relay/internal/platform/logger"
	"github.com/bnema/gathering-relay/internal/ports"
)

// Reconciliation is the Reconciler's proposal for one count update.
type Reconciliation struct {
	Active     bool
	State      domain.ReconciledState
	Duplicate  bool
	Identities []string
	Identity   string
	Lobby      domain.Lobby
}

// Reconciler checks a chat-derived count against the live lobby feed. It
// never mutates the session.
type Reconciler struct {
	feed       ports.LobbyFeed
	identities ports.IdentityResolver
}

func NewReconciler(feed ports.LobbyFeed, identities ports.IdentityResolver) *Reconciler {
	return &Reconciler{feed: feed, identities: identities}
}

// Reconcile proposes a reconciled state for count. The result is inactive
// when no linked identity owns a feed lobby or the chat count is below what
// the feed reports; the caller then falls back to the raw count.
func (r *Reconciler) Reconcile(ctx context.Context, session *domain.Session, speaker domain.UserID, count int) Reconciliation {
	if r == nil || r.feed == nil {
		return Reconciliation{}
	}

	identities := r.resolve(ctx, session.OwnerID)
	if len(identities) == 0 && speaker != session.OwnerID {
		identities = r.resolve(ctx, speaker)
	}
	if len(identities) == 0 {
		return Reconciliation{}
	}

	sc := logger.StartSpan(ctx, "relay.reconcile")
	defer sc.End()
	ctx = sc.Context()

	lobbies := r.feed.ListActiveLobbies(ctx)
	lobby, identity, ok := domain.FindLobby(lobbies, identities)
	if !ok {
		slog.DebugContext(ctx, "no feed lobby for linked identities, using chat count", "identities", identities, "lobbies", len(lobbies))
		return Reconciliation{Identities: identities}
	}

	state, ok := domain.NewReconciledState(domain.ClampCount(count), lobby.ReportedCount)
	if !ok {
		slog.DebugContext(ctx, "chat count below feed count, using chat count", "count", count, "reported", lobby.ReportedCount)
		return Reconciliation{Identities: identities, Identity: identity, Lobby: lobby}
	}

	return Reconciliation{
		Active:     true,
		State:      state,
		Duplicate:  session.SameReconciledState(state),
		Identities: identities,
		Identity:   identity,
		Lobby:      lobby,
	}
}

func (r *Reconciler) resolve(ctx context.Context, user domain.UserID) []string {
	if r.identities == nil || user == "" {
		return nil
	}
	identities, err := r.identities.ResolveLinkedIdentities(ctx, user)
	if err != nil {
		slog.WarnContext(ctx, "resolve linked identities failed", "user_id", user, "error", err)
		return nil
	}
	return identities
}
