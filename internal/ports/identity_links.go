package ports

import (
	"context"

	"github.com/bnema/gathering-relay/internal/domain"
)

type IdentityLinkRepository interface {
	GetByUserID(ctx context.Context, userID domain.UserID) (domain.IdentityLink, error)
	List(ctx context.Context) ([]domain.IdentityLink, error)
	Save(ctx context.Context, link domain.IdentityLink) error
	Remove(ctx context.Context, userID domain.UserID) error
}

// IdentityResolver maps a chat user to the owner names they use in the lobby
// feed. Unlinked users resolve to an empty list.
type IdentityResolver interface {
	ResolveLinkedIdentities(ctx context.Context, userID domain.UserID) ([]string, error)
}
