package ports

import "github.com/bnema/gathering-relay/internal/domain"

// CommunityDirectory serves the current relay configuration. Implementations
// may reload it at runtime.
type CommunityDirectory interface {
	Community(id domain.CommunityID) (domain.Community, bool)
	Communities() []domain.Community
	Settings() domain.RelaySettings
}
