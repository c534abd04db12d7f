package application

import "github.com/bnema/gathering-relay/internal/domain"

type SetLinkCommand struct {
	UserID     domain.UserID
	Identities []string
}

type RemoveLinkCommand struct {
	UserID domain.UserID
}

type SetSecretCommand struct {
	Key   string
	Value string
}

// Secret keys used by the relay.
const (
	SecretDiscordToken = "discord/token"
	SecretFeedToken    = "feed/token"
)
