package ports

import "context"

// SecretStore holds the bot and lobby feed tokens. Get wraps
// domain.ErrSecretNotFound when key is missing.
type SecretStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
