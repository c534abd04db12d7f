package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/gathering-relay/internal/domain"
	"github.com/bnema/gathering-relay/internal/ports"
)

var ErrEmptySecret = errors.New("secret value is empty")

// Service manages the persisted side of the relay: identity links used for
// reconciliation and the tokens kept in the secret store.
type Service struct {
	links ports.IdentityLinkRepository
	store ports.SecretStore
	clock ports.Clock
}

func NewService(links ports.IdentityLinkRepository, store ports.SecretStore, clock ports.Clock) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Service{
		links: links,
		store: store,
		clock: clock,
	}
}

// SetLink replaces the identities linked to a chat user.
func (s *Service) SetLink(ctx context.Context, cmd SetLinkCommand) (domain.IdentityLink, error) {
	link := domain.IdentityLink{
		UserID:     domain.UserID(strings.TrimSpace(string(cmd.UserID))),
		Identities: cmd.Identities,
		UpdatedAt:  s.clock.Now().UTC(),
	}
	link.NormalizeIdentities()
	if err := link.Validate(); err != nil {
		return domain.IdentityLink{}, fmt.Errorf("validate identity link: %w", err)
	}

	if err := s.links.Save(ctx, link); err != nil {
		return domain.IdentityLink{}, fmt.Errorf("save identity link: %w", err)
	}

	return link, nil
}

// AddIdentities appends identities to an existing link, creating it when
// the user has none.
func (s *Service) AddIdentities(ctx context.Context, cmd SetLinkCommand) (domain.IdentityLink, error) {
	existing, err := s.links.GetByUserID(ctx, cmd.UserID)
	if err != nil && !errors.Is(err, domain.ErrIdentityLinkNotFound) {
		return domain.IdentityLink{}, fmt.Errorf("get identity link: %w", err)
	}

	merged := append(append([]string{}, existing.Identities...), cmd.Identities...)
	return s.SetLink(ctx, SetLinkCommand{UserID: cmd.UserID, Identities: merged})
}

func (s *Service) RemoveLink(ctx context.Context, cmd RemoveLinkCommand) error {
	if err := s.links.Remove(ctx, cmd.UserID); err != nil {
		return fmt.Errorf("remove identity link: %w", err)
	}
	return nil
}

func (s *Service) ListLinks(ctx context.Context) ([]domain.IdentityLink, error) {
	links, err := s.links.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list identity links: %w", err)
	}
	return links, nil
}

// ResolveLinkedIdentities returns the feed identities linked to userID. An
// unlinked user resolves to nil without error.
func (s *Service) ResolveLinkedIdentities(ctx context.Context, userID domain.UserID) ([]string, error) {
	link, err := s.links.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrIdentityLinkNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get identity link: %w", err)
	}
	return link.Identities, nil
}

// SetSecret stores value under key. A previous value is restored when the
// write cannot be read back.
func (s *Service) SetSecret(ctx context.Context, cmd SetSecretCommand) error {
	if strings.TrimSpace(cmd.Value) == "" {
		return ErrEmptySecret
	}

	previous, err := s.store.Get(ctx, cmd.Key)
	if err != nil && !errors.Is(err, domain.ErrSecretNotFound) {
		return fmt.Errorf("get secret: %w", err)
	}
	hadPrevious := err == nil

	if err := s.store.Put(ctx, cmd.Key, cmd.Value); err != nil {
		return fmt.Errorf("store secret: %w", err)
	}

	stored, err := s.store.Get(ctx, cmd.Key)
	if err == nil && stored == cmd.Value {
		return nil
	}
	if err == nil {
		err = errors.New("stored secret does not match")
	}

	var rollbackErr error
	if hadPrevious {
		rollbackErr = s.store.Put(ctx, cmd.Key, previous)
	} else {
		rollbackErr = s.store.Delete(ctx, cmd.Key)
	}
	if rollbackErr != nil {
		return fmt.Errorf("verify stored secret and rollback: %w", errors.Join(err, rollbackErr))
	}

	return fmt.Errorf("verify stored secret: %w", err)
}

func (s *Service) RemoveSecret(ctx context.Context, key string) error {
	if err := s.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete secret: %w", err)
	}
	return nil
}

// Secret reads the value stored under key.
func (s *Service) Secret(ctx context.Context, key string) (string, error) {
	value, err := s.store.Get(ctx, key)
	if err != nil {
		return "", fmt.Errorf("get secret: %w", err)
	}
	return value, nil
}

// Token prefers a value injected through the environment and falls back to
// the secret store. A token found nowhere resolves to "" without error.
func (s *Service) Token(ctx context.Context, fromEnv string, key string) (string, error) {
	if value := strings.TrimSpace(fromEnv); value != "" {
		return value, nil
	}

	value, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrSecretNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("get secret %s: %w", key, err)
	}
	return strings.TrimSpace(value), nil
}
