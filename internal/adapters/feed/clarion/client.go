package clarion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/bnema/gathering-relay/internal/domain"
	"github.com/bnema/gathering-relay/internal/platform/logger"
	"github.com/bnema/gathering-relay/internal/ports"
)

const (
	DefaultURL = "https://api.clarioncorp.net/v2/customs/browse"

	defaultRequestTimeout = 10 * time.Second
	maxFeedResponseBytes  = 4 << 20
)

var ErrMissingToken = errors.New("feed token is not configured")

// Client reads the public custom lobby list. Every failure degrades to an
// empty list for the relay; Fetch exposes the error for the CLI.
type Client struct {
	URL            string
	Token          string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

var _ ports.LobbyFeed = Client{}

type browseResponse struct {
	Lobbies []lobbyPayload `json:"lobbies"`
}

type lobbyPayload struct {
	OwnerUsername string `json:"ownerUsername"`
	NumPlayers    int    `json:"numPlayers"`
	LobbySize     int    `json:"lobbySize"`
}

func (c Client) ListActiveLobbies(ctx context.Context) []domain.Lobby {
	lobbies, err := c.Fetch(ctx)
	if err != nil {
		slog.WarnContext(ctx, "lobby feed unavailable", "error", err)
		return []domain.Lobby{}
	}
	return lobbies
}

// Fetch polls the feed once.
func (c Client) Fetch(ctx context.Context) ([]domain.Lobby, error) {
	if c.Token == "" {
		return nil, ErrMissingToken
	}

	sc := logger.StartSpan(ctx, "clarion.fetch")
	defer sc.End()

	requestCtx, cancel := c.requestContext(sc.Context())
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, http.MethodGet, c.url(), nil)
	if err != nil {
		return nil, fmt.Errorf("create feed request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "identity")
	req.Header.Set("Cache-Control", "no-store")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		sc.RecordError(err)
		return nil, fmt.Errorf("request lobby feed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		err := fmt.Errorf("request lobby feed: unexpected status %d", resp.StatusCode)
		sc.RecordError(err)
		return nil, err
	}

	var payload browseResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxFeedResponseBytes)).Decode(&payload); err != nil {
		sc.RecordError(err)
		return nil, fmt.Errorf("decode lobby feed: %w", err)
	}

	lobbies := make([]domain.Lobby, 0, len(payload.Lobbies))
	for _, entry := range payload.Lobbies {
		if entry.OwnerUsername == "" {
			continue
		}
		lobbies = append(lobbies, domain.Lobby{
			OwnerIdentity: entry.OwnerUsername,
			ReportedCount: entry.NumPlayers,
			Capacity:      entry.LobbySize,
		})
	}

	return lobbies, nil
}

func (c Client) url() string {
	if c.URL == "" {
		return DefaultURL
	}
	return c.URL
}

func (c Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := c.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < timeout {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func (c Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}
