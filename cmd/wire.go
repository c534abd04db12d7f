package cmd

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/bnema/gathering-relay/internal/adapters/directory"
	"github.com/bnema/gathering-relay/internal/adapters/feed/clarion"
	lobbyrender "github.com/bnema/gathering-relay/internal/adapters/render/lobby"
	tomlrepo "github.com/bnema/gathering-relay/internal/adapters/repo/toml"
	chainstore "github.com/bnema/gathering-relay/internal/adapters/secrets/chain"
	"github.com/bnema/gathering-relay/internal/application"
	"github.com/bnema/gathering-relay/internal/domain"
	"github.com/bnema/gathering-relay/internal/platform/config"
	"github.com/bnema/gathering-relay/internal/ports"
)

const secretsDirName = "secrets"

type app struct {
	env       config.Config
	viper     *viper.Viper
	service   *application.Service
	directory *directory.Directory
	links     *tomlrepo.LinkRepository

	lobbyRenderer     func([]domain.Lobby, lobbyrender.LobbyOptions) (string, error)
	communityRenderer func([]domain.Community, domain.RelaySettings) (string, error)
	httpClient        *http.Client
	feedTimeout       time.Duration
}

func wireApp() (*app, error) {
	env, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	v, err := config.NewViper(env.ConfigPath)
	if err != nil {
		return nil, err
	}

	dir, err := directory.New(v)
	if err != nil {
		return nil, fmt.Errorf("wire community directory: %w", err)
	}

	links, err := tomlrepo.NewLinkRepository(v)
	if err != nil {
		return nil, fmt.Errorf("wire identity link repository: %w", err)
	}

	configDir, err := config.Dir()
	if err != nil {
		return nil, err
	}

	secretStore, err := chainstore.NewPassFirstWithFileFallback(filepath.Join(configDir, secretsDirName))
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}

	return &app{
		env:               env,
		viper:             v,
		service:           application.NewService(links, secretStore, ports.SystemClock{}),
		directory:         dir,
		links:             links,
		lobbyRenderer:     lobbyrender.RenderLobbies,
		communityRenderer: lobbyrender.RenderCommunities,
		httpClient:        http.DefaultClient,
		feedTimeout:       10 * time.Second,
	}, nil
}

// feedClient resolves the feed token from the environment or the secret
// store. A client without a token degrades to an empty lobby list.
func (a *app) feedClient(ctx context.Context) (clarion.Client, error) {
	token, err := a.service.Token(ctx, a.env.FeedToken, application.SecretFeedToken)
	if err != nil {
		return clarion.Client{}, err
	}

	return clarion.Client{
		URL:            a.env.FeedURL,
		Token:          token,
		HTTPClient:     a.httpClient,
		RequestTimeout: a.feedTimeout,
	}, nil
}
