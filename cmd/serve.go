package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/gathering-relay/internal/adapters/chat/discord"
	httprouter "github.com/bnema/gathering-relay/internal/adapters/http/router"
	"github.com/bnema/gathering-relay/internal/application"
	"github.com/bnema/gathering-relay/internal/domain"
	"github.com/bnema/gathering-relay/internal/platform/logger"
	"github.com/bnema/gathering-relay/internal/platform/otel"
)

const (
	shutdownTimeout = 10 * time.Second
	chatCallTimeout = 15 * time.Second
)

var errMissingDiscordToken = errors.New("discord token is not configured: set DISCORD_TOKEN or run `gathering secret set discord`")

func newServeCmd(app *app) *cobra.Command {
	var opsAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Connect to the relay guild and run the relay",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runServe(ctx, app, opsAddr)
		},
	}

	cmd.Flags().StringVar(&opsAddr, "ops-addr", app.env.OpsAddr, "Listen address for the ops HTTP server (empty disables it)")

	return cmd
}

func runServe(ctx context.Context, app *app, opsAddr string) error {
	telemetry, err := otel.Setup(ctx, app.env)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		return err
	}

	logger.Setup(app.env)
	ctx = logger.WithLogFields(ctx, logger.LogFields{Component: "serve"})

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", app.env.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	token, err := app.service.Token(ctx, app.env.DiscordToken, application.SecretDiscordToken)
	if err != nil {
		return err
	}
	if token == "" {
		return errMissingDiscordToken
	}

	feed, err := app.feedClient(ctx)
	if err != nil {
		return err
	}
	if feed.Token == "" {
		slog.WarnContext(ctx, "feed token not configured, reconciliation disabled")
	}

	session, err := discord.NewSession(token)
	if err != nil {
		return err
	}

	relay := application.NewRelay(application.RelayConfig{
		Chat: discord.NewPlatform(session, func() domain.CommunityID {
			return app.directory.Settings().Guild
		}),
		Directory:   app.directory,
		Feed:        feed,
		Identities:  app.service,
		CallTimeout: chatCallTimeout,
	})
	gateway := discord.NewGateway(session, relay)

	app.directory.Watch(ctx)

	slog.InfoContext(ctx, "relay starting",
		"env", app.env.Env,
		"config", app.viper.ConfigFileUsed(),
		"communities", len(app.directory.Communities()),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return relay.Run(gctx)
	})
	g.Go(func() error {
		return gateway.Run(gctx)
	})
	if opsAddr != "" {
		server := newOpsServer(app, relay, opsAddr)
		g.Go(func() error {
			slog.InfoContext(gctx, "ops server starting", "addr", opsAddr)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("ops server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		})
	}

	runErr := g.Wait()
	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := telemetry.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
	return runErr
}

func newOpsServer(app *app, relay *application.Relay, addr string) *http.Server {
	routerCfg := httprouter.RouterConfig{IsProduction: app.env.IsProduction()}
	if app.env.OTel.Enabled() {
		routerCfg.ServiceName = app.env.OTel.ServiceName
	}

	engine := httprouter.NewEngine(routerCfg)
	httprouter.SetupRoutes(engine, relay, app.directory)

	return &http.Server{
		Addr:              addr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
