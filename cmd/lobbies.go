package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	lobbyrender "github.com/bnema/gathering-relay/internal/adapters/render/lobby"
	"github.com/bnema/gathering-relay/internal/domain"
)

func newLobbiesCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "lobbies",
		Short: "Poll the lobby feed once and show the live lobbies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLobbies(cmd, app, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func runLobbies(cmd *cobra.Command, app *app, asJSON bool) error {
	client, err := app.feedClient(cmd.Context())
	if err != nil {
		return err
	}

	var lobbies []domain.Lobby
	poll := func(ctx context.Context) error {
		var err error
		lobbies, err = client.Fetch(ctx)
		if err != nil {
			return fmt.Errorf("poll lobby feed: %w", err)
		}
		return nil
	}

	if asJSON {
		if err := poll(cmd.Context()); err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(lobbies)
	}

	if err := runFeedPollSpinner(cmd.Context(), cmd.ErrOrStderr(), poll); err != nil {
		return err
	}

	linked, err := linkedOwners(cmd.Context(), app)
	if err != nil {
		return err
	}

	rendered, err := app.lobbyRenderer(lobbies, lobbyrender.LobbyOptions{Linked: linked})
	if err != nil {
		return fmt.Errorf("render lobbies: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

// linkedOwners maps each linked feed identity to its chat user.
func linkedOwners(ctx context.Context, app *app) (map[string]domain.UserID, error) {
	links, err := app.service.ListLinks(ctx)
	if err != nil {
		return nil, err
	}

	linked := make(map[string]domain.UserID)
	for _, link := range links {
		for _, identity := range link.Identities {
			linked[identity] = link.UserID
		}
	}
	return linked, nil
}
