package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/gathering-relay/internal/application"
	"github.com/bnema/gathering-relay/internal/domain"
)

func newLinkCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link",
		Short: "Manage links between chat users and lobby feed identities",
	}

	cmd.AddCommand(
		newLinkSetCmd(app),
		newLinkAddCmd(app),
		newLinkRemoveCmd(app),
		newLinkListCmd(app),
	)

	return cmd
}

func newLinkSetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <user-id> <identity>...",
		Short: "Replace the feed identities linked to a chat user",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			link, err := app.service.SetLink(cmd.Context(), application.SetLinkCommand{
				UserID:     domain.UserID(args[0]),
				Identities: args[1:],
			})
			if err != nil {
				return err
			}

			return writeLink(cmd, link)
		},
	}
}

func newLinkAddCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <user-id> <identity>...",
		Short: "Add feed identities to a chat user",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			link, err := app.service.AddIdentities(cmd.Context(), application.SetLinkCommand{
				UserID:     domain.UserID(args[0]),
				Identities: args[1:],
			})
			if err != nil {
				return err
			}

			return writeLink(cmd, link)
		},
	}
}

func newLinkRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <user-id>",
		Short: "Remove every feed identity linked to a chat user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.service.RemoveLink(cmd.Context(), application.RemoveLinkCommand{
				UserID: domain.UserID(args[0]),
			})
		},
	}
}

func newLinkListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List identity links",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			links, err := app.service.ListLinks(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(links)
			}

			for _, link := range links {
				if err := writeLink(cmd, link); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func writeLink(cmd *cobra.Command, link domain.IdentityLink) error {
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n",
		sanitizeForTerminal(string(link.UserID)),
		sanitizeForTerminal(strings.Join(link.Identities, ", ")),
	)
	return err
}
