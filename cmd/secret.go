package cmd

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/bnema/gathering-relay/internal/application"
)

var secretNames = map[string]string{
	"discord": application.SecretDiscordToken,
	"feed":    application.SecretFeedToken,
}

func newSecretCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "secret",
		Short: "Manage the bot and lobby feed tokens",
	}

	cmd.AddCommand(newSecretSetCmd(app), newSecretRemoveCmd(app))

	return cmd
}

func newSecretSetCmd(app *app) *cobra.Command {
	var value string

	cmd := &cobra.Command{
		Use:       "set <discord|feed>",
		Short:     "Store a token in the secret store",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"discord", "feed"},
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parseSecretName(args[0])
			if err != nil {
				return err
			}

			return app.service.SetSecret(cmd.Context(), application.SetSecretCommand{
				Key:   key,
				Value: value,
			})
		},
	}

	cmd.Flags().StringVar(&value, "value", "", "Token value")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func newSecretRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:       "remove <discord|feed>",
		Short:     "Remove a token from the secret store",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"discord", "feed"},
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parseSecretName(args[0])
			if err != nil {
				return err
			}

			return app.service.RemoveSecret(cmd.Context(), key)
		},
	}
}

func parseSecretName(raw string) (string, error) {
	key, ok := secretNames[strings.ToLower(strings.TrimSpace(raw))]
	if !ok {
		return "", fmt.Errorf("unsupported secret %q (expected discord|feed)", raw)
	}
	return key, nil
}

func sanitizeForTerminal(value string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, value)
}
