package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gathering",
		Short:         "Relay chat-announced game lobbies into notification channels",
		Long:          "gathering watches community chats for lobby codes and player counts, opens one notification channel per lobby on the relay guild, keeps its status current and retires it when the lobby fills up or goes quiet.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newServeCmd(app),
		newLinkCmd(app),
		newSecretCmd(app),
		newLobbiesCmd(app),
		newCommunitiesCmd(app),
	)

	return rootCmd
}
