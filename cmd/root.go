package cmd

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/panelbot/internal/domain"
)

// actingUserEnv names the chat user when --as is not given.
const actingUserEnv = "PANELBOT_USER"

var errActingUserRequired = errors.New("acting user is required (--as or " + actingUserEnv + ")")

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "panelbot",
		Short:         "panelbot: invite-gated game server provisioning on a panel",
		Long:          "panelbot lets members provision servers on a Pterodactyl-style panel within the limits their invite tier unlocks, and manage their servers through a conversational loop.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().String("as", "", "chat user id to act as (defaults to $"+actingUserEnv+")")

	rootCmd.AddCommand(newVersionCmd())

	app, err := wireApp()
	if err != nil {
		// Every other command needs the wired app, so they all report err.
		rootCmd.Args = cobra.ArbitraryArgs
		rootCmd.FParseErrWhitelist.UnknownFlags = true
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}
	rootCmd.PersistentPostRunE = func(_ *cobra.Command, _ []string) error {
		return app.close()
	}

	rootCmd.AddCommand(
		newPlansCmd(app),
		newOfferingsCmd(app),
		newInvitesCmd(app),
		newNodeCmd(app),
		newRegisterCmd(app),
		newCreateCmd(app),
		newManageCmd(app),
		newAdminCmd(app),
		newChatCmd(app),
	)

	return rootCmd
}

func actingUser(cmd *cobra.Command) (domain.UserID, error) {
	raw, err := cmd.Flags().GetString("as")
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(raw) == "" {
		raw = os.Getenv(actingUserEnv)
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errActingUserRequired
	}
	return domain.UserID(raw), nil
}
