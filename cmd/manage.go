package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/panelbot/internal/application"
	"github.com/bnema/panelbot/internal/domain"
)

func newManageCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manage <identifier> <action>",
		Short: "Send one action to your server (start, stop, restart, kill, reinstall, info)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := actingUser(cmd)
			if err != nil {
				return err
			}

			key, err := app.credentials.ClientKey(cmd.Context(), userID)
			if err != nil {
				return asUserError(err)
			}

			result, err := app.manage.Dispatch(cmd.Context(), key, domain.InstanceIdentifier(args[0]), application.ManageAction(args[1]))
			if err != nil {
				return asUserError(err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.AddCommand(newManageKeyCmd(app))

	return cmd
}

func newManageKeyCmd(app *app) *cobra.Command {
	var remove bool

	cmd := &cobra.Command{
		Use:   "key [client-key]",
		Short: "Store or remove your panel client API key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := actingUser(cmd)
			if err != nil {
				return err
			}

			if remove {
				if err := app.credentials.RemoveClientKey(cmd.Context(), userID); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Client key removed")
				return nil
			}

			if len(args) != 1 {
				return fmt.Errorf("client key argument is required")
			}
			if err := app.credentials.SetClientKey(cmd.Context(), userID, domain.ClientKey(args[0])); err != nil {
				return asUserError(err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Client key stored")
			return nil
		},
	}
	cmd.Flags().BoolVar(&remove, "remove", false, "remove the stored key")

	return cmd
}
