package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/panelbot/internal/adapters/render/reply"
	"github.com/bnema/panelbot/internal/domain"
)

func newPlansCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "plans",
		Short: "List tiers and the limits each unlocks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			invites := -1
			if userID, err := actingUser(cmd); err == nil {
				member, err := app.members.Get(cmd.Context(), userID)
				if err != nil {
					return err
				}
				invites = member.Invites
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), reply.Plans(app.provisioning.Tiers(), invites))
			return nil
		},
	}
}

func newOfferingsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "offerings",
		Short: "List deployable server offerings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), reply.Offerings(app.provisioning.Catalog()))
			return nil
		},
	}
}

func newInvitesCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "invites [user]",
		Short: "Show invite count, tier and progress to the next tier",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var userID domain.UserID
			if len(args) == 1 {
				userID = domain.UserID(args[0])
			} else {
				var err error
				if userID, err = actingUser(cmd); err != nil {
					return err
				}
			}

			status, err := app.members.InviteStatus(cmd.Context(), userID)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), reply.Invites(status))
			return nil
		},
	}
}

func newNodeCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "node",
		Short: "Show free allocations on the configured node",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := app.provisioning.NodeStats(cmd.Context())
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), reply.Node(stats))
			return nil
		},
	}
}
