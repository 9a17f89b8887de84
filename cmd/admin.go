package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bnema/panelbot/internal/adapters/render/reply"
	"github.com/bnema/panelbot/internal/application"
	"github.com/bnema/panelbot/internal/domain"
)

func newAdminCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administer members, invites and servers",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := actingUser(cmd)
			if err != nil {
				return err
			}
			return asUserError(app.members.RequireAdmin(cmd.Context(), userID))
		},
	}

	cmd.AddCommand(
		newAdminLinkCmd(app),
		newAdminUnlinkCmd(app),
		newAdminInvitesCmd(app),
		newAdminGrantCmd(app, "add", true),
		newAdminGrantCmd(app, "remove", false),
		newAdminCreateServerCmd(app),
		newAdminDeleteServerCmd(app),
		newAdminServersCmd(app),
	)

	return cmd
}

func newAdminLinkCmd(app *app) *cobra.Command {
	flags := &accountFlags{}

	cmd := &cobra.Command{
		Use:   "link <user>",
		Short: "Create or find a panel account and link it to a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegister(cmd, app, domain.UserID(args[0]), flags)
		},
	}
	flags.register(cmd)

	return cmd
}

func newAdminUnlinkCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unlink <user>",
		Short: "Remove a user's panel account link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			member, err := app.members.Unlink(cmd.Context(), domain.UserID(args[0]))
			if err != nil {
				return asUserError(err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unlinked %s\n", member.UserID)
			return nil
		},
	}
}

func newAdminInvitesCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invites",
		Short: "Adjust a user's invite count",
	}

	for _, op := range []struct {
		use   string
		short string
		apply func(*cobra.Command, domain.UserID, int) (domain.Member, error)
	}{
		{
			use:   "add <user> <count>",
			short: "Add invites to a user",
			apply: func(cmd *cobra.Command, id domain.UserID, count int) (domain.Member, error) {
				return app.members.AddInvites(cmd.Context(), id, count)
			},
		},
		{
			use:   "remove <user> <count>",
			short: "Remove invites from a user (never below zero)",
			apply: func(cmd *cobra.Command, id domain.UserID, count int) (domain.Member, error) {
				return app.members.RemoveInvites(cmd.Context(), id, count)
			},
		},
	} {
		op := op
		cmd.AddCommand(&cobra.Command{
			Use:   op.use,
			Short: op.short,
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				count, err := strconv.Atoi(args[1])
				if err != nil {
					return asUserError(domain.NewValidationError("count", "must be a whole number, got %q", args[1]))
				}

				member, err := op.apply(cmd, domain.UserID(args[0]), count)
				if err != nil {
					return asUserError(err)
				}

				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s now has %d invite(s)\n", member.UserID, member.Invites)
				return nil
			},
		})
	}

	return cmd
}

func newAdminGrantCmd(app *app, use string, admin bool) *cobra.Command {
	short := "Grant bot admin rights to a user"
	if !admin {
		short = "Revoke bot admin rights from a user"
	}

	return &cobra.Command{
		Use:   use + " <user>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			member, err := app.members.SetAdmin(cmd.Context(), domain.UserID(args[0]), admin)
			if err != nil {
				return asUserError(err)
			}

			if member.Admin {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s is now an admin\n", member.UserID)
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s is no longer an admin\n", member.UserID)
			}
			return nil
		},
	}
}

func newAdminCreateServerCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "create-server <owner-email> <offering> <name> <ram-mb> <cpu-percent> <disk-mb>",
		Short: "Create a server for any panel user within admin limits",
		Args:  cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parseCreateArgs([]string{args[2], args[3], args[4], args[5], args[1]}, app.provisioning.Catalog())
			if err != nil {
				return asUserError(err)
			}

			owner, err := app.members.ResolveOwnerByEmail(cmd.Context(), args[0])
			if err != nil {
				return asUserError(err)
			}

			bounds := app.cfg.AdminBounds()
			return runCreate(cmd, app, application.CreateServerCommand{
				Owner:       owner,
				Offering:    parsed.offering,
				Name:        parsed.name,
				MemoryMB:    parsed.memory,
				CPUPercent:  parsed.cpu,
				DiskMB:      parsed.disk,
				AdminBounds: &bounds,
			})
		},
	}
}

func newAdminDeleteServerCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-server <id>",
		Short: "Delete a server by its numeric panel id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return asUserError(domain.NewValidationError("server id", "must be a whole number, got %q", args[0]))
			}

			if err := app.provisioning.DeleteServer(cmd.Context(), domain.ServerID(id)); err != nil {
				return asUserError(err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted server %d\n", id)
			return nil
		},
	}
}

func newAdminServersCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "servers",
		Short: "List every server on the panel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			servers, err := app.provisioning.ListServers(cmd.Context())
			if err != nil {
				return asUserError(err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), reply.Servers(servers))
			return nil
		},
	}
}
