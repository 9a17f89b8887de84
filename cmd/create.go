package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bnema/panelbot/internal/adapters/render/reply"
	"github.com/bnema/panelbot/internal/application"
	"github.com/bnema/panelbot/internal/domain"
)

const defaultOfferingKey domain.OfferingKey = "paper"

type createArgs struct {
	name     string
	memory   int
	cpu      int
	disk     int
	offering domain.OfferingKey
}

func newCreateCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "create <name> <ram-mb> <cpu-percent> <disk-mb> [offering]",
		Short: "Create a server within your tier limits",
		Args:  cobra.RangeArgs(4, 5),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := actingUser(cmd)
			if err != nil {
				return err
			}
			parsed, err := parseCreateArgs(args, app.provisioning.Catalog())
			if err != nil {
				return asUserError(err)
			}

			member, err := app.members.Owner(cmd.Context(), userID)
			if err != nil {
				return asUserError(err)
			}

			return runCreate(cmd, app, application.CreateServerCommand{
				Owner:      member.PanelUserID,
				Invites:    member.Invites,
				Offering:   parsed.offering,
				Name:       parsed.name,
				MemoryMB:   parsed.memory,
				CPUPercent: parsed.cpu,
				DiskMB:     parsed.disk,
			})
		},
	}
}

func runCreate(cmd *cobra.Command, app *app, command application.CreateServerCommand) error {
	var identifier domain.InstanceIdentifier
	err := runProgressSpinner(cmd.Context(), cmd.ErrOrStderr(), "Creating server...", func(ctx context.Context) error {
		var err error
		identifier, err = app.provisioning.CreateOneShot(ctx, command)
		return err
	})
	if err != nil {
		return asUserError(err)
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), reply.Created(identifier))
	return nil
}

// parseCreateArgs reads name, memory, cpu, disk and an optional offering.
func parseCreateArgs(args []string, catalog *domain.Catalog) (createArgs, error) {
	parsed := createArgs{name: args[0]}

	for _, field := range []struct {
		name   string
		raw    string
		target *int
	}{
		{"memory", args[1], &parsed.memory},
		{"cpu", args[2], &parsed.cpu},
		{"disk", args[3], &parsed.disk},
	} {
		value, err := strconv.Atoi(field.raw)
		if err != nil {
			return createArgs{}, domain.NewValidationError(field.name, "must be a whole number, got %q", field.raw)
		}
		*field.target = value
	}

	if len(args) == 5 {
		parsed.offering = domain.OfferingKey(args[4])
		return parsed, nil
	}

	if _, ok := catalog.Get(defaultOfferingKey); ok {
		parsed.offering = defaultOfferingKey
		return parsed, nil
	}
	if keys := catalog.Keys(); len(keys) > 0 {
		parsed.offering = keys[0]
	}
	return parsed, nil
}
