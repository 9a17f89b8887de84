package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/panelbot/internal/application"
	"github.com/bnema/panelbot/internal/domain"
)

type accountFlags struct {
	email     string
	username  string
	firstName string
	lastName  string
	password  string
}

func (f *accountFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.email, "email", "", "panel account email")
	cmd.Flags().StringVar(&f.username, "username", "", "panel username")
	cmd.Flags().StringVar(&f.firstName, "first-name", "", "first name (defaults to username)")
	cmd.Flags().StringVar(&f.lastName, "last-name", "", "last name (defaults to username)")
	cmd.Flags().StringVar(&f.password, "password", "", "initial password (the panel emails a reset link when empty)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("username")
}

func (f *accountFlags) account() domain.PanelAccount {
	account := domain.PanelAccount{
		Email:     f.email,
		Username:  f.username,
		FirstName: f.firstName,
		LastName:  f.lastName,
		Password:  f.password,
	}
	if account.FirstName == "" {
		account.FirstName = account.Username
	}
	if account.LastName == "" {
		account.LastName = account.Username
	}
	return account
}

func newRegisterCmd(app *app) *cobra.Command {
	flags := &accountFlags{}

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a panel account and link it to your chat user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := actingUser(cmd)
			if err != nil {
				return err
			}
			return runRegister(cmd, app, userID, flags)
		},
	}
	flags.register(cmd)

	return cmd
}

func runRegister(cmd *cobra.Command, app *app, userID domain.UserID, flags *accountFlags) error {
	member, err := app.members.Register(cmd.Context(), application.RegisterCommand{
		UserID:  userID,
		Account: flags.account(),
	})
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Linked %s to panel user %d\n", member.UserID, member.PanelUserID)
	return nil
}
