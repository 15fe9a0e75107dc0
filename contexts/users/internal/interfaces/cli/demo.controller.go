package cli

import (
	"errors"
	"fmt"

	"github.com/fatih/color" //nolint:misspell
	"github.com/spf13/cobra"

	"github.com/go-arrower/users/contexts/users/internal/application"
)

// Demo walks through the lifecycle of a user against a freshly seeded store:
// create, delete another user, look the deleted one up, and rename a user.
// The store of the other commands is not touched.
func (uc *UsersController) Demo() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a create, delete, and update scenario and print every step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			w := cmd.OutOrStdout()
			demo := uc.newDemoApp()

			list := func(title string) error {
				res, err := demo.ListUsers.H(ctx, application.ListUsersQuery{})
				if err != nil {
					return fmt.Errorf("could not list users: %w", err)
				}

				heading(w, "%s (%d)\n", title, res.Total)

				return printJSON(w, res.Users)
			}

			if err := list("users"); err != nil {
				return err
			}

			created, err := demo.CreateUser.H(ctx, application.CreateUserRequest{Username: "C", Email: "c@x.com"})
			if err != nil {
				return fmt.Errorf("could not create user: %w", err)
			}

			heading(w, "created user %d\n", created.User.ID)

			if err := printJSON(w, created.User); err != nil {
				return err
			}

			if err := list("users after create"); err != nil {
				return err
			}

			if err := demo.DeleteUser.H(ctx, application.DeleteUserCommand{ID: 1}); err != nil {
				return fmt.Errorf("could not delete user: %w", err)
			}

			if err := list("users after deleting user 1"); err != nil {
				return err
			}

			heading(w, "show user 1\n")

			_, err = demo.ShowUser.H(ctx, application.ShowUserQuery{ID: 1})
			if !errors.Is(err, application.ErrUserNotFound) {
				return fmt.Errorf("deleted user is still present: %w", err)
			}

			fmt.Fprintln(w, err)

			updated, err := demo.UpdateUser.H(ctx, application.UpdateUserRequest{ID: 2, Username: "Angel N."})
			if err != nil {
				return fmt.Errorf("could not update user: %w", err)
			}

			heading(w, "updated user %d\n", updated.User.ID)

			return printJSON(w, updated.User)
		},
	}
}

var heading = color.New(color.FgBlue, color.Bold).FprintfFunc() //nolint:gochecknoglobals // stateless printer
