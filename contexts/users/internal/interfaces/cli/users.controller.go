package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/go-arrower/users/contexts/users/internal/application"
	"github.com/go-arrower/users/contexts/users/internal/domain"
)

var ErrInvalidID = errors.New("invalid user id")

const (
	flagUsername            = "username"
	flagEmail               = "email"
	flagAllowDuplicateEmail = "allow-duplicate-email"
)

// NewUsersController returns a controller working on app.
// newDemoApp is called on every run of the demo command,
// it has to return an App working on a store of its own, holding the seed users.
func NewUsersController(app *application.App, newDemoApp func() *application.App) *UsersController {
	return &UsersController{app: app, newDemoApp: newDemoApp}
}

// UsersController exposes the use cases of the users Context as cobra commands.
// All commands print users as JSON to the command's out writer.
type UsersController struct {
	app        *application.App
	newDemoApp func() *application.App
}

// Commands returns all commands of the controller, ready to be added to a root command.
func (uc *UsersController) Commands() []*cobra.Command {
	return []*cobra.Command{
		uc.List(),
		uc.Show(),
		uc.Create(),
		uc.Update(),
		uc.Delete(),
		uc.EmailExists(),
		uc.Demo(),
	}
}

func (uc *UsersController) List() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := uc.app.ListUsers.H(cmd.Context(), application.ListUsersQuery{})
			if err != nil {
				return fmt.Errorf("could not list users: %w", err)
			}

			return printJSON(cmd.OutOrStdout(), res.Users)
		},
	}
}

func (uc *UsersController) Show() *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show the user with the given id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			res, err := uc.app.ShowUser.H(cmd.Context(), application.ShowUserQuery{ID: id})
			if err != nil {
				return err //nolint:wrapcheck // the use case error is the message for the user
			}

			return printJSON(cmd.OutOrStdout(), res.User)
		},
	}
}

func (uc *UsersController) Create() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			username, _ := cmd.Flags().GetString(flagUsername)
			email, _ := cmd.Flags().GetString(flagEmail)
			allowDuplicate, _ := cmd.Flags().GetBool(flagAllowDuplicateEmail)

			res, err := uc.app.CreateUser.H(cmd.Context(), application.CreateUserRequest{
				Username:            username,
				Email:               email,
				AllowDuplicateEmail: allowDuplicate,
			})
			if err != nil {
				return fmt.Errorf("could not create user: %w", err)
			}

			return printJSON(cmd.OutOrStdout(), res.User)
		},
	}

	cmd.Flags().String(flagUsername, "", "name of the new user")
	cmd.Flags().String(flagEmail, "", "email of the new user")
	cmd.Flags().Bool(flagAllowDuplicateEmail, false, "create the user, even if the email is already in use")
	_ = cmd.MarkFlagRequired(flagUsername)
	_ = cmd.MarkFlagRequired(flagEmail)

	return cmd
}

func (uc *UsersController) Update() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change the username of the user with the given id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			username, _ := cmd.Flags().GetString(flagUsername)

			res, err := uc.app.UpdateUser.H(cmd.Context(), application.UpdateUserRequest{ID: id, Username: username})
			if err != nil {
				return fmt.Errorf("could not update user: %w", err)
			}

			return printJSON(cmd.OutOrStdout(), res.User)
		},
	}

	cmd.Flags().String(flagUsername, "", "new name of the user")
	_ = cmd.MarkFlagRequired(flagUsername)

	return cmd
}

func (uc *UsersController) Delete() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete the user with the given id and list the remaining users",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := uc.app.DeleteUser.H(cmd.Context(), application.DeleteUserCommand{ID: id}); err != nil {
				return fmt.Errorf("could not delete user: %w", err)
			}

			res, err := uc.app.ListUsers.H(cmd.Context(), application.ListUsersQuery{})
			if err != nil {
				return fmt.Errorf("could not list users: %w", err)
			}

			return printJSON(cmd.OutOrStdout(), res.Users)
		},
	}
}

func (uc *UsersController) EmailExists() *cobra.Command {
	return &cobra.Command{
		Use:   "email-exists EMAIL",
		Short: "Print true, if a user has exactly the given email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := uc.app.CheckEmail.H(cmd.Context(), application.CheckEmailQuery{Email: args[0]})
			if err != nil {
				return fmt.Errorf("could not check email: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), res.Exists)

			return nil
		},
	}
}

func parseID(arg string) (domain.ID, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, arg)
	}

	return domain.ID(id), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("could not print json: %w", err)
	}

	return nil
}
