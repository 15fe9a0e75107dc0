package init

import (
	"context"
	"errors"
	"fmt"

	usersAPI "github.com/go-arrower/users/contexts/users"
	"github.com/go-arrower/users/contexts/users/internal/application"
	"github.com/go-arrower/users/contexts/users/internal/domain"
)

// API returns the intraprocess API of the Context, for other Contexts to use.
// It calls the same instrumented use cases as the commands do.
func (c *UsersContext) API() usersAPI.API { //nolint:ireturn // the API is the contract between Contexts
	return &localAPI{app: c.app}
}

type localAPI struct {
	app *application.App
}

var _ usersAPI.API = (*localAPI)(nil)

func (api *localAPI) All(ctx context.Context) ([]usersAPI.User, error) {
	res, err := api.app.ListUsers.H(ctx, application.ListUsersQuery{})
	if err != nil {
		return nil, fmt.Errorf("could not list users: %w", err)
	}

	all := make([]usersAPI.User, 0, len(res.Users))
	for _, u := range res.Users {
		all = append(all, toAPIUser(u))
	}

	return all, nil
}

func (api *localAPI) UserByID(ctx context.Context, id usersAPI.UserID) (usersAPI.User, error) {
	res, err := api.app.ShowUser.H(ctx, application.ShowUserQuery{ID: domain.ID(id)})
	if errors.Is(err, application.ErrUserNotFound) {
		return usersAPI.User{}, fmt.Errorf("%w: id %d", usersAPI.ErrNotFound, id)
	}

	if err != nil {
		return usersAPI.User{}, fmt.Errorf("could not show user: %w", err)
	}

	return toAPIUser(res.User), nil
}

func (api *localAPI) EmailExists(ctx context.Context, email string) (bool, error) {
	res, err := api.app.CheckEmail.H(ctx, application.CheckEmailQuery{Email: email})
	if err != nil {
		return false, fmt.Errorf("could not check email: %w", err)
	}

	return res.Exists, nil
}

func toAPIUser(u domain.User) usersAPI.User {
	return usersAPI.User{
		ID:       usersAPI.UserID(u.ID),
		Username: u.Username,
		Email:    u.Email,
	}
}
