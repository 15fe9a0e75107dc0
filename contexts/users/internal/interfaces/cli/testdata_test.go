package cli_test

import (
	"context"

	"github.com/go-arrower/users/alog"
	"github.com/go-arrower/users/contexts/users/internal/application"
	"github.com/go-arrower/users/contexts/users/internal/domain"
	"github.com/go-arrower/users/contexts/users/internal/interfaces/cli"
	"github.com/go-arrower/users/contexts/users/internal/interfaces/repository"
)

var ctx = context.Background()

const (
	luismiJSON = `{"id":1,"username":"Luis Miguel López","email":"luismi@email.com"}`
	angelJSON  = `{"id":2,"username":"Ángel Naranjo","email":"angel@email.com"}`
)

func newController(repo domain.Repository) *cli.UsersController {
	return cli.NewUsersController(newApp(repo), func() *application.App {
		return newApp(repository.NewSeededUserMemoryRepository())
	})
}

func newApp(repo domain.Repository) *application.App {
	return &application.App{
		ListUsers:  application.NewListUsersQueryHandler(repo),
		ShowUser:   application.NewShowUserQueryHandler(repo),
		CheckEmail: application.NewCheckEmailQueryHandler(repo),
		CreateUser: application.NewCreateUserRequestHandler(alog.NewNoop(), repo),
		UpdateUser: application.NewUpdateUserRequestHandler(repo),
		DeleteUser: application.NewDeleteUserCommandHandler(repo),
	}
}

func newSeededController() *cli.UsersController {
	return newController(repository.NewSeededUserMemoryRepository())
}
