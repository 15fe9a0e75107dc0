// Package init is the context's startup API.
//
// Put all initialisations here.
// For example, setup dependency injection and register commands.
package init

import (
	"context"
	"fmt"

	"github.com/go-arrower/users"
	"github.com/go-arrower/users/alog"
	"github.com/go-arrower/users/app"
	"github.com/go-arrower/users/contexts/users/internal/application"
	"github.com/go-arrower/users/contexts/users/internal/domain"
	"github.com/go-arrower/users/contexts/users/internal/interfaces/cli"
	"github.com/go-arrower/users/contexts/users/internal/interfaces/repository"
)

const contextName = "users"

func NewUsersContext(di *users.Container) (*UsersContext, error) {
	if err := di.EnsureAllDependenciesPresent(); err != nil {
		return nil, fmt.Errorf("could not initialise users context: %w", err)
	}

	logger := di.Logger.WithGroup(contextName)

	var repo domain.Repository = repository.NewUserMemoryRepository()
	if di.Config.Users.Seed {
		repo = repository.NewSeededUserMemoryRepository()
	}

	usersApp := newApp(di, logger, repo)
	newDemoApp := func() *application.App {
		return newApp(di, logger, repository.NewSeededUserMemoryRepository())
	}

	usersContext := &UsersContext{
		app:    usersApp,
		logger: logger,
	}

	di.RootCmd.AddCommand(cli.NewUsersController(usersApp, newDemoApp).Commands()...)

	logger.DebugContext(context.Background(), "users context initialised", "seeded", di.Config.Users.Seed)

	return usersContext, nil
}

func newApp(di *users.Container, logger alog.Logger, repo domain.Repository) *application.App {
	return &application.App{
		ListUsers: app.NewInstrumentedQuery(di.TraceProvider, di.MeterProvider, logger,
			application.NewListUsersQueryHandler(repo),
		),
		ShowUser: app.NewInstrumentedQuery(di.TraceProvider, di.MeterProvider, logger,
			application.NewShowUserQueryHandler(repo),
		),
		CheckEmail: app.NewInstrumentedQuery(di.TraceProvider, di.MeterProvider, logger,
			application.NewCheckEmailQueryHandler(repo),
		),
		CreateUser: app.NewInstrumentedRequest(di.TraceProvider, di.MeterProvider, logger,
			application.NewCreateUserRequestHandler(logger, repo),
		),
		UpdateUser: app.NewInstrumentedRequest(di.TraceProvider, di.MeterProvider, logger,
			application.NewUpdateUserRequestHandler(repo),
		),
		DeleteUser: app.NewInstrumentedCommand(di.TraceProvider, di.MeterProvider, logger,
			application.NewDeleteUserCommandHandler(repo),
		),
	}
}

type UsersContext struct {
	app    *application.App
	logger alog.Logger
}

func (c *UsersContext) Shutdown(_ context.Context) error {
	return nil
}
