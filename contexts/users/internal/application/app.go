package application

import (
	"github.com/go-arrower/users/app"
	"github.com/go-arrower/users/contexts/users/internal/domain"
)

var (
	ErrUserNotFound = domain.ErrNotFound
	ErrEmailInUse   = domain.ErrEmailInUse
)

// App is a dependency injection container holding all use cases of the users Context.
type App struct {
	ListUsers  app.Query[ListUsersQuery, ListUsersResponse]
	ShowUser   app.Query[ShowUserQuery, ShowUserResponse]
	CheckEmail app.Query[CheckEmailQuery, CheckEmailResponse]
	CreateUser app.Request[CreateUserRequest, CreateUserResponse]
	UpdateUser app.Request[UpdateUserRequest, UpdateUserResponse]
	DeleteUser app.Command[DeleteUserCommand]
}
