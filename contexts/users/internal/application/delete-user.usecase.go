package application

import (
	"context"

	"github.com/go-arrower/users/app"
	"github.com/go-arrower/users/contexts/users/internal/domain"
)

func NewDeleteUserCommandHandler(repo domain.Repository) app.Command[DeleteUserCommand] {
	return &deleteUserCommandHandler{repo: repo}
}

type deleteUserCommandHandler struct {
	repo domain.Repository
}

type DeleteUserCommand struct {
	ID domain.ID
}

// H never fails: deleting an unknown user is not an error.
func (h *deleteUserCommandHandler) H(ctx context.Context, cmd DeleteUserCommand) error {
	h.repo.Delete(ctx, cmd.ID)

	return nil
}
