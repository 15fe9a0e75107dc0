package application

import (
	"context"
	"fmt"

	"github.com/go-arrower/users/app"
	"github.com/go-arrower/users/contexts/users/internal/domain"
)

func NewUpdateUserRequestHandler(repo domain.Repository) app.Request[UpdateUserRequest, UpdateUserResponse] {
	return app.NewValidatedRequest[UpdateUserRequest, UpdateUserResponse](nil, &updateUserRequestHandler{repo: repo})
}

type updateUserRequestHandler struct {
	repo domain.Repository
}

type (
	UpdateUserRequest struct {
		ID       domain.ID
		Username string `validate:"required,max=256"`
	}
	UpdateUserResponse struct {
		User domain.User
	}
)

// H changes the username. The email of a user can not be changed.
func (h *updateUserRequestHandler) H(ctx context.Context, req UpdateUserRequest) (UpdateUserResponse, error) {
	usr, found := h.repo.UpdateByID(ctx, req.ID, domain.Changes{Username: req.Username})
	if !found {
		return UpdateUserResponse{}, fmt.Errorf("%w: id %d", ErrUserNotFound, req.ID)
	}

	return UpdateUserResponse{User: usr}, nil
}
