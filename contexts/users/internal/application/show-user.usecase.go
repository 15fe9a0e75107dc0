package application

import (
	"context"
	"fmt"

	"github.com/go-arrower/users/app"
	"github.com/go-arrower/users/contexts/users/internal/domain"
)

func NewShowUserQueryHandler(repo domain.Repository) app.Query[ShowUserQuery, ShowUserResponse] {
	return &showUserQueryHandler{repo: repo}
}

type showUserQueryHandler struct {
	repo domain.Repository
}

type (
	ShowUserQuery struct {
		ID domain.ID
	}
	ShowUserResponse struct {
		User domain.User
	}
)

func (h *showUserQueryHandler) H(ctx context.Context, query ShowUserQuery) (ShowUserResponse, error) {
	usr, found := h.repo.FindByID(ctx, query.ID)
	if !found {
		return ShowUserResponse{}, fmt.Errorf("%w: id %d", ErrUserNotFound, query.ID)
	}

	return ShowUserResponse{User: usr}, nil
}
