package application

import (
	"context"

	"github.com/go-arrower/users/app"
	"github.com/go-arrower/users/contexts/users/internal/domain"
)

func NewListUsersQueryHandler(repo domain.Repository) app.Query[ListUsersQuery, ListUsersResponse] {
	return &listUsersQueryHandler{repo: repo}
}

type listUsersQueryHandler struct {
	repo domain.Repository
}

type (
	ListUsersQuery    struct{}
	ListUsersResponse struct {
		Users []domain.User
		Total int
	}
)

func (h *listUsersQueryHandler) H(ctx context.Context, _ ListUsersQuery) (ListUsersResponse, error) {
	users := h.repo.FindAll(ctx)

	return ListUsersResponse{
		Users: users,
		Total: len(users),
	}, nil
}
