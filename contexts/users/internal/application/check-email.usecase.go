package application

import (
	"context"

	"github.com/go-arrower/users/app"
	"github.com/go-arrower/users/contexts/users/internal/domain"
)

func NewCheckEmailQueryHandler(repo domain.Repository) app.Query[CheckEmailQuery, CheckEmailResponse] {
	return app.NewValidatedQuery[CheckEmailQuery, CheckEmailResponse](nil, &checkEmailQueryHandler{repo: repo})
}

type checkEmailQueryHandler struct {
	repo domain.Repository
}

type (
	CheckEmailQuery struct {
		Email string `validate:"required"`
	}
	CheckEmailResponse struct {
		Exists bool
	}
)

func (h *checkEmailQueryHandler) H(ctx context.Context, query CheckEmailQuery) (CheckEmailResponse, error) {
	return CheckEmailResponse{Exists: domain.EmailExists(ctx, h.repo, query.Email)}, nil
}
