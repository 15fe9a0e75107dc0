package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-arrower/users/alog"
	"github.com/go-arrower/users/app"
	"github.com/go-arrower/users/contexts/users/internal/domain"
)

func NewCreateUserRequestHandler(
	logger alog.Logger,
	repo domain.Repository,
) app.Request[CreateUserRequest, CreateUserResponse] {
	return app.NewValidatedRequest[CreateUserRequest, CreateUserResponse](nil, &createUserRequestHandler{
		logger: logger,
		repo:   repo,
	})
}

type createUserRequestHandler struct {
	logger alog.Logger
	repo   domain.Repository
}

type (
	CreateUserRequest struct {
		Username string `validate:"required,max=256"`
		Email    string `validate:"required,max=1024"`

		// AllowDuplicateEmail skips the unique email check,
		// leaving the repository's behaviour of accepting any email.
		AllowDuplicateEmail bool
	}
	CreateUserResponse struct {
		User domain.User
	}
)

func (h *createUserRequestHandler) H(ctx context.Context, req CreateUserRequest) (CreateUserResponse, error) {
	newUser := domain.NewUser{
		Username: req.Username,
		Email:    req.Email,
	}

	if req.AllowDuplicateEmail {
		usr := h.repo.Create(ctx, newUser)
		h.logger.InfoContext(ctx, "user created", slog.Int("id", int(usr.ID)))

		return CreateUserResponse{User: usr}, nil
	}

	usr, created := h.repo.CreateWithUniqueEmail(ctx, newUser)
	if !created {
		h.logger.Log(ctx, slog.LevelInfo, "create user rejected",
			slog.String("email", req.Email),
			slog.String("reason", domain.ErrEmailInUse.Error()),
		)

		return CreateUserResponse{}, fmt.Errorf("%w: %s", ErrEmailInUse, req.Email)
	}

	h.logger.InfoContext(ctx, "user created", slog.Int("id", int(usr.ID)))

	return CreateUserResponse{User: usr}, nil
}
