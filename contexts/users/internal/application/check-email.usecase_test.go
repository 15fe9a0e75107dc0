package application_test

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/go-arrower/users/contexts/users/internal/application"
	"github.com/go-arrower/users/contexts/users/internal/interfaces/repository"
)

func TestCheckEmailQueryHandler_H(t *testing.T) {
	t.Parallel()

	handler := application.NewCheckEmailQueryHandler(repository.NewSeededUserMemoryRepository())

	res, err := handler.H(ctx, application.CheckEmailQuery{Email: luismi.Email})
	assert.NoError(t, err)
	assert.True(t, res.Exists)

	res, err = handler.H(ctx, application.CheckEmailQuery{Email: "nope@x.com"})
	assert.NoError(t, err)
	assert.False(t, res.Exists)

	_, err = handler.H(ctx, application.CheckEmailQuery{Email: ""})

	var vErr validator.ValidationErrors
	assert.ErrorAs(t, err, &vErr, "empty email is rejected")
}
