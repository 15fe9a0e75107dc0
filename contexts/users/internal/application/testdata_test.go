package application_test

import (
	"context"

	"github.com/go-arrower/users/contexts/users/internal/domain"
)

var ctx = context.Background()

var (
	luismi = domain.SeedUsers()[0]
	angel  = domain.SeedUsers()[1]
)
