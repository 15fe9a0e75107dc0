// Package users is the intraprocess API of what this Context is exposing to other Contexts to use.
package users

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("user not found")

// API is the api of the users Context.
type API interface {
	All(ctx context.Context) ([]User, error)
	UserByID(ctx context.Context, id UserID) (User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type UserID int

// User is a registered user, as other Contexts see it.
type User struct {
	ID       UserID
	Username string
	Email    string
}
