package domain

import (
	"context"
	"errors"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailInUse = errors.New("email already in use")
)

type (
	// ID is the primary identifier of a User.
	// It is assigned by the Repository, only seed data brings its own IDs.
	ID int

	// User is a registered user.
	// Email is meant to be unique, but only EmailExists checks it.
	User struct {
		ID       ID     `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
	}

	// NewUser holds everything needed to create a User, except the ID.
	NewUser struct {
		Username string `json:"username"`
		Email    string `json:"email"`
	}

	// Changes holds the fields of a User that can be updated.
	Changes struct {
		Username string `json:"username"`
	}
)

// SeedUsers returns the users every new seeded Repository starts with.
func SeedUsers() []User {
	return []User{
		{ID: 1, Username: "Luis Miguel López", Email: "luismi@email.com"},
		{ID: 2, Username: "Ángel Naranjo", Email: "angel@email.com"},
	}
}

// EmailExists reports whether any user in repo has exactly the given email.
// The comparison is case-sensitive.
//
// The Repository never enforces unique emails itself;
// call EmailExists before creating a user if you need that guarantee.
func EmailExists(ctx context.Context, repo Repository, email string) bool {
	for _, u := range repo.FindAll(ctx) {
		if u.Email == email {
			return true
		}
	}

	return false
}
