package domain

import "context"

// Repository is an ordered collection of users.
// Lookups scan from the first user and return the first match;
// absence is reported with false, never with an error.
type Repository interface {
	FindAll(ctx context.Context) []User
	FindByID(ctx context.Context, id ID) (User, bool)
	Count(ctx context.Context) int

	// Create assigns the ID: the ID of the last user + 1, or 1 if there is none.
	Create(ctx context.Context, user NewUser) User
	// CreateWithUniqueEmail is Create, unless a user with the same Email exists.
	// The check and the creation are atomic; false means nothing got created.
	CreateWithUniqueEmail(ctx context.Context, user NewUser) (User, bool)

	// UpdateByID changes the Username only, Email and ID stay untouched.
	UpdateByID(ctx context.Context, id ID, changes Changes) (User, bool)
	// Update is UpdateByID with the ID taken from user.
	Update(ctx context.Context, user User) (User, bool)

	// Delete removes the first user with id. Missing users are ignored.
	Delete(ctx context.Context, id ID)
}
