package repository

import (
	"context"

	"github.com/go-arrower/users/contexts/users/internal/domain"
	"github.com/go-arrower/users/repository"
)

// NewSeededUserMemoryRepository returns a repository holding domain.SeedUsers.
func NewSeededUserMemoryRepository() *MemoryRepository {
	return NewUserMemoryRepository(domain.SeedUsers()...)
}

// NewUserMemoryRepository returns a repository holding users in the given order.
func NewUserMemoryRepository(users ...domain.User) *MemoryRepository {
	return &MemoryRepository{
		MemoryRepository: repository.NewMemoryRepository[domain.User, domain.ID](users),
	}
}

// MemoryRepository keeps all users in memory, in insertion order.
// Users handed out are copies; changing them does not change the repository.
type MemoryRepository struct {
	*repository.MemoryRepository[domain.User, domain.ID]
}

var _ domain.Repository = (*MemoryRepository)(nil)

func (repo *MemoryRepository) Create(ctx context.Context, user domain.NewUser) domain.User {
	return repo.MemoryRepository.Create(ctx, newUser(user))
}

func (repo *MemoryRepository) CreateWithUniqueEmail(ctx context.Context, user domain.NewUser) (domain.User, bool) {
	return repo.MemoryRepository.CreateUnless(ctx, func(u domain.User) bool {
		return u.Email == user.Email
	}, newUser(user))
}

func newUser(user domain.NewUser) func(id domain.ID) domain.User {
	return func(id domain.ID) domain.User {
		return domain.User{
			ID:       id,
			Username: user.Username,
			Email:    user.Email,
		}
	}
}

func (repo *MemoryRepository) UpdateByID(ctx context.Context, id domain.ID, changes domain.Changes) (domain.User, bool) {
	return repo.MemoryRepository.UpdateByID(ctx, id, func(u *domain.User) {
		u.Username = changes.Username
	})
}

func (repo *MemoryRepository) Update(ctx context.Context, user domain.User) (domain.User, bool) {
	return repo.UpdateByID(ctx, user.ID, domain.Changes{Username: user.Username})
}

func (repo *MemoryRepository) Delete(ctx context.Context, id domain.ID) {
	repo.DeleteByID(ctx, id)
}
