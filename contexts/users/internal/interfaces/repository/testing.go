package repository

import (
	"testing"

	"github.com/go-arrower/users/contexts/users/internal/domain"
	"github.com/go-arrower/users/repository"
)

// TestAssert returns assertions on the users kept in repo.
func TestAssert(t *testing.T, repo *MemoryRepository) *repository.TestAssertions[domain.User, domain.ID] {
	return repository.TestAssert(t, repo.MemoryRepository)
}
