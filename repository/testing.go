package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test returns a MemoryRepository tuned for unit testing,
// holding the given entities.
func Test[E any, ID id](t *testing.T, entities ...E) *TestRepository[E, ID] {
	if t == nil {
		panic("t is nil")
	}

	repo := NewMemoryRepository[E, ID](entities)

	return &TestRepository[E, ID]{
		MemoryRepository: repo,
		TestAssertions:   TestAssert[E, ID](t, repo),
	}
}

// TestRepository is a special MemoryRepository for unit testing.
// It exposes all methods of MemoryRepository and can be injected as a dependency
// in any application.
// Additionally, TestRepository exposes a set of assertions TestAssertions
// on all the entities stored in the repository.
type TestRepository[E any, ID id] struct {
	*MemoryRepository[E, ID]
	*TestAssertions[E, ID]
}

// TestAssert returns assertions on an existing repo.
// Use it, if the repository under test embeds MemoryRepository.
func TestAssert[E any, ID id](t *testing.T, repo *MemoryRepository[E, ID]) *TestAssertions[E, ID] {
	if t == nil {
		panic("t is nil")
	}

	return &TestAssertions[E, ID]{
		repo: repo,
		t:    t,
	}
}

// TestAssertions are assertions that work on a MemoryRepository, to make
// testing easier and convenient.
// The interface follows stretchr/testify as close as possible.
//
//   - Every assert func returns a bool indicating whether the assertion was successful or not,
//     this is useful for if you want to go on making further assertions under certain conditions.
type TestAssertions[E any, ID id] struct {
	repo *MemoryRepository[E, ID]
	t    *testing.T
}

// Empty asserts that the repository holds no entities.
func (a *TestAssertions[E, ID]) Empty(msgAndArgs ...any) bool {
	a.t.Helper()

	if n := a.repo.Count(context.Background()); n != 0 {
		return assert.Fail(a.t, fmt.Sprintf("repository is not empty, it has %d entities", n), msgAndArgs...)
	}

	return true
}

// NotEmpty asserts that the repository holds at least one entity.
func (a *TestAssertions[E, ID]) NotEmpty(msgAndArgs ...any) bool {
	a.t.Helper()

	if a.repo.Count(context.Background()) == 0 {
		return assert.Fail(a.t, "repository is empty, should not be", msgAndArgs...)
	}

	return true
}

// Total asserts that the repository holds exactly total entities.
func (a *TestAssertions[E, ID]) Total(total int, msgAndArgs ...any) bool {
	a.t.Helper()

	if n := a.repo.Count(context.Background()); n != total {
		return assert.Fail(a.t, fmt.Sprintf("repository does not have %d entities, it has: %d", total, n), msgAndArgs...)
	}

	return true
}

// Contains asserts that an entity with the given id is in the repository.
func (a *TestAssertions[E, ID]) Contains(id ID, msgAndArgs ...any) bool {
	a.t.Helper()

	if _, found := a.repo.FindByID(context.Background(), id); !found {
		return assert.Fail(a.t, fmt.Sprintf("repository does not contain an entity with id: %v", id), msgAndArgs...)
	}

	return true
}

// NotContains asserts that no entity with the given id is in the repository.
func (a *TestAssertions[E, ID]) NotContains(id ID, msgAndArgs ...any) bool {
	a.t.Helper()

	if _, found := a.repo.FindByID(context.Background(), id); found {
		return assert.Fail(a.t, fmt.Sprintf("repository contains an entity with id: %v, should not", id), msgAndArgs...)
	}

	return true
}
