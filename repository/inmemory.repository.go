package repository

import (
	"context"
	"slices"
	"sync"
)

// NewMemoryRepository returns an ordered in-memory repository for the entity E,
// holding the given entities in the given order.
// It is expected that E has a field called `ID`, which can be overwritten by WithIDField.
//
// If your repository needs additional methods, embed the returned repository
// into your own implementation. See the examples in the test files.
func NewMemoryRepository[E any, ID id](entities []E, opts ...Option) *MemoryRepository[E, ID] {
	repo := &MemoryRepository[E, ID]{
		Mutex: &sync.Mutex{},
		Data:  make([]E, 0, len(entities)),
		repoConfig: repoConfig{
			idFieldName: "ID",
		},
	}

	for _, opt := range opts {
		opt(&repo.repoConfig)
	}

	for _, e := range entities {
		_ = repo.getID(e) // fail early for entities without a valid id field
		repo.Data = append(repo.Data, e)
	}

	return repo
}

// MemoryRepository keeps entities in insertion order.
// Every lookup is a linear scan starting at the first entity.
type MemoryRepository[E any, ID id] struct {
	// Mutex is embedded, so that repositories who extend MemoryRepository can lock the same mutex as other methods.
	*sync.Mutex

	// Data is the repository's collection. It is exposed in case you're extending the repository.
	// PREVENT accessing Data directly, go through the repository methods.
	// If you access Data, USE the Mutex to lock first.
	Data []E

	repoConfig
}

func (repo *MemoryRepository[E, ID]) getID(entity E) ID { //nolint:ireturn // fp for generics
	return idOf[ID](entity, repo.idFieldName)
}

// indexOf returns the position of the first entity with the given id, or -1.
// The caller has to hold the lock.
func (repo *MemoryRepository[E, ID]) indexOf(id ID) int {
	return slices.IndexFunc(repo.Data, func(e E) bool {
		return repo.getID(e) == id
	})
}

// nextID is the id of the last entity + 1, or 1 if the repository is empty.
// The caller has to hold the lock.
func (repo *MemoryRepository[E, ID]) nextID() ID { //nolint:ireturn // fp for generics
	if len(repo.Data) == 0 {
		return 1
	}

	return repo.getID(repo.Data[len(repo.Data)-1]) + 1
}

// NextID returns the id Create would assign right now.
// The id is derived from the last entity and not reserved: it can be handed out
// again, e.g. after the last entity got deleted.
func (repo *MemoryRepository[E, ID]) NextID(_ context.Context) ID { //nolint:ireturn // fp for generics
	repo.Lock()
	defer repo.Unlock()

	return repo.nextID()
}

// Create builds a new entity with the next id and appends it.
// Computing the id and appending happen under the same lock,
// so concurrent calls never build entities with the same id.
func (repo *MemoryRepository[E, ID]) Create(_ context.Context, build func(id ID) E) E { //nolint:ireturn,lll // valid use of generics
	repo.Lock()
	defer repo.Unlock()

	entity := build(repo.nextID())
	repo.Data = append(repo.Data, entity)

	return entity
}

// CreateUnless is Create, but only if no entity matches conflict.
// The check and the append happen under the same lock.
// It returns false and builds nothing, if there is a conflict.
func (repo *MemoryRepository[E, ID]) CreateUnless(_ context.Context, conflict func(E) bool, build func(id ID) E) (E, bool) { //nolint:ireturn,lll // valid use of generics
	repo.Lock()
	defer repo.Unlock()

	if slices.ContainsFunc(repo.Data, conflict) {
		return *new(E), false
	}

	entity := build(repo.nextID())
	repo.Data = append(repo.Data, entity)

	return entity, true
}

// Add appends entity as is, keeping the id it already has.
// No check for duplicated ids is done.
func (repo *MemoryRepository[E, ID]) Add(_ context.Context, entity E) {
	_ = repo.getID(entity)

	repo.Lock()
	defer repo.Unlock()

	repo.Data = append(repo.Data, entity)
}

// FindAll returns a copy of all entities in insertion order.
func (repo *MemoryRepository[E, ID]) FindAll(_ context.Context) []E {
	repo.Lock()
	defer repo.Unlock()

	return slices.Clone(repo.Data)
}

// FindByID returns the first entity with the given id.
func (repo *MemoryRepository[E, ID]) FindByID(_ context.Context, id ID) (E, bool) { //nolint:ireturn,lll // valid use of generics
	repo.Lock()
	defer repo.Unlock()

	if pos := repo.indexOf(id); pos != -1 {
		return repo.Data[pos], true
	}

	return *new(E), false
}

// FindFirst returns the first entity matching.
func (repo *MemoryRepository[E, ID]) FindFirst(_ context.Context, match func(E) bool) (E, bool) { //nolint:ireturn,lll // valid use of generics
	repo.Lock()
	defer repo.Unlock()

	if pos := slices.IndexFunc(repo.Data, match); pos != -1 {
		return repo.Data[pos], true
	}

	return *new(E), false
}

// Exists reports whether any entity matches.
func (repo *MemoryRepository[E, ID]) Exists(ctx context.Context, match func(E) bool) bool {
	_, found := repo.FindFirst(ctx, match)

	return found
}

// UpdateByID calls mutate on the first entity with the given id and stores the result in place.
// It returns the updated entity, or false if no entity has the id, in which case nothing is changed.
func (repo *MemoryRepository[E, ID]) UpdateByID(_ context.Context, id ID, mutate func(e *E)) (E, bool) { //nolint:ireturn,lll // valid use of generics
	repo.Lock()
	defer repo.Unlock()

	pos := repo.indexOf(id)
	if pos == -1 {
		return *new(E), false
	}

	mutate(&repo.Data[pos])

	return repo.Data[pos], true
}

// DeleteByID removes the first entity with the given id, keeping the order of the others.
// It reports whether an entity was removed.
func (repo *MemoryRepository[E, ID]) DeleteByID(_ context.Context, id ID) bool {
	repo.Lock()
	defer repo.Unlock()

	pos := repo.indexOf(id)
	if pos == -1 {
		return false
	}

	repo.Data = slices.Delete(repo.Data, pos, pos+1)

	return true
}

func (repo *MemoryRepository[E, ID]) Count(_ context.Context) int {
	repo.Lock()
	defer repo.Unlock()

	return len(repo.Data)
}

// Clear removes all entities.
func (repo *MemoryRepository[E, ID]) Clear(_ context.Context) {
	repo.Lock()
	defer repo.Unlock()

	repo.Data = repo.Data[:0]
}
