package repo

import (
	"context"

	"github.com/rogerio-castellano/bakery-api/internal/models"
)

// InMemoryBakeryRepository is an in-memory implementation of BakeryRepository.
type InMemoryBakeryRepository struct {
	store *InMemoryStore
}

// NewInMemoryBakeryRepository creates a bakery repository over store.
func NewInMemoryBakeryRepository(store *InMemoryStore) *InMemoryBakeryRepository {
	return &InMemoryBakeryRepository{store: store}
}

// Create adds a new bakery to the repository.
func (r *InMemoryBakeryRepository) Create(_ context.Context, b models.Bakery) (models.Bakery, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	b.ID = s.nextBakeryID
	b.CreatedAt = now
	b.UpdatedAt = now
	b.BakedGoods = nil
	s.nextBakeryID++
	s.bakeries = append(s.bakeries, b)
	return s.withBakedGoods(b), nil
}

// GetAll retrieves all bakeries in insertion order.
func (r *InMemoryBakeryRepository) GetAll(_ context.Context) ([]models.Bakery, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	bakeries := make([]models.Bakery, len(s.bakeries))
	for i, b := range s.bakeries {
		bakeries[i] = s.withBakedGoods(b)
	}
	return bakeries, nil
}

// GetByID retrieves a bakery by its ID.
func (r *InMemoryBakeryRepository) GetByID(_ context.Context, id int) (models.Bakery, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.bakeryIndex(id)
	if i < 0 {
		return models.Bakery{}, ErrBakeryNotFound
	}
	return s.withBakedGoods(s.bakeries[i]), nil
}

func (r *InMemoryBakeryRepository) Exists(_ context.Context, id int) (bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.bakeryIndex(id) >= 0, nil
}

// UpdateName overwrites the name and advances UpdatedAt.
func (r *InMemoryBakeryRepository) UpdateName(_ context.Context, id int, name string) (models.Bakery, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.bakeryIndex(id)
	if i < 0 {
		return models.Bakery{}, ErrBakeryNotFound
	}
	s.bakeries[i].Name = name
	s.bakeries[i].UpdatedAt = s.touch(s.bakeries[i].UpdatedAt)
	return s.withBakedGoods(s.bakeries[i]), nil
}
