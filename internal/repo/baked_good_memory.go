package repo

import (
	"cmp"
	"context"
	"slices"

	"github.com/rogerio-castellano/bakery-api/internal/models"
)

// InMemoryBakedGoodRepository is an in-memory implementation of BakedGoodRepository.
type InMemoryBakedGoodRepository struct {
	store *InMemoryStore
}

// NewInMemoryBakedGoodRepository creates a baked good repository over store.
func NewInMemoryBakedGoodRepository(store *InMemoryStore) *InMemoryBakedGoodRepository {
	return &InMemoryBakedGoodRepository{store: store}
}

// Create adds a baked good, rejecting a bakery_id that references no bakery.
func (r *InMemoryBakedGoodRepository) Create(_ context.Context, g models.BakedGood) (models.BakedGood, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.bakeryIndex(g.BakeryID) < 0 {
		return models.BakedGood{}, ErrBakeryNotFound
	}

	now := s.now().UTC()
	g.ID = s.nextBakedGoodID
	g.CreatedAt = now
	g.UpdatedAt = now
	g.Bakery = nil
	s.nextBakedGoodID++
	s.bakedGoods = append(s.bakedGoods, g)
	return s.withBakery(g), nil
}

// GetByID retrieves a baked good by its ID.
func (r *InMemoryBakedGoodRepository) GetByID(_ context.Context, id int) (models.BakedGood, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.bakedGoodIndex(id)
	if i < 0 {
		return models.BakedGood{}, ErrBakedGoodNotFound
	}
	return s.withBakery(s.bakedGoods[i]), nil
}

// ListByPriceDesc returns all baked goods by price descending, ties by id.
func (r *InMemoryBakedGoodRepository) ListByPriceDesc(_ context.Context) ([]models.BakedGood, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	goods := make([]models.BakedGood, len(s.bakedGoods))
	for i, g := range s.bakedGoods {
		goods[i] = s.withBakery(g)
	}
	slices.SortFunc(goods, byPriceDesc)
	return goods, nil
}

func (r *InMemoryBakedGoodRepository) MostExpensive(ctx context.Context) (models.BakedGood, error) {
	goods, err := r.ListByPriceDesc(ctx)
	if err != nil {
		return models.BakedGood{}, err
	}
	if len(goods) == 0 {
		return models.BakedGood{}, ErrNoBakedGoods
	}
	return goods[0], nil
}

// Delete removes a baked good from the repository by its ID.
func (r *InMemoryBakedGoodRepository) Delete(_ context.Context, id int) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.bakedGoodIndex(id)
	if i < 0 {
		return ErrBakedGoodNotFound
	}
	s.bakedGoods = slices.Delete(s.bakedGoods, i, i+1)
	return nil
}

func byPriceDesc(a, b models.BakedGood) int {
	if c := cmp.Compare(b.Price, a.Price); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}
