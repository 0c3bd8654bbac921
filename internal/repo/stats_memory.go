package repo

import (
	"context"
	"math"
)

type InMemoryStatsRepository struct {
	store *InMemoryStore
}

func NewInMemoryStatsRepository(store *InMemoryStore) *InMemoryStatsRepository {
	return &InMemoryStatsRepository{store: store}
}

// GetStats implements StatsRepository.
func (r *InMemoryStatsRepository) GetStats(_ context.Context) (Stats, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{
		TotalBakeries:   int64(len(s.bakeries)),
		TotalBakedGoods: int64(len(s.bakedGoods)),
	}
	if len(s.bakedGoods) == 0 {
		return st, nil
	}

	var sum float64
	top := s.bakedGoods[0]
	for _, g := range s.bakedGoods {
		sum += g.Price
		if byPriceDesc(g, top) < 0 {
			top = g
		}
	}
	st.AveragePrice = math.Round(sum/float64(len(s.bakedGoods))*100) / 100
	st.MostExpensive = &MostExpensive{Name: top.Name, Price: top.Price}
	return st, nil
}
