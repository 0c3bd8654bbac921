package repo

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/rogerio-castellano/bakery-api/internal/models"
	"gorm.io/gorm"
)

type GormStatsRepository struct {
	db *gorm.DB
}

func NewGormStatsRepository(db *gorm.DB) *GormStatsRepository {
	return &GormStatsRepository{db: db}
}

func (r *GormStatsRepository) GetStats(ctx context.Context) (Stats, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	db := r.db.WithContext(ctx)
	var s Stats

	if err := db.Model(&models.Bakery{}).Count(&s.TotalBakeries).Error; err != nil {
		return Stats{}, fmt.Errorf("count bakeries: %w", err)
	}
	if err := db.Model(&models.BakedGood{}).Count(&s.TotalBakedGoods).Error; err != nil {
		return Stats{}, fmt.Errorf("count baked goods: %w", err)
	}
	if err := db.Model(&models.BakedGood{}).Select("COALESCE(AVG(price), 0)").Row().Scan(&s.AveragePrice); err != nil {
		return Stats{}, fmt.Errorf("average price: %w", err)
	}
	s.AveragePrice = math.Round(s.AveragePrice*100) / 100

	var top models.BakedGood
	err := db.Order("price DESC").Order("id").Take(&top).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
	case err != nil:
		return Stats{}, fmt.Errorf("most expensive baked good: %w", err)
	default:
		s.MostExpensive = &MostExpensive{Name: top.Name, Price: top.Price}
	}

	return s, nil
}
