package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/rogerio-castellano/bakery-api/internal/models"
	"gorm.io/gorm"
)

type GormBakedGoodRepository struct {
	db *gorm.DB
}

func NewGormBakedGoodRepository(db *gorm.DB) *GormBakedGoodRepository {
	return &GormBakedGoodRepository{db: db}
}

func (r *GormBakedGoodRepository) Create(ctx context.Context, g models.BakedGood) (models.BakedGood, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	g.Bakery = nil
	if err := r.db.WithContext(ctx).Create(&g).Error; err != nil {
		if isForeignKeyViolation(err) {
			return models.BakedGood{}, ErrBakeryNotFound
		}
		return models.BakedGood{}, fmt.Errorf("create baked good: %w", err)
	}
	return r.GetByID(ctx, g.ID)
}

func (r *GormBakedGoodRepository) GetByID(ctx context.Context, id int) (models.BakedGood, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var g models.BakedGood
	err := r.db.WithContext(ctx).Preload("Bakery").First(&g, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.BakedGood{}, ErrBakedGoodNotFound
	}
	if err != nil {
		return models.BakedGood{}, fmt.Errorf("get baked good %d: %w", id, err)
	}
	return g, nil
}

// ListByPriceDesc orders by price descending, ties by id.
func (r *GormBakedGoodRepository) ListByPriceDesc(ctx context.Context) ([]models.BakedGood, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var goods []models.BakedGood
	err := r.db.WithContext(ctx).
		Preload("Bakery").
		Order("price DESC").
		Order("id").
		Find(&goods).Error
	if err != nil {
		return nil, fmt.Errorf("list baked goods by price: %w", err)
	}
	return goods, nil
}

func (r *GormBakedGoodRepository) MostExpensive(ctx context.Context) (models.BakedGood, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var g models.BakedGood
	err := r.db.WithContext(ctx).
		Preload("Bakery").
		Order("price DESC").
		Order("id").
		Take(&g).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.BakedGood{}, ErrNoBakedGoods
	}
	if err != nil {
		return models.BakedGood{}, fmt.Errorf("most expensive baked good: %w", err)
	}
	return g, nil
}

func (r *GormBakedGoodRepository) Delete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res := r.db.WithContext(ctx).Delete(&models.BakedGood{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete baked good %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrBakedGoodNotFound
	}
	return nil
}
