package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/rogerio-castellano/bakery-api/internal/models"
	"gorm.io/gorm"
)

type GormBakeryRepository struct {
	db *gorm.DB
}

func NewGormBakeryRepository(db *gorm.DB) *GormBakeryRepository {
	return &GormBakeryRepository{db: db}
}

func (r *GormBakeryRepository) Create(ctx context.Context, b models.Bakery) (models.Bakery, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	b.BakedGoods = nil
	if err := r.db.WithContext(ctx).Create(&b).Error; err != nil {
		return models.Bakery{}, fmt.Errorf("create bakery: %w", err)
	}
	return b, nil
}

// GetAll returns every bakery ordered by id, each with its baked goods.
func (r *GormBakeryRepository) GetAll(ctx context.Context) ([]models.Bakery, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var bakeries []models.Bakery
	err := r.db.WithContext(ctx).
		Preload("BakedGoods", orderByID).
		Order("id").
		Find(&bakeries).Error
	if err != nil {
		return nil, fmt.Errorf("list bakeries: %w", err)
	}
	return bakeries, nil
}

func (r *GormBakeryRepository) GetByID(ctx context.Context, id int) (models.Bakery, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var b models.Bakery
	err := r.db.WithContext(ctx).Preload("BakedGoods", orderByID).First(&b, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Bakery{}, ErrBakeryNotFound
	}
	if err != nil {
		return models.Bakery{}, fmt.Errorf("get bakery %d: %w", id, err)
	}
	return b, nil
}

func (r *GormBakeryRepository) Exists(ctx context.Context, id int) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var count int64
	err := r.db.WithContext(ctx).Model(&models.Bakery{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check bakery %d: %w", id, err)
	}
	return count > 0, nil
}

// UpdateName overwrites the bakery name; GORM refreshes updated_at.
func (r *GormBakeryRepository) UpdateName(ctx context.Context, id int, name string) (models.Bakery, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res := r.db.WithContext(ctx).Model(&models.Bakery{ID: id}).Update("name", name)
	if res.Error != nil {
		return models.Bakery{}, fmt.Errorf("update bakery %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return models.Bakery{}, ErrBakeryNotFound
	}
	return r.GetByID(ctx, id)
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}
