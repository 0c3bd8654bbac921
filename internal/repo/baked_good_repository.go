package repo

import (
	"context"
	"errors"

	"github.com/rogerio-castellano/bakery-api/internal/models"
)

// BakedGoodRepository defines the interface for baked good data operations.
// Every returned BakedGood has its Bakery populated.
type BakedGoodRepository interface {
	Create(ctx context.Context, good models.BakedGood) (models.BakedGood, error)
	GetByID(ctx context.Context, id int) (models.BakedGood, error)
	ListByPriceDesc(ctx context.Context) ([]models.BakedGood, error)
	MostExpensive(ctx context.Context) (models.BakedGood, error)
	Delete(ctx context.Context, id int) error
}

var (
	// ErrBakedGoodNotFound is returned when no baked good has the requested ID.
	ErrBakedGoodNotFound = errors.New("baked good not found")
	// ErrNoBakedGoods is returned by MostExpensive on an empty table.
	ErrNoBakedGoods = errors.New("no baked goods exist")
)
