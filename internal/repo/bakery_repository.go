package repo

import (
	"context"
	"errors"

	"github.com/rogerio-castellano/bakery-api/internal/models"
)

// BakeryRepository defines the interface for bakery data operations.
type BakeryRepository interface {
	Create(ctx context.Context, bakery models.Bakery) (models.Bakery, error)
	GetAll(ctx context.Context) ([]models.Bakery, error)
	GetByID(ctx context.Context, id int) (models.Bakery, error)
	Exists(ctx context.Context, id int) (bool, error)
	UpdateName(ctx context.Context, id int, name string) (models.Bakery, error)
}

// ErrBakeryNotFound is returned when no bakery has the requested ID.
var ErrBakeryNotFound = errors.New("bakery not found")
