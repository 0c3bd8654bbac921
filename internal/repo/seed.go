package repo

import (
	"context"
	"fmt"

	"github.com/rogerio-castellano/bakery-api/internal/models"
)

type seedBakery struct {
	name  string
	goods []models.BakedGood
}

var sampleData = []seedBakery{
	{
		name: "Delightful donuts",
		goods: []models.BakedGood{
			{Name: "Chocolate dipped donut", Price: 2.75},
			{Name: "Apple-spice filled donut", Price: 3.50},
		},
	},
	{
		name: "Incredible crullers",
		goods: []models.BakedGood{
			{Name: "Glazed honey cruller", Price: 3.25},
			{Name: "Chocolate cruller", Price: 4.00},
		},
	},
}

// Seed inserts a small sample data set through the given repositories.
func Seed(ctx context.Context, bakeries BakeryRepository, goods BakedGoodRepository) error {
	for _, sb := range sampleData {
		b, err := bakeries.Create(ctx, models.Bakery{Name: sb.name})
		if err != nil {
			return fmt.Errorf("seed bakery %q: %w", sb.name, err)
		}
		for _, g := range sb.goods {
			g.BakeryID = b.ID
			if _, err := goods.Create(ctx, g); err != nil {
				return fmt.Errorf("seed baked good %q: %w", g.Name, err)
			}
		}
	}
	return nil
}
