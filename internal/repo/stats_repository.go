package repo

import "context"

type MostExpensive struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type Stats struct {
	TotalBakeries   int64          `json:"total_bakeries"`
	TotalBakedGoods int64          `json:"total_baked_goods"`
	AveragePrice    float64        `json:"average_price"`
	MostExpensive   *MostExpensive `json:"most_expensive,omitempty"`
}

type StatsRepository interface {
	GetStats(ctx context.Context) (Stats, error)
}
