package handlers

import "time"

// BakerySummary is the bakery nested inside a baked good. It never carries
// the bakery's own baked goods.
type BakerySummary struct {
	Id        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BakedGoodSummary is a baked good nested inside a bakery, without the back reference.
type BakedGoodSummary struct {
	Id        int       `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	BakeryId  int       `json:"bakery_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BakedGoodResponse struct {
	Id        int            `json:"id"`
	Name      string         `json:"name"`
	Price     float64        `json:"price"`
	BakeryId  int            `json:"bakery_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	Bakery    *BakerySummary `json:"bakery,omitempty"`
}

// BakeryResponse is the full bakery view used by the list and update endpoints.
type BakeryResponse struct {
	Id         int                `json:"id"`
	Name       string             `json:"name"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
	BakedGoods []BakedGoodSummary `json:"baked_goods"`
}

// BakeryDetailResponse is the single-bakery view; it omits the timestamps.
type BakeryDetailResponse struct {
	Id         int                `json:"id"`
	Name       string             `json:"name"`
	BakedGoods []BakedGoodSummary `json:"baked_goods"`
}

type BakedGoodRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	BakeryId int     `json:"bakery_id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type RowError struct {
	Line   int               `json:"line"`
	Errors []ValidationError `json:"errors"`
}

type ImportBakedGoodsResult struct {
	ImportedCount int        `json:"imported"`
	Errors        []RowError `json:"errors"`
}
