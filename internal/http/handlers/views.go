package handlers

import "github.com/rogerio-castellano/bakery-api/internal/models"

func toBakerySummary(b *models.Bakery) *BakerySummary {
	if b == nil {
		return nil
	}
	return &BakerySummary{
		Id:        b.ID,
		Name:      b.Name,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func toBakedGoodSummaries(goods []models.BakedGood) []BakedGoodSummary {
	out := make([]BakedGoodSummary, len(goods))
	for i, g := range goods {
		out[i] = BakedGoodSummary{
			Id:        g.ID,
			Name:      g.Name,
			Price:     g.Price,
			BakeryId:  g.BakeryID,
			CreatedAt: g.CreatedAt,
			UpdatedAt: g.UpdatedAt,
		}
	}
	return out
}

func toBakedGoodResponse(g models.BakedGood) BakedGoodResponse {
	return BakedGoodResponse{
		Id:        g.ID,
		Name:      g.Name,
		Price:     g.Price,
		BakeryId:  g.BakeryID,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
		Bakery:    toBakerySummary(g.Bakery),
	}
}

func toBakedGoodResponses(goods []models.BakedGood) []BakedGoodResponse {
	out := make([]BakedGoodResponse, len(goods))
	for i, g := range goods {
		out[i] = toBakedGoodResponse(g)
	}
	return out
}

func toBakeryResponse(b models.Bakery) BakeryResponse {
	return BakeryResponse{
		Id:         b.ID,
		Name:       b.Name,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
		BakedGoods: toBakedGoodSummaries(b.BakedGoods),
	}
}

func toBakeryResponses(bakeries []models.Bakery) []BakeryResponse {
	out := make([]BakeryResponse, len(bakeries))
	for i, b := range bakeries {
		out[i] = toBakeryResponse(b)
	}
	return out
}

func toBakeryDetailResponse(b models.Bakery) BakeryDetailResponse {
	return BakeryDetailResponse{
		Id:         b.ID,
		Name:       b.Name,
		BakedGoods: toBakedGoodSummaries(b.BakedGoods),
	}
}
