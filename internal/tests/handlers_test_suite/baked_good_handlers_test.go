package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"testing"

	handler "github.com/rogerio-castellano/bakery-api/internal/http/handlers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBakedGoodsByPriceHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	t.Run("Empty store", func(t *testing.T) {
		w := get(r, "/baked_goods/by_price")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("Most expensive first with nested bakery", func(t *testing.T) {
		b := createBakery("Delightful donuts")
		addBakedGood(b.ID, "Croissant", 3.50)
		addBakedGood(b.ID, "Cake", 5.00)
		addBakedGood(b.ID, "Muffin", 3.50)

		w := get(r, "/baked_goods/by_price")
		require.Equal(t, http.StatusOK, w.Code)

		var resp []handler.BakedGoodResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		require.Len(t, resp, 3)

		names := []string{resp[0].Name, resp[1].Name, resp[2].Name}
		assert.Equal(t, []string{"Cake", "Croissant", "Muffin"}, names)
		assert.Equal(t, 5.0, resp[0].Price)

		require.NotNil(t, resp[0].Bakery)
		assert.Equal(t, b.ID, resp[0].Bakery.Id)
		assert.Equal(t, "Delightful donuts", resp[0].Bakery.Name)
	})

	t.Run("Nested bakery carries no baked goods", func(t *testing.T) {
		w := get(r, "/baked_goods/by_price")
		require.Equal(t, http.StatusOK, w.Code)

		var raw []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
		bakery := raw[0]["bakery"].(map[string]any)
		assert.NotContains(t, bakery, "baked_goods")
	})
}

func TestGetMostExpensiveBakedGoodHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	t.Run("No baked goods", func(t *testing.T) {
		w := get(r, "/baked_goods/most_expensive")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Highest price wins", func(t *testing.T) {
		b := createBakery("Incredible crullers")
		addBakedGood(b.ID, "Glazed honey cruller", 3.25)
		top := addBakedGood(b.ID, "Chocolate cruller", 4.00)

		w := get(r, "/baked_goods/most_expensive")
		require.Equal(t, http.StatusOK, w.Code)

		var resp handler.BakedGoodResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, top.ID, resp.Id)
		assert.Equal(t, "Chocolate cruller", resp.Name)
		assert.Equal(t, 4.0, resp.Price)
		require.NotNil(t, resp.Bakery)
		assert.Equal(t, "Incredible crullers", resp.Bakery.Name)
	})
}

func TestCreateBakedGoodHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	b := createBakery("Delightful donuts")
	bakeryID := strconv.Itoa(b.ID)

	t.Run("Form body", func(t *testing.T) {
		w := postForm(r, url.Values{"name": {"Croissant"}, "price": {"3.50"}, "bakery_id": {bakeryID}})
		require.Equal(t, http.StatusCreated, w.Code)

		var resp handler.BakedGoodResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Positive(t, resp.Id)
		assert.Equal(t, "Croissant", resp.Name)
		assert.Equal(t, 3.5, resp.Price)
		assert.Equal(t, b.ID, resp.BakeryId)
		assert.False(t, resp.CreatedAt.IsZero())
		require.NotNil(t, resp.Bakery)
		assert.Equal(t, "Delightful donuts", resp.Bakery.Name)
	})

	t.Run("JSON body", func(t *testing.T) {
		w := postJSON(r, handler.BakedGoodRequest{Name: "Cake", Price: 5, BakeryId: b.ID})
		require.Equal(t, http.StatusCreated, w.Code)

		var resp handler.BakedGoodResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "Cake", resp.Name)
	})

	t.Run("New item is listed by price", func(t *testing.T) {
		w := get(r, "/baked_goods/by_price")
		require.Equal(t, http.StatusOK, w.Code)

		var resp []handler.BakedGoodResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		require.Len(t, resp, 2)
		assert.Equal(t, "Cake", resp[0].Name)
		assert.Equal(t, "Croissant", resp[1].Name)
	})

	tests := []struct {
		name      string
		form      url.Values
		wantField string
	}{
		{"Missing name", url.Values{"price": {"1"}, "bakery_id": {bakeryID}}, "name"},
		{"Missing price", url.Values{"name": {"Bun"}, "bakery_id": {bakeryID}}, "price"},
		{"Negative price", url.Values{"name": {"Bun"}, "price": {"-1"}, "bakery_id": {bakeryID}}, "price"},
		{"Non numeric price", url.Values{"name": {"Bun"}, "price": {"free"}, "bakery_id": {bakeryID}}, "price"},
		{"Missing bakery", url.Values{"name": {"Bun"}, "price": {"1"}}, "bakery_id"},
		{"Unknown bakery", url.Values{"name": {"Bun"}, "price": {"1"}, "bakery_id": {"9999"}}, "bakery_id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postForm(r, tt.form)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var errs []handler.ValidationError
			require.NoError(t, json.NewDecoder(w.Body).Decode(&errs))
			require.NotEmpty(t, errs)
			assert.Equal(t, tt.wantField, errs[0].Field)
		})
	}

	t.Run("Unknown bakery message", func(t *testing.T) {
		w := postForm(r, url.Values{"name": {"Bun"}, "price": {"1"}, "bakery_id": {"9999"}})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `[{"field":"bakery_id","description":"Bakery does not exist"}]`, w.Body.String())
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		w := serve(r, jsonRequest(http.MethodPost, "/baked_goods", `{"name":`))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Rejected input stores nothing", func(t *testing.T) {
		goods, err := bakedGoodRepo.ListByPriceDesc(t.Context())
		require.NoError(t, err)
		assert.Len(t, goods, 2)
	})
}

func TestDeleteBakedGoodHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	b := createBakery("Delightful donuts")
	g := addBakedGood(b.ID, "Croissant", 3.5)
	id := strconv.Itoa(g.ID)

	t.Run("Existing item", func(t *testing.T) {
		w := deleteBakedGood(r, id)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Baked good deleted successfully"}`, w.Body.String())
	})

	t.Run("Second delete is not found", func(t *testing.T) {
		w := deleteBakedGood(r, id)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Bakery no longer lists it", func(t *testing.T) {
		w := get(r, "/bakeries/"+strconv.Itoa(b.ID))
		require.Equal(t, http.StatusOK, w.Code)

		var resp handler.BakeryDetailResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Empty(t, resp.BakedGoods)
	})

	t.Run("Invalid ID", func(t *testing.T) {
		w := deleteBakedGood(r, "abc")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
