package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/rogerio-castellano/bakery-api/internal/cache"
	"github.com/rogerio-castellano/bakery-api/internal/models"
	"github.com/rogerio-castellano/bakery-api/internal/repo"
)

// GetBakedGoodsByPriceHandler godoc
// @Summary List baked goods by price
// @Description Every baked good, most expensive first; equal prices are ordered by id
// @Tags baked_goods
// @Produce json
// @Success 200 {array} BakedGoodResponse
// @Failure 500 {string} string "Internal error"
// @Router /baked_goods/by_price [get]
func (h *Handler) GetBakedGoodsByPriceHandler(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, cache.KeyBakedGoodsPrice, "could not fetch baked goods", func(ctx context.Context) (any, error) {
		goods, err := h.bakedGoodRepo.ListByPriceDesc(ctx)
		if err != nil {
			return nil, err
		}
		return toBakedGoodResponses(goods), nil
	})
}

// GetMostExpensiveBakedGoodHandler godoc
// @Summary Get the most expensive baked good
// @Tags baked_goods
// @Produce json
// @Success 200 {object} BakedGoodResponse
// @Failure 404 {string} string "No baked goods exist"
// @Failure 500 {string} string "Internal error"
// @Router /baked_goods/most_expensive [get]
func (h *Handler) GetMostExpensiveBakedGoodHandler(w http.ResponseWriter, r *http.Request) {
	good, err := h.bakedGoodRepo.MostExpensive(r.Context())
	if err != nil {
		if errors.Is(err, repo.ErrNoBakedGoods) {
			http.Error(w, "no baked goods exist", http.StatusNotFound)
			return
		}
		h.serverError(w, r, "could not fetch baked goods", err)
		return
	}

	writeJSON(w, http.StatusOK, toBakedGoodResponse(good))
}

// CreateBakedGoodHandler godoc
// @Summary Create a baked good
// @Description Adds a baked good to an existing bakery
// @Tags baked_goods
// @Accept x-www-form-urlencoded
// @Accept json
// @Produce json
// @Param name formData string true "Name"
// @Param price formData number true "Price"
// @Param bakery_id formData int true "Owning bakery ID"
// @Success 201 {object} BakedGoodResponse
// @Failure 400 {array} ValidationError
// @Failure 401 {string} string "Unauthorized"
// @Failure 500 {string} string "Internal error"
// @Router /baked_goods [post]
// @Security BearerAuth
func (h *Handler) CreateBakedGoodHandler(w http.ResponseWriter, r *http.Request) {
	form, err := readForm(w, r)
	if err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	in, validationErrors := parseBakedGood(form)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	created, err := h.createBakedGood(r.Context(), in)
	if err != nil {
		if errors.Is(err, repo.ErrBakeryNotFound) {
			writeJSON(w, http.StatusBadRequest, []ValidationError{errUnknownBakery})
			return
		}
		h.serverError(w, r, "could not create baked good", err)
		return
	}

	h.invalidate(r)
	writeJSON(w, http.StatusCreated, toBakedGoodResponse(created))
}

// createBakedGood checks the owning bakery exists, then inserts. The store's
// foreign key still guards against a bakery vanishing in between.
func (h *Handler) createBakedGood(ctx context.Context, in bakedGoodInput) (models.BakedGood, error) {
	exists, err := h.bakeryRepo.Exists(ctx, in.BakeryID)
	if err != nil {
		return models.BakedGood{}, err
	}
	if !exists {
		return models.BakedGood{}, repo.ErrBakeryNotFound
	}

	created, err := h.bakedGoodRepo.Create(ctx, models.BakedGood{
		Name:     in.Name,
		Price:    in.Price,
		BakeryID: in.BakeryID,
	})
	if err != nil {
		return models.BakedGood{}, err
	}
	h.metrics.BakedGoodCreated()
	return created, nil
}

// DeleteBakedGoodHandler godoc
// @Summary Delete a baked good
// @Tags baked_goods
// @Produce json
// @Param id path int true "Baked good ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 401 {string} string "Unauthorized"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /baked_goods/{id} [delete]
// @Security BearerAuth
func (h *Handler) DeleteBakedGoodHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid baked good ID", http.StatusBadRequest)
		return
	}

	if err := h.bakedGoodRepo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repo.ErrBakedGoodNotFound) {
			http.Error(w, "baked good not found", http.StatusNotFound)
			return
		}
		h.serverError(w, r, "could not delete baked good", err)
		return
	}

	h.metrics.BakedGoodDeleted()
	h.invalidate(r)
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Baked good deleted successfully"})
}
