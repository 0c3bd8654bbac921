package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/rogerio-castellano/bakery-api/internal/cache"
	"github.com/rogerio-castellano/bakery-api/internal/repo"
)

// GetBakeriesHandler godoc
// @Summary List all bakeries
// @Description Every bakery with its timestamps and baked goods, ordered by id
// @Tags bakeries
// @Produce json
// @Success 200 {array} BakeryResponse
// @Failure 500 {string} string "Internal error"
// @Router /bakeries [get]
func (h *Handler) GetBakeriesHandler(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, cache.KeyBakeries, "could not fetch bakeries", func(ctx context.Context) (any, error) {
		bakeries, err := h.bakeryRepo.GetAll(ctx)
		if err != nil {
			return nil, err
		}
		return toBakeryResponses(bakeries), nil
	})
}

// GetBakeryByIDHandler godoc
// @Summary Get bakery by ID
// @Description The bakery and its baked goods, without created_at and updated_at
// @Tags bakeries
// @Produce json
// @Param id path int true "Bakery ID"
// @Success 200 {object} BakeryDetailResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /bakeries/{id} [get]
func (h *Handler) GetBakeryByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid bakery ID", http.StatusBadRequest)
		return
	}

	bakery, err := h.bakeryRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrBakeryNotFound) {
			http.Error(w, "bakery not found", http.StatusNotFound)
			return
		}
		h.serverError(w, r, "could not fetch bakery", err)
		return
	}

	writeJSON(w, http.StatusOK, toBakeryDetailResponse(bakery))
}

// UpdateBakeryHandler godoc
// @Summary Rename a bakery
// @Description A name replaces the stored one after trimming; an absent or empty name leaves the bakery unchanged and a whitespace-only name is rejected
// @Tags bakeries
// @Accept x-www-form-urlencoded
// @Accept json
// @Produce json
// @Param id path int true "Bakery ID"
// @Param name formData string false "New name"
// @Success 200 {object} BakeryResponse
// @Failure 400 {array} ValidationError
// @Failure 401 {string} string "Unauthorized"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /bakeries/{id} [patch]
// @Security BearerAuth
func (h *Handler) UpdateBakeryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid bakery ID", http.StatusBadRequest)
		return
	}

	form, err := readForm(w, r)
	if err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	bakery, err := h.bakeryRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrBakeryNotFound) {
			http.Error(w, "bakery not found", http.StatusNotFound)
			return
		}
		h.serverError(w, r, "could not fetch bakery", err)
		return
	}

	name, e := parseRename(form.Get("name"))
	if e != nil {
		writeJSON(w, http.StatusBadRequest, []ValidationError{*e})
		return
	}

	if name != "" {
		bakery, err = h.bakeryRepo.UpdateName(r.Context(), id, name)
		if err != nil {
			if errors.Is(err, repo.ErrBakeryNotFound) {
				http.Error(w, "bakery not found", http.StatusNotFound)
				return
			}
			h.serverError(w, r, "could not update bakery", err)
			return
		}
		h.metrics.BakeryUpdated()
		h.invalidate(r)
	}

	writeJSON(w, http.StatusOK, toBakeryResponse(bakery))
}
