package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	models "github.com/wingscafe/inventory/internal/models"
	repo "github.com/wingscafe/inventory/internal/repo"
)

// SetQuantityHandler godoc
// @Summary Set the absolute quantity of a product
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param quantity body QuantitySetRequest true "New quantity"
// @Success 200 {object} MessageResponse
// @Failure 400 {string} string "Missing quantity"
// @Failure 404 {string} string "Not found"
// @Router /products/{id} [patch]
func SetQuantityHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	var req QuantitySetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if req.Quantity == nil {
		http.Error(w, "quantity is required", http.StatusBadRequest)
		return
	}
	if *req.Quantity < 0 {
		http.Error(w, "quantity cannot be negative", http.StatusBadRequest)
		return
	}

	if _, err := productRepo.SetQuantity(id, *req.Quantity); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		log.Printf("could not set quantity of product %d: %v", id, err)
		http.Error(w, "could not update product quantity", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "product quantity updated successfully"})
}

// AdjustQuantityHandler godoc
// @Summary Adjust the quantity of a product by a signed delta
// @Description Refuses deductions that would drive the quantity below zero
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param adjustment body QuantityAdjustmentRequest true "Quantity change"
// @Success 200 {object} models.Product
// @Failure 400 {string} string "Missing delta"
// @Failure 404 {string} string "Not found"
// @Failure 409 {string} string "Insufficient stock"
// @Router /products/{id}/adjust [post]
func AdjustQuantityHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	var req QuantityAdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if req.Delta == nil {
		http.Error(w, "delta is required", http.StatusBadRequest)
		return
	}

	product, err := productRepo.AdjustQuantity(id, *req.Delta)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrInvalidQuantityChange):
			http.Error(w, "quantity cannot become negative", http.StatusConflict)
		case errors.Is(err, repo.ErrProductNotFound):
			http.Error(w, "product not found", http.StatusNotFound)
		default:
			log.Printf("could not adjust quantity of product %d: %v", id, err)
			http.Error(w, "could not update quantity", http.StatusInternalServerError)
		}
		return
	}
	if err := movementRepo.Log(id, *req.Delta); err != nil {
		log.Printf("could not log movement for product %d: %v", id, err)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(product)
}

// GetMovementsHandler godoc
// @Summary Get stock movement logs of a product
// @Tags movements
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {array} models.Movement
// @Failure 404 {string} string "Product not found"
// @Router /products/{id}/movements [get]
func GetMovementsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	if _, err := productRepo.GetByID(id); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}

	movements, err := movementRepo.GetByProductID(id)
	if err != nil {
		log.Printf("could not retrieve movements for product %d: %v", id, err)
		http.Error(w, "could not retrieve movements", http.StatusInternalServerError)
		return
	}
	if movements == nil {
		movements = []models.Movement{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(movements)
}
