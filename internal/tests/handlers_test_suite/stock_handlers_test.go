package handlers_test_suite

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/wingscafe/inventory/internal/models"
)

func TestAdjustQuantityLifecycle(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	created := createdProduct(r, "Coffee", 4.50, 10)

	w := adjustProduct(r, created.ID, -3)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var p models.Product
	if err := json.NewDecoder(w.Body).Decode(&p); err != nil {
		t.Fatalf("error decoding product: %v", err)
	}
	if p.Quantity != 7 {
		t.Fatalf("expected quantity 7 after deducting 3, got %d", p.Quantity)
	}

	// Deducting past zero must be refused and leave the stock untouched.
	w = adjustProduct(r, created.ID, -20)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", w.Code)
	}

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/products/%d", created.ID), nil)
	if err := json.NewDecoder(w.Body).Decode(&p); err != nil {
		t.Fatalf("error decoding product: %v", err)
	}
	if p.Quantity != 7 {
		t.Errorf("expected quantity to stay 7 after refused deduction, got %d", p.Quantity)
	}
}

func TestAdjustQuantityMissingDelta(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	created := createdProduct(r, "Tea", 2.00, 4)

	w := doJSON(r, http.MethodPost, fmt.Sprintf("/products/%d/adjust", created.ID), map[string]any{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestAdjustQuantityMissingProduct(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	w := adjustProduct(r, 9999, 5)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestSetQuantity(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	created := createdProduct(r, "Beans", 6.00, 2)

	w := doJSON(r, http.MethodPatch, fmt.Sprintf("/products/%d", created.ID), map[string]int{"quantity": 42})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/products/%d", created.ID), nil)
	var p models.Product
	if err := json.NewDecoder(w.Body).Decode(&p); err != nil {
		t.Fatalf("error decoding product: %v", err)
	}
	if p.Quantity != 42 {
		t.Errorf("expected quantity 42, got %d", p.Quantity)
	}
}

func TestSetQuantityValidation(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	created := createdProduct(r, "Cups", 0.50, 100)

	tests := []struct {
		name       string
		path       string
		payload    any
		wantStatus int
	}{
		{"missing quantity", fmt.Sprintf("/products/%d", created.ID), map[string]any{}, http.StatusBadRequest},
		{"negative quantity", fmt.Sprintf("/products/%d", created.ID), map[string]int{"quantity": -1}, http.StatusBadRequest},
		{"unknown product", "/products/9999", map[string]int{"quantity": 1}, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPatch, tt.path, tt.payload)
			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestMovementsAreLogged(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	created := createdProduct(r, "Filters", 3.00, 50)

	for _, delta := range []int{-5, 10, -2} {
		if w := adjustProduct(r, created.ID, delta); w.Code != http.StatusOK {
			t.Fatalf("adjust by %d: expected status 200, got %d", delta, w.Code)
		}
	}

	w := doJSON(r, http.MethodGet, fmt.Sprintf("/products/%d/movements", created.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var movements []models.Movement
	if err := json.NewDecoder(w.Body).Decode(&movements); err != nil {
		t.Fatalf("error decoding movements: %v", err)
	}
	if len(movements) != 3 {
		t.Fatalf("expected 3 movements, got %d", len(movements))
	}
	// Newest first.
	if movements[0].Delta != -2 || movements[2].Delta != -5 {
		t.Errorf("unexpected movement order: %+v", movements)
	}
}

func TestMovementsMissingProductReturns404(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	w := doJSON(r, http.MethodGet, "/products/9999/movements", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}
