package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/wingscafe/inventory/internal/models"
)

func TestCreateAndGetProduct(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	created := createdProduct(r, "Coffee", 4.50, 10)
	if created.ID == 0 {
		t.Fatal("expected created product to have an ID")
	}
	if created.Quantity != 10 {
		t.Errorf("expected quantity 10, got %d", created.Quantity)
	}

	w := doJSON(r, http.MethodGet, fmt.Sprintf("/products/%d", created.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var fetched models.Product
	if err := json.NewDecoder(w.Body).Decode(&fetched); err != nil {
		t.Fatalf("error decoding product: %v", err)
	}
	if fetched.Name != "Coffee" || fetched.Price != 4.50 {
		t.Errorf("unexpected product: %+v", fetched)
	}
}

func TestGetProductsEmptyReturnsArray(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	w := doJSON(r, http.MethodGet, "/products", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if body := bytes.TrimSpace(w.Body.Bytes()); string(body) != "[]" {
		t.Errorf("expected empty array body, got %q", body)
	}
}

func TestCreateProductValidation(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	tests := []struct {
		name    string
		payload map[string]any
	}{
		{"missing name", map[string]any{"price": 1.0, "quantity": 1}},
		{"missing price", map[string]any{"name": "Tea", "quantity": 1}},
		{"negative price", map[string]any{"name": "Tea", "price": -1.0, "quantity": 1}},
		{"missing quantity", map[string]any{"name": "Tea", "price": 1.0}},
		{"negative quantity", map[string]any{"name": "Tea", "price": 1.0, "quantity": -3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, "/products", tt.payload)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", w.Code)
			}
		})
	}
}

func TestCreateProductMalformedJSON(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestUpdateProduct(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	created := createdProduct(r, "Milk", 2.00, 5)

	w := doJSON(r, http.MethodPut, fmt.Sprintf("/products/%d", created.ID), map[string]any{
		"name":        "Oat Milk",
		"description": "barista edition",
		"category":    "dairy alternatives",
		"price":       3.20,
		"quantity":    8,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var updated models.Product
	if err := json.NewDecoder(w.Body).Decode(&updated); err != nil {
		t.Fatalf("error decoding product: %v", err)
	}
	if updated.Name != "Oat Milk" || updated.Quantity != 8 {
		t.Errorf("unexpected product after update: %+v", updated)
	}
}

func TestUpdateMissingProductReturns404(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	w := doJSON(r, http.MethodPut, "/products/9999", map[string]any{
		"name":     "Ghost",
		"price":    1.0,
		"quantity": 1,
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestDeleteProductTwice(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	created := createdProduct(r, "Sugar", 1.10, 3)

	w := doJSON(r, http.MethodDelete, fmt.Sprintf("/products/%d", created.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 on first delete, got %d", w.Code)
	}

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/products/%d", created.ID), nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404 on second delete, got %d", w.Code)
	}
}

func TestGetMissingProductReturns404(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	w := doJSON(r, http.MethodGet, "/products/424242", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestCreateProductInvalidIDPath(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	w := doJSON(r, http.MethodGet, "/products/abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}
