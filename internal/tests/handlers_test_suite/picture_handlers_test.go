package handlers_test_suite

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func uploadPicture(t *testing.T, r http.Handler, productID int, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := multipartImage(nil, filename, content)
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/products/%d/picture", productID), body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUploadPicture(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	created := createdProduct(r, "Grinder", 89.00, 1)

	w := uploadPicture(t, r, created.ID, "grinder.png", pngBytes)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		ImageURL string `json:"image_url"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if !strings.HasPrefix(resp.ImageURL, "/uploads/") {
		t.Fatalf("expected image URL under /uploads/, got %q", resp.ImageURL)
	}

	stored := filepath.Join(uploadDir, filepath.Base(resp.ImageURL))
	if _, err := os.Stat(stored); err != nil {
		t.Errorf("expected stored image at %s: %v", stored, err)
	}

	// The product must now carry the image URL.
	w = doJSON(r, http.MethodGet, fmt.Sprintf("/products/%d", created.ID), nil)
	if !strings.Contains(w.Body.String(), resp.ImageURL) {
		t.Errorf("product does not reference the uploaded image: %s", w.Body.String())
	}
}

func TestUploadPictureReplacesOldFile(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	created := createdProduct(r, "Kettle", 35.00, 2)

	w := uploadPicture(t, r, created.ID, "kettle-v1.png", pngBytes)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 on first upload, got %d", w.Code)
	}
	var first struct {
		ImageURL string `json:"image_url"`
	}
	json.NewDecoder(w.Body).Decode(&first)

	// Upload names carry a millisecond timestamp; make sure the second
	// upload gets a distinct one.
	time.Sleep(2 * time.Millisecond)

	w = uploadPicture(t, r, created.ID, "kettle-v2.png", pngBytes)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 on second upload, got %d", w.Code)
	}

	old := filepath.Join(uploadDir, filepath.Base(first.ImageURL))
	if _, err := os.Stat(old); !os.IsNotExist(err) {
		t.Errorf("expected superseded image %s to be removed", old)
	}
}

func TestUploadPictureRejectsWrongType(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	created := createdProduct(r, "Scale", 25.00, 4)

	w := uploadPicture(t, r, created.ID, "notes.txt", []byte("plain text, not an image"))
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestUploadPictureMissingFile(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	created := createdProduct(r, "Tamper", 15.00, 6)

	body, contentType := multipartImage(map[string]string{"unrelated": "field"}, "", nil)
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/products/%d/picture", created.ID), body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestUploadPictureMissingProduct(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	w := uploadPicture(t, r, 9999, "ghost.png", pngBytes)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestCreateProductWithImageForm(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	body, contentType := multipartImage(map[string]string{
		"name":        "Mug",
		"description": "ceramic",
		"category":    "tableware",
		"price":       "7.50",
		"quantity":    "12",
	}, "mug.png", pngBytes)

	req := httptest.NewRequest(http.MethodPost, "/products", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "/uploads/") {
		t.Errorf("expected created product to carry an image URL: %s", w.Body.String())
	}
}
