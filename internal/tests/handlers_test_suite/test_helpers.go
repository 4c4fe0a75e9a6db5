package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"

	handler "github.com/wingscafe/inventory/internal/http/handlers"
	api "github.com/wingscafe/inventory/internal/http/router"
	"github.com/wingscafe/inventory/internal/imagestore"
	"github.com/wingscafe/inventory/internal/models"
	"github.com/wingscafe/inventory/internal/repo"
	"golang.org/x/crypto/bcrypt"
)

var (
	productRepo  *repo.InMemoryProductRepository
	userRepo     *repo.InMemoryUserRepository
	movementRepo *repo.InMemoryMovementRepository

	uploadDir string
)

// pngBytes is a minimal payload whose sniffed content type is image/png.
var pngBytes = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}

func init() {
	var err error
	uploadDir, err = os.MkdirTemp("", "inventory-uploads-")
	if err != nil {
		panic(fmt.Sprintf("error creating upload dir: %v", err))
	}

	store, err := imagestore.New(uploadDir, 10<<20)
	if err != nil {
		panic(fmt.Sprintf("error creating image store: %v", err))
	}
	handler.SetImageStore(store)
	handler.SetBcryptCost(bcrypt.MinCost)

	setupTestRepos()
}

func setupTestRepos() {
	productRepo = repo.NewInMemoryProductRepository()
	handler.SetProductRepo(productRepo)

	movementRepo = repo.NewInMemoryMovementRepository()
	handler.SetMovementRepo(movementRepo)

	userRepo = repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	userRepo.CreateUser(models.User{
		Username:     "admin",
		PasswordHash: string(hash),
	})

	metricsRepo := repo.NewInMemoryMetricsRepository()
	handler.SetMetricsRepo(metricsRepo)
	metricsRepo.SetRepositories(productRepo, userRepo, movementRepo)
}

func newRouter() http.Handler {
	return api.NewRouter(uploadDir)
}

func clearAllProducts() {
	productRepo.Clear()
	movementRepo.Clear()
}

func resetUsers() {
	setupTestRepos()
}

func doJSON(r http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		data, _ := json.Marshal(payload)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createProduct(r http.Handler, name string, price float64, quantity int) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/products", map[string]any{
		"name":        name,
		"description": name + " description",
		"category":    "beverages",
		"price":       price,
		"quantity":    quantity,
	})
}

func adjustProduct(r http.Handler, productID, delta int) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, fmt.Sprintf("/products/%d/adjust", productID), map[string]int{"delta": delta})
}

func createdProduct(r http.Handler, name string, price float64, quantity int) models.Product {
	w := createProduct(r, name, price, quantity)
	if w.Code != http.StatusCreated {
		panic(fmt.Sprintf("failed to create product %q: status %d", name, w.Code))
	}
	var p models.Product
	if err := json.NewDecoder(w.Body).Decode(&p); err != nil {
		panic(fmt.Sprintf("error decoding created product: %v", err))
	}
	return p
}

// multipartImage builds a multipart body with the given form fields and an
// image file part.
func multipartImage(fields map[string]string, filename string, content []byte) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		writer.WriteField(key, value)
	}
	if filename != "" {
		part, _ := writer.CreateFormFile("image", filename)
		part.Write(content)
	}

	writer.Close()
	return &buf, writer.FormDataContentType()
}
