// Package client is the programmatic counterpart of the inventory web UI: a
// typed API client, a persistent local state store and the dashboard chart.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/wingscafe/inventory/internal/models"
	"github.com/wingscafe/inventory/internal/repo"
)

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrUnauthorized   = errors.New("invalid credentials")
	ErrNotFound       = errors.New("not found")
	ErrConflict       = errors.New("conflict")
)

// Product is the API's product representation.
type Product = models.Product

// Account mirrors the user representation the API returns; it never carries
// a password hash.
type Account struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// ProductForm carries the product fields of the management form. ImagePath,
// when set on create, is uploaded as the multipart image.
type ProductForm struct {
	Name        string
	Description string
	Category    string
	Price       float64
	Quantity    int
	ImagePath   string
}

type Client struct {
	baseURL string
	httpc   *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := c.doJSON(ctx, http.MethodGet, "/products", nil, &products, http.StatusOK)
	return products, err
}

func (c *Client) Product(ctx context.Context, id int) (models.Product, error) {
	var p models.Product
	err := c.doJSON(ctx, http.MethodGet, "/products/"+strconv.Itoa(id), nil, &p, http.StatusOK)
	return p, err
}

func (c *Client) CreateProduct(ctx context.Context, form ProductForm) (models.Product, error) {
	if form.ImagePath != "" {
		return c.createProductMultipart(ctx, form)
	}
	var p models.Product
	err := c.doJSON(ctx, http.MethodPost, "/products", productBody(form), &p, http.StatusCreated)
	return p, err
}

func (c *Client) UpdateProduct(ctx context.Context, id int, form ProductForm) (models.Product, error) {
	var p models.Product
	err := c.doJSON(ctx, http.MethodPut, "/products/"+strconv.Itoa(id), productBody(form), &p, http.StatusOK)
	return p, err
}

func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	return c.doJSON(ctx, http.MethodDelete, "/products/"+strconv.Itoa(id), nil, nil, http.StatusOK)
}

// SetQuantity replaces a product's quantity with an absolute value.
func (c *Client) SetQuantity(ctx context.Context, id, quantity int) error {
	body := map[string]int{"quantity": quantity}
	return c.doJSON(ctx, http.MethodPatch, "/products/"+strconv.Itoa(id), body, nil, http.StatusOK)
}

// AdjustQuantity applies a signed delta; the server refuses changes that
// would drive the stock negative (ErrConflict).
func (c *Client) AdjustQuantity(ctx context.Context, id, delta int) (models.Product, error) {
	var p models.Product
	body := map[string]int{"delta": delta}
	err := c.doJSON(ctx, http.MethodPost, "/products/"+strconv.Itoa(id)+"/adjust", body, &p, http.StatusOK)
	return p, err
}

func (c *Client) Movements(ctx context.Context, productID int) ([]models.Movement, error) {
	var movements []models.Movement
	err := c.doJSON(ctx, http.MethodGet, "/products/"+strconv.Itoa(productID)+"/movements", nil, &movements, http.StatusOK)
	return movements, err
}

// UploadPicture replaces a product image and returns the new relative URL.
func (c *Client) UploadPicture(ctx context.Context, id int, imagePath string) (string, error) {
	body, contentType, err := fileForm(imagePath, nil)
	if err != nil {
		return "", err
	}

	var resp struct {
		ImageURL string `json:"image_url"`
	}
	err = c.doMultipart(ctx, "/products/"+strconv.Itoa(id)+"/picture", body, contentType, &resp, http.StatusOK)
	return resp.ImageURL, err
}

func (c *Client) Users(ctx context.Context) ([]Account, error) {
	var users []Account
	err := c.doJSON(ctx, http.MethodGet, "/users", nil, &users, http.StatusOK)
	return users, err
}

func (c *Client) CreateUser(ctx context.Context, username, password string) (Account, error) {
	var a Account
	body := map[string]string{"username": username, "password": password}
	err := c.doJSON(ctx, http.MethodPost, "/users", body, &a, http.StatusCreated)
	return a, err
}

func (c *Client) RenameUser(ctx context.Context, id int, username string) (Account, error) {
	var a Account
	body := map[string]string{"username": username}
	err := c.doJSON(ctx, http.MethodPut, "/users/"+strconv.Itoa(id), body, &a, http.StatusOK)
	return a, err
}

func (c *Client) DeleteUser(ctx context.Context, id int) error {
	return c.doJSON(ctx, http.MethodDelete, "/users/"+strconv.Itoa(id), nil, nil, http.StatusOK)
}

// Login verifies credentials server-side; there is no local password
// matching and no session token.
func (c *Client) Login(ctx context.Context, username, password string) (Account, error) {
	var a Account
	body := map[string]string{"username": username, "password": password}
	err := c.doJSON(ctx, http.MethodPost, "/login", body, &a, http.StatusOK)
	return a, err
}

func (c *Client) Metrics(ctx context.Context) (repo.Metrics, error) {
	var m repo.Metrics
	err := c.doJSON(ctx, http.MethodGet, "/metrics/dashboard", nil, &m, http.StatusOK)
	return m, err
}

func productBody(form ProductForm) any {
	return map[string]any{
		"name":        form.Name,
		"description": form.Description,
		"category":    form.Category,
		"price":       form.Price,
		"quantity":    form.Quantity,
	}
}

func (c *Client) createProductMultipart(ctx context.Context, form ProductForm) (models.Product, error) {
	body, contentType, err := fileForm(form.ImagePath, map[string]string{
		"name":        form.Name,
		"description": form.Description,
		"category":    form.Category,
		"price":       strconv.FormatFloat(form.Price, 'f', -1, 64),
		"quantity":    strconv.Itoa(form.Quantity),
	})
	if err != nil {
		return models.Product{}, err
	}

	var p models.Product
	err = c.doMultipart(ctx, "/products", body, contentType, &p, http.StatusCreated)
	return p, err
}

func fileForm(imagePath string, fields map[string]string) (*bytes.Buffer, string, error) {
	file, err := os.Open(imagePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, "", err
		}
	}
	part, err := writer.CreateFormFile("image", filepath.Base(imagePath))
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, "", err
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return &buf, writer.FormDataContentType(), nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any, wantStatus int) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, out, wantStatus)
}

func (c *Client) doMultipart(ctx context.Context, path string, body io.Reader, contentType string, out any, wantStatus int) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)
	return c.do(req, out, wantStatus)
}

func (c *Client) do(req *http.Request, out any, wantStatus int) error {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return apiError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func apiError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	message := strings.TrimSpace(string(data))
	if message == "" {
		message = resp.Status
	}

	var sentinel error
	switch resp.StatusCode {
	case http.StatusBadRequest:
		sentinel = ErrInvalidRequest
	case http.StatusUnauthorized:
		sentinel = ErrUnauthorized
	case http.StatusNotFound:
		sentinel = ErrNotFound
	case http.StatusConflict:
		sentinel = ErrConflict
	default:
		return fmt.Errorf("server error (%d): %s", resp.StatusCode, message)
	}
	return fmt.Errorf("%w: %s", sentinel, message)
}
