package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"github.com/wingscafe/inventory/internal/http/handlers"
	"github.com/wingscafe/inventory/internal/imagestore"
)

// NewRouter wires every route of the API. uploadDir is served read-only
// under /uploads/.
func NewRouter(uploadDir string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/products", handlers.GetProductsHandler)
	r.Post("/products", handlers.CreateProductHandler)
	r.Get("/products/{id}", handlers.GetProductByIDHandler)
	r.Put("/products/{id}", handlers.UpdateProductHandler)
	r.Patch("/products/{id}", handlers.SetQuantityHandler)
	r.Delete("/products/{id}", handlers.DeleteProductHandler)
	r.Post("/products/{id}/adjust", handlers.AdjustQuantityHandler)
	r.Get("/products/{id}/movements", handlers.GetMovementsHandler)
	r.Post("/products/{id}/picture", handlers.UpdateProductPictureHandler)

	r.Get("/users", handlers.GetUsersHandler)
	r.Post("/users", handlers.CreateUserHandler)
	r.Put("/users/{id}", handlers.UpdateUserHandler)
	r.Delete("/users/{id}", handlers.DeleteUserHandler)
	r.Post("/login", handlers.LoginHandler)

	r.Get("/metrics/dashboard", handlers.GetDashboardMetricsHandler)

	r.Handle(imagestore.URLPrefix+"*", http.StripPrefix(imagestore.URLPrefix,
		http.FileServer(http.Dir(uploadDir))))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return r
}
