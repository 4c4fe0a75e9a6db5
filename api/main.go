package main

import (
	"log"
	"net/http"

	"github.com/wingscafe/inventory/internal/config"
	"github.com/wingscafe/inventory/internal/db"
	"github.com/wingscafe/inventory/internal/http/handlers"
	"github.com/wingscafe/inventory/internal/http/router"
	"github.com/wingscafe/inventory/internal/imagestore"
	"github.com/wingscafe/inventory/internal/repo"

	_ "github.com/wingscafe/inventory/docs"
)

// @title Wings Cafe Inventory API
// @version 1.0
// @description REST API for managing the cafe's products, stock levels and accounts.
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("❌ Could not load configuration:", err)
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("❌ Could not connect to database:", err)
	}
	defer database.Close()

	store, err := imagestore.New(cfg.UploadDir, cfg.MaxUploadBytes)
	if err != nil {
		log.Fatal("❌ Could not prepare image store:", err)
	}

	handlers.SetProductRepo(repo.NewPostgresProductRepository(database))
	handlers.SetUserRepo(repo.NewPostgresUserRepository(database))
	handlers.SetMovementRepo(repo.NewPostgresMovementRepository(database))
	handlers.SetMetricsRepo(repo.NewPostgresMetricsRepository(database))
	handlers.SetImageStore(store)
	handlers.SetBcryptCost(cfg.BcryptCost)

	r := router.NewRouter(cfg.UploadDir)
	log.Println("✅ Server running on", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal(err)
	}
}
