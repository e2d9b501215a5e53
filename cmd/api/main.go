package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/bullmose/cutlist-backend/internal/database"
	"github.com/bullmose/cutlist-backend/internal/modules/catalog"
	"github.com/bullmose/cutlist-backend/internal/modules/color"
	"github.com/bullmose/cutlist-backend/internal/modules/cutlist"
	"github.com/bullmose/cutlist-backend/internal/modules/ingest"
	"github.com/bullmose/cutlist-backend/internal/modules/inventory"
	"github.com/bullmose/cutlist-backend/internal/modules/order"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Successfully connected to the database!")

	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Fatal(err)
	}

	// ── Static configuration ────────────────────────────────
	bagCatalog, err := catalog.LoadFile(envOr("BAGS_CONFIG", "bags_configs.yaml"))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Loaded %d bags from catalog\n", bagCatalog.Len())

	colorRegistry := color.NewPostgresRegistry(db)
	colorsPath := envOr("COLORS_CONFIG", "colors.yaml")
	if _, err := os.Stat(colorsPath); err == nil {
		n, err := color.SeedFromFile(ctx, colorRegistry, colorsPath)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Seeded %d colors from %s\n", n, colorsPath)
	} else {
		log.Printf("Colors config %s not found, skipping seed", colorsPath)
	}

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Catalog & Colors ────────────────────────────────────
	catalog.NewHandler(bagCatalog).RegisterRoutes(router)
	color.NewHandler(colorRegistry).RegisterRoutes(router)

	// ── Inventory ───────────────────────────────────────────
	inventoryRepo := inventory.NewPostgresRepository(db)
	inventoryService := inventory.NewService(inventoryRepo)
	inventory.NewHandler(inventoryService).RegisterRoutes(router)

	// ── Cut-List Ledger ─────────────────────────────────────
	ledger := cutlist.NewPostgresLedger(db)
	cutlistService := cutlist.NewService(ledger)
	cutlist.NewHandler(cutlistService).RegisterRoutes(router)

	// ── Order Decomposition ─────────────────────────────────
	engine := order.NewEngine(bagCatalog, order.NewResolver(), inventoryService)
	orderService := order.NewService(engine, ledger)
	order.NewHandler(orderService).RegisterRoutes(router)

	// ── Shopify Poller ──────────────────────────────────────
	shopURL := os.Getenv("SHOPIFY_SHOP_URL")
	accessToken := os.Getenv("SHOPIFY_ACCESS_TOKEN")
	if shopURL != "" && accessToken != "" {
		apiVersion := envOr("SHOPIFY_API_VERSION", "2024-01")
		interval, err := time.ParseDuration(envOr("POLL_INTERVAL", "5m"))
		if err != nil {
			log.Fatal(err)
		}
		source := ingest.NewShopifySource(shopURL, apiVersion, accessToken)
		poller := ingest.NewPoller(source, orderService, interval)
		go poller.Run(ctx)
		fmt.Printf("Polling %s for unfulfilled orders every %s\n", shopURL, interval)
	} else {
		log.Println("Shopify credentials not set, poller disabled")
	}

	// ── Start Server ────────────────────────────────────────
	port := envOr("APP_PORT", "8080")
	fmt.Printf("Cut-list API server starting on :%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
