package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"

	"craft-store/internal/blog"
	"craft-store/internal/cart"
	"craft-store/internal/catalog"
	"craft-store/internal/checkout"
	"craft-store/internal/db"
	"craft-store/internal/featureflags"
	mw "craft-store/internal/http/middleware"
	"craft-store/internal/logger"
	"craft-store/internal/session"
	"craft-store/internal/storage"
)

func main() {
	// 1) DB init (optional catalog source)
	sqlDB, err := db.Init()
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}
	if sqlDB != nil {
		defer sqlDB.Close()
	}

	// 2) Feature flags init (non-fatal)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()
	if err := featureflags.Init(ctx, os.Getenv("ROLLOUT_API_KEY")); err != nil {
		log.Printf("feature flags init warning: %v", err)
	} else {
		log.Printf("feature flags ready: offline=%v, logLevel=%s",
			featureflags.Values().Offline.IsEnabled(nil),
			featureflags.Values().LogLevel.GetValue(nil))
	}
	defer featureflags.Shutdown()

	// 2a) Initialize levelled logger from flag & watch for flips
	logger.Init(featureflags.Values().LogLevel.GetValue(nil))
	logger.Infof("log level set to %s", logger.GetLevel())

	go func() {
		prev := featureflags.Values().LogLevel.GetValue(nil)
		for {
			time.Sleep(5 * time.Second)
			cur := featureflags.Values().LogLevel.GetValue(nil)
			if cur != prev {
				logger.SetLevel(cur)
				logger.Infof("log level changed to %s", logger.GetLevel())
				prev = cur
			}
		}
	}()

	// 3) Durable client storage for carts and sessions
	var kv storage.KV
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		rkv, err := storage.NewRedis(redisURL, "craft")
		if err != nil {
			log.Fatalf("redis init failed: %v", err)
		}
		defer rkv.Close()
		kv = rkv
		logger.Infof("carts/sessions persisted to redis")
	} else {
		kv = storage.NewMemory()
		logger.Infof("REDIS_URL not set, carts/sessions kept in memory")
	}

	// 4) Router
	r := mux.NewRouter()

	// 4a) Offline kill-switch middleware (placed immediately after router creation)
	offlineGate := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// always allow health checks
			if r.URL.Path == "/health" || r.URL.Path == "/ready" {
				next.ServeHTTP(w, r)
				return
			}
			// block all other requests when Offline flag is ON
			if featureflags.Values().Offline.IsEnabled(nil) {
				http.Error(w, "service temporarily offline", http.StatusServiceUnavailable)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
	r.Use(offlineGate)

	// 4b) Request logger (skip noisy health endpoints)
	r.Use(mw.LogRequests(mw.WithSkips("/health", "/ready")))

	// 4c) Every request gets a client id tying it to its cart/session
	r.Use(mw.WithClientID)

	// 5) Health endpoints
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	r.HandleFunc("/ready", func(w http.ResponseWriter, _ *http.Request) {
		if sqlDB != nil {
			if err := sqlDB.Ping(); err != nil {
				http.Error(w, "db not ready", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	}).Methods(http.MethodGet)

	// 6) Inspect current flag values
	r.HandleFunc("/_flags", func(w http.ResponseWriter, _ *http.Request) {
		resp := map[string]interface{}{
			"offline":  featureflags.Values().Offline.IsEnabled(nil),
			"logLevel": featureflags.Values().LogLevel.GetValue(nil),
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}).Methods(http.MethodGet)

	// 7) Catalog: embedded fixtures, or Postgres when configured
	var catalogStore *catalog.Store
	if sqlDB != nil {
		catalogStore, err = catalog.NewStoreFromDB(ctx, sqlDB)
		if err != nil {
			logger.Warnf("catalog load from db failed, using fixtures: %v", err)
		}
	} else {
		catalogStore = catalog.NewStore()
	}
	logger.Infof("catalog ready: %d products", len(catalogStore.Products()))

	catalogHandler := catalog.NewHandler(catalogStore, sqlDB)
	r.HandleFunc("/api/products", catalogHandler.ListProducts).Methods(http.MethodGet)
	r.HandleFunc("/api/products/popular", catalogHandler.ListPopular).Methods(http.MethodGet)
	r.HandleFunc("/api/products/new", catalogHandler.ListNew).Methods(http.MethodGet)
	r.HandleFunc("/api/products/{id:[0-9]+}", catalogHandler.GetProduct).Methods(http.MethodGet)
	r.HandleFunc("/api/products/{id:[0-9]+}/related", catalogHandler.GetRelated).Methods(http.MethodGet)
	r.HandleFunc("/api/categories", catalogHandler.ListCategories).Methods(http.MethodGet)
	r.HandleFunc("/api/brands", catalogHandler.ListBrands).Methods(http.MethodGet)
	r.HandleFunc("/api/catalog/reload", catalog.RequireAdmin(catalogHandler.Reload)).Methods(http.MethodPost)

	// 8) Cart
	cartManager := cart.NewManager(kv, catalogStore)
	cartHandler := cart.NewHandler(cartManager, catalogStore)
	r.HandleFunc("/api/cart", cartHandler.GetCart).Methods(http.MethodGet)
	r.HandleFunc("/api/cart", cartHandler.ClearCart).Methods(http.MethodDelete)
	r.HandleFunc("/api/cart/items", cartHandler.AddItem).Methods(http.MethodPost)
	r.HandleFunc("/api/cart/items/{productId:[0-9]+}", cartHandler.UpdateItem).Methods(http.MethodPut)
	r.HandleFunc("/api/cart/items/{productId:[0-9]+}", cartHandler.RemoveItem).Methods(http.MethodDelete)

	// 9) Session
	sessionManager := session.NewManager(kv)
	sessionHandler := session.NewHandler(sessionManager)
	r.HandleFunc("/api/session", sessionHandler.GetSession).Methods(http.MethodGet)
	r.HandleFunc("/api/session/login", sessionHandler.Login).Methods(http.MethodPost)
	r.HandleFunc("/api/session/register", sessionHandler.Register).Methods(http.MethodPost)
	r.HandleFunc("/api/session/logout", sessionHandler.Logout).Methods(http.MethodPost)
	r.HandleFunc("/api/session/favorites/{productId:[0-9]+}", sessionHandler.ToggleFavorite).Methods(http.MethodPost)

	// 10) Checkout
	checkoutHandler := checkout.NewHandler(checkout.NewService(catalogStore), cartManager, sessionManager)
	r.HandleFunc("/api/checkout", checkoutHandler.PlaceOrder).Methods(http.MethodPost)

	// 11) Blog
	r.HandleFunc("/api/blog", blog.ListPosts).Methods(http.MethodGet)
	r.HandleFunc("/api/blog/{id:[0-9]+}", blog.GetPost).Methods(http.MethodGet)

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}
	s := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Infof("craft-store listening on %s", s.Addr)
	log.Fatal(s.ListenAndServe())
}
