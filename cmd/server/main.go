package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/DanushArun/Yasodha-pg-website/internal/config"
	"github.com/DanushArun/Yasodha-pg-website/internal/handler"
	"github.com/DanushArun/Yasodha-pg-website/internal/logging"
	"github.com/DanushArun/Yasodha-pg-website/internal/model"
	"github.com/DanushArun/Yasodha-pg-website/internal/service"
	"github.com/DanushArun/Yasodha-pg-website/internal/storage"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logging.Setup()

	// The CSV file is the safety net; refusing to start without it is
	// the only way to keep the at-least-one-store guarantee.
	local := storage.NewCSVStore(cfg.CSVFile)
	if err := local.EnsureInitialized(context.Background()); err != nil {
		logging.Fatal("csv store init failed", "path", cfg.CSVFile, "error", err)
	}

	remote := connectSheets(cfg)
	coordinator := storage.NewCoordinator(remote, local)

	inquiryService := service.NewInquiryService(coordinator)
	subscriptionService := service.NewSubscriptionService(coordinator)

	inquiryHandler := handler.NewInquiryHandler(inquiryService, model.ValidateOptions{
		MaxMessageLength:     cfg.MaxMessageLength,
		RejectPastVisitDates: cfg.RejectPastVisitDates,
	})
	subscribeHandler := handler.NewSubscribeHandler(subscriptionService)
	galleryHandler := handler.NewGalleryHandler(cfg.GalleryDir, cfg.GalleryURLPrefix)

	limiter := handler.NewRateLimiter(cfg.RateLimitPerMinute)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", handler.Health)
	mux.HandleFunc("GET /api/gallery-images", galleryHandler.List)
	mux.Handle("POST /submit_booking", limiter.Middleware(http.HandlerFunc(inquiryHandler.Submit)))
	mux.Handle("POST /subscribe_email", limiter.Middleware(http.HandlerFunc(subscribeHandler.Subscribe)))
	mux.Handle("/", http.FileServer(http.Dir(cfg.StaticDir)))

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})

	var root http.Handler = mux
	root = corsMiddleware.Handler(root)
	root = handler.SecurityHeaders(root)
	root = handler.Recover(root)
	root = handler.RequestLogger(root)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      root,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "csv_fallback_only", coordinator.FallingBack())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

// connectSheets opens the Google Sheet and bootstraps its header row.
// Any failure is logged and the process runs CSV-only for its lifetime;
// there is no automatic reconnect.
func connectSheets(cfg *config.Config) storage.RowStore {
	if cfg.SpreadsheetID == "" {
		slog.Warn("SPREADSHEET_ID not set, using csv store only")
		return nil
	}
	if _, err := os.Stat(cfg.ServiceAccountFile); err != nil {
		slog.Warn("service account file not found, using csv store only", "path", cfg.ServiceAccountFile)
		return nil
	}

	ctx := context.Background()
	remote, err := storage.ConnectSheets(ctx, cfg.ServiceAccountFile, cfg.SpreadsheetID, cfg.SheetName, cfg.RemoteTimeout)
	if err != nil {
		slog.Warn("google sheets connect failed, using csv store only", "error", err)
		return nil
	}
	if err := remote.EnsureInitialized(ctx); err != nil {
		slog.Warn("google sheets header init failed, using csv store only", "error", err)
		return nil
	}

	slog.Info("google sheets connected", "spreadsheet_id", cfg.SpreadsheetID, "sheet", cfg.SheetName)
	return remote
}
