package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/fhuszti/paper-site-go/internal/cache"
	"github.com/fhuszti/paper-site-go/internal/cloudinary"
	"github.com/fhuszti/paper-site-go/internal/config"
	"github.com/fhuszti/paper-site-go/internal/db"
	"github.com/fhuszti/paper-site-go/internal/handler/api"
	"github.com/fhuszti/paper-site-go/internal/logger"
	"github.com/fhuszti/paper-site-go/internal/mailer"
	"github.com/fhuszti/paper-site-go/internal/metrics"
	cMiddleware "github.com/fhuszti/paper-site-go/internal/middleware"
	"github.com/fhuszti/paper-site-go/internal/port"
	"github.com/fhuszti/paper-site-go/internal/renderer"
	"github.com/fhuszti/paper-site-go/internal/repository/mariadb"
	"github.com/fhuszti/paper-site-go/internal/task"
	"github.com/fhuszti/paper-site-go/internal/usecase/catalog"
	"github.com/fhuszti/paper-site-go/internal/usecase/lead"
	mediaSvc "github.com/fhuszti/paper-site-go/internal/usecase/media"
	"github.com/fhuszti/paper-site-go/internal/uuid"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	database := initDb(ctx, cfg)

	signer := cloudinary.NewSigner(cfg.CloudinaryAPISecret, cfg.CloudinaryUploadPreset)
	assets := cloudinary.NewClient(cloudinary.Config{
		CloudName:       cfg.CloudinaryCloudName,
		APIKey:          cfg.CloudinaryAPIKey,
		APIBaseURL:      cfg.CloudinaryAPIBaseURL,
		DeliveryBaseURL: cfg.CloudinaryDeliveryURL,
	}, signer)

	categoryRepo := mariadb.NewCategoryRepository(database.DB)
	productRepo := mariadb.NewProductRepository(database.DB)
	contentRepo := mariadb.NewContentRepository(database.DB)
	leadRepo := mariadb.NewLeadRepository(database.DB)

	var ca port.Cache
	var dispatcher port.TaskDispatcher
	var closers []func() error
	if cfg.RedisAddr != "" {
		redisCache := cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
		asynqDispatcher := task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)
		ca, dispatcher = redisCache, asynqDispatcher
		closers = append(closers, redisCache.Close, asynqDispatcher.Close)
		logger.Info(ctx, "✅  Redis cache and task queue enabled")
	} else {
		ml := mailer.New(mailer.Config{APIURL: cfg.EmailAPIURL, APIKey: cfg.EmailAPIKey, From: cfg.EmailFrom})
		ca = cache.NewNoop()
		dispatcher = task.NewInlineDispatcher(lead.NewLeadNotifier(leadRepo, ml, cfg.LeadRecipients))
		logger.Warn(ctx, "⚠️  Redis not configured, caching is disabled and lead emails are sent inline")
	}

	r := initRouter(ctx, cfg)

	rendererSvc := renderer.NewHTTPRenderer(ca, cfg.CatalogCacheTTL)
	readerSvc := catalog.NewCatalogReader(categoryRepo, productRepo, contentRepo)
	r.Get("/api/categories", api.GetCategoriesHandler(rendererSvc, readerSvc))
	r.Get("/api/categories/{slug}", api.GetCategoryHandler(rendererSvc, readerSvc))
	r.Get("/api/products", api.GetProductsHandler(rendererSvc, readerSvc))
	r.Get("/api/products/{slug}", api.GetProductHandler(rendererSvc, readerSvc))
	r.Get("/api/content/{key}", api.GetContentHandler(rendererSvc, readerSvc))

	submitSvc := lead.NewLeadSubmitter(leadRepo, dispatcher, uuid.NewUUID)
	r.Post("/api/leads", api.SubmitLeadHandler(submitSvc))

	categorySvc := catalog.NewCategoryManager(categoryRepo, productRepo, assets, ca, uuid.NewUUID)
	productSvc := catalog.NewProductManager(productRepo, categoryRepo, assets, ca, uuid.NewUUID)
	contentSvc := catalog.NewContentManager(contentRepo, assets, ca)
	leadSvc := lead.NewLeadManager(leadRepo)
	signatureSvc := mediaSvc.NewSignatureIssuer(signer)
	deleteSvc := mediaSvc.NewMediaDeleter(assets)

	r.Group(func(r chi.Router) {
		r.Use(cMiddleware.WithAdminAuth(cMiddleware.AuthConfig{
			PublicKeyPEM: cfg.JWTPublicKey,
			Issuer:       cfg.JWTIssuer,
			Audience:     cfg.JWTAudience,
		}))

		r.Post("/api/generate-signature", api.GenerateSignatureHandler(signatureSvc))
		r.Post("/api/delete-media", api.DeleteMediaHandler(deleteSvc))

		r.Post("/api/admin/categories", api.CreateCategoryHandler(categorySvc))
		r.With(cMiddleware.WithEntityID()).
			Put("/api/admin/categories/{id}", api.UpdateCategoryHandler(categorySvc))
		r.With(cMiddleware.WithEntityID()).
			Delete("/api/admin/categories/{id}", api.DeleteCategoryHandler(categorySvc))

		r.Post("/api/admin/products", api.CreateProductHandler(productSvc))
		r.With(cMiddleware.WithEntityID()).
			Put("/api/admin/products/{id}", api.UpdateProductHandler(productSvc))
		r.With(cMiddleware.WithEntityID()).
			Delete("/api/admin/products/{id}", api.DeleteProductHandler(productSvc))

		r.Put("/api/admin/content/{key}", api.UpsertContentHandler(contentSvc))

		r.Get("/api/admin/leads", api.ListLeadsHandler(leadSvc))
		r.With(cMiddleware.WithEntityID()).
			Delete("/api/admin/leads/{id}", api.DeleteLeadHandler(leadSvc))
	})

	listenRouter(ctx, r, cfg, database, closers)
}

func initDb(ctx context.Context, cfg *config.Settings) *db.Database {
	logger.Info(ctx, "initialising database...")

	database, err := db.New(db.MariaDbConfig{
		DSN:             cfg.MariaDBDSN,
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}

	return database
}

func initRouter(ctx context.Context, cfg *config.Settings) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(cMiddleware.WithRequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "If-None-Match"},
		ExposedHeaders:   []string{"ETag", "X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.NotFound(api.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	r.Handle("/metrics", metrics.Handler())

	return r
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings, database *db.Database, closers []func() error) {
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.ServerPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")

	for _, c := range closers {
		if err := c(); err != nil {
			logger.Warnf(ctx, "close error: %v", err)
		}
	}
	if err := database.Close(); err != nil {
		logger.Errorf(ctx, "DB close error: %v", err)
		os.Exit(1)
	}
}
