package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"health-tracker-server/config"
	_ "health-tracker-server/docs"
	"health-tracker-server/internal/handler"
	"health-tracker-server/internal/inference"
	"health-tracker-server/internal/middleware"
	"health-tracker-server/internal/ports"
	"health-tracker-server/internal/repository"
	"health-tracker-server/internal/security"
	"health-tracker-server/internal/service"
	"health-tracker-server/internal/util"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// @title Health-tracker-server
// @version 1.0
// @description REST API трекера здоровья: аутентификация, профиль, блог и проверки риска диабета

// @host localhost:8080

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	logger, err := util.NewLogger(cfg.Log.Level)
	if err != nil {
		log.Fatalf("Ошибка создания логгера: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := config.SetupDatabase(&cfg.DatabaseConfig)
	if err != nil {
		logger.Fatal("Не удалось подключиться к БД", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("Ошибка при закрытии БД", zap.Error(err))
		}
	}()

	if err := repository.RunMigrations(ctx, db.DB.DB); err != nil {
		logger.Fatal("Ошибка применения миграций", zap.Error(err))
	}

	redisClient, err := config.SetupRedis(&cfg.RedisConfig)
	if err != nil {
		logger.Fatal("Ошибка подключения к Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("Ошибка при закрытии Redis", zap.Error(err))
		}
	}()

	srv, router := config.SetupServer(&cfg.Server)

	userRepo := repository.NewUserRepository()
	tokenRepo := repository.NewRefreshTokenRepository()
	blogRepo := repository.NewBlogRepository()
	checkRepo := repository.NewCheckRepository()
	cacheRepo := repository.NewCacheRepository(redisClient, cfg.TTL.BlogCache)

	var storage ports.ObjectStorage
	if cfg.S3Config.Bucket != "" {
		s3Service, err := service.NewS3Service(ctx, &cfg.S3Config)
		if err != nil {
			logger.Warn("S3 недоступен, загрузка обложек отключена", zap.Error(err))
		} else {
			storage = s3Service
		}
	}

	var scorer ports.InferenceClient
	if client := inference.NewClient(&cfg.Inference); client != nil {
		scorer = client
	} else {
		logger.Info("URL сервиса оценки не задан, проверки сохраняются без оценки риска")
	}

	var authOpts []service.AuthOption
	if cfg.JWT.RevocationEnabled {
		authOpts = append(authOpts, service.WithDenylist(repository.NewDenylistRepository(redisClient)))
	}

	jwtService := security.NewJWTService(&cfg.JWT)
	hasher := security.NewBcryptHasher(cfg.Security.BcryptCost)

	authService, err := service.NewAuthenticationService(db, userRepo, tokenRepo, jwtService, hasher, cfg.JWT.RefreshTokenTTL, authOpts...)
	if err != nil {
		logger.Fatal("Ошибка создания сервиса аутентификации", zap.Error(err))
	}
	userService := service.NewUserService(db, userRepo, tokenRepo, hasher)
	blogService := service.NewBlogService(db, blogRepo, cacheRepo, storage, cfg.TTL.PresignedURL)
	checkService := service.NewCheckService(db, checkRepo, scorer)
	janitor := service.NewTokenJanitor(db, tokenRepo, cfg.JWT.CleanupInterval)

	limiter, err := middleware.NewRateLimiter(&cfg.RateLimit)
	if err != nil {
		logger.Fatal("Ошибка создания rate limiter", zap.Error(err))
	}
	metrics := middleware.NewMetrics()

	queryTimeout := cfg.DatabaseConfig.QueryTimeout
	authHandler := handler.NewAuthenticationHandler(authService, queryTimeout)
	userHandler := handler.NewUserHandler(userService, queryTimeout)
	blogHandler := handler.NewBlogHandler(blogService, queryTimeout)
	checkHandler := handler.NewCheckHandler(checkService, queryTimeout)
	healthHandler := handler.NewHealthHandler(db, redisClient)

	router.Use(chimiddleware.RequestID)
	router.Use(middleware.ClientAddress(cfg.Server.TrustProxyHeaders))
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.RequestLogger(logger))
	router.Use(metrics.Middleware)

	router.Get("/health", healthHandler.Health)
	router.Handle("/metrics", metrics.Handler())
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	setupAuthRoutes(router, authHandler, authService, limiter)
	setupUserRoutes(router, userHandler, authService)
	setupBlogRoutes(router, blogHandler, authService)
	setupCheckRoutes(router, checkHandler, authService)

	if err := runServer(ctx, srv, cfg.Server.ShutdownTimeout, janitor, limiter); err != nil {
		logger.Error("Сервер остановлен с ошибкой", zap.Error(err))
		return
	}
	logger.Info("Сервер успешно остановлен")
}

func setupAuthRoutes(r chi.Router, h *handler.AuthenticationHandler, auth security.Authenticator, limiter *middleware.RateLimiter) {
	r.Route("/api/auth", func(r chi.Router) {
		r.Use(limiter.Middleware)

		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.Post("/refresh", h.RefreshToken)
		r.Post("/logout", h.Logout)

		r.Group(func(r chi.Router) {
			r.Use(security.JWTMiddleware(auth))
			r.Post("/logout-all", h.LogoutAll)
			r.Get("/me", h.GetCurrentUser)
			r.Head("/me", h.GetCurrentUserHead)
		})
	})
}

func setupUserRoutes(r chi.Router, h *handler.UserHandler, auth security.Authenticator) {
	r.Route("/api/users/me", func(r chi.Router) {
		r.Use(security.JWTMiddleware(auth))
		r.Get("/", h.GetProfile)
		r.Put("/", h.UpdateProfile)
		r.Put("/password", h.ChangePassword)
	})
}

func setupBlogRoutes(r chi.Router, h *handler.BlogHandler, auth security.Authenticator) {
	r.Route("/api/blogs", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(security.OptionalJWTMiddleware(auth))
			r.Get("/", h.ListPosts)
			r.Get("/{id}", h.GetPost)
		})

		r.Group(func(r chi.Router) {
			r.Use(security.JWTMiddleware(auth))
			r.Post("/", h.CreatePost)
			r.Put("/{id}", h.UpdatePost)
			r.Delete("/{id}", h.DeletePost)
			r.Post("/{id}/cover", h.CoverUpload)
		})
	})
}

func setupCheckRoutes(r chi.Router, h *handler.CheckHandler, auth security.Authenticator) {
	r.Route("/api/checks", func(r chi.Router) {
		r.Use(security.JWTMiddleware(auth))
		r.Get("/", h.ListChecks)
		r.Post("/", h.CreateCheck)
		r.Get("/{id}", h.GetCheck)
		r.Delete("/{id}", h.DeleteCheck)
	})
}

// runServer : сервер и фоновые задачи живут до сигнала остановки
func runServer(
	ctx context.Context,
	server *http.Server,
	shutdownTimeout time.Duration,
	janitor *service.TokenJanitor,
	limiter *middleware.RateLimiter,
) error {
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		zap.L().Info("сервер запущен", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		return janitor.Run(groupCtx)
	})

	group.Go(func() error {
		limiter.RunCleanup(groupCtx)
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		zap.L().Info("получен сигнал остановки работы сервера")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("ошибка при остановке сервера: %w", err)
		}
		return nil
	})

	return group.Wait()
}
