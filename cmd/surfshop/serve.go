package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	checkAlertsHandler "github.com/m04kA/SMC-SurfShopService/internal/api/handlers/check_alerts"
	checkoutHandler "github.com/m04kA/SMC-SurfShopService/internal/api/handlers/checkout"
	conditionsHandler "github.com/m04kA/SMC-SurfShopService/internal/api/handlers/conditions"
	galleryHandler "github.com/m04kA/SMC-SurfShopService/internal/api/handlers/gallery"
	getActiveRentalsHandler "github.com/m04kA/SMC-SurfShopService/internal/api/handlers/get_active_rentals"
	getPaymentStatusHandler "github.com/m04kA/SMC-SurfShopService/internal/api/handlers/get_payment_status"
	getRentalHandler "github.com/m04kA/SMC-SurfShopService/internal/api/handlers/get_rental"
	getRentalHistoryHandler "github.com/m04kA/SMC-SurfShopService/internal/api/handlers/get_rental_history"
	getRentalReceiptHandler "github.com/m04kA/SMC-SurfShopService/internal/api/handlers/get_rental_receipt"
	loginHandler "github.com/m04kA/SMC-SurfShopService/internal/api/handlers/login"
	productsHandler "github.com/m04kA/SMC-SurfShopService/internal/api/handlers/products"
	pushHandler "github.com/m04kA/SMC-SurfShopService/internal/api/handlers/push"
	rentalsLiveHandler "github.com/m04kA/SMC-SurfShopService/internal/api/handlers/rentals_live"
	settingsHandler "github.com/m04kA/SMC-SurfShopService/internal/api/handlers/settings"
	setupOperatorHandler "github.com/m04kA/SMC-SurfShopService/internal/api/handlers/setup_operator"
	startRentalHandler "github.com/m04kA/SMC-SurfShopService/internal/api/handlers/start_rental"
	stripeWebhookHandler "github.com/m04kA/SMC-SurfShopService/internal/api/handlers/stripe_webhook"
	surfboardsHandler "github.com/m04kA/SMC-SurfShopService/internal/api/handlers/surfboards"
	updateRentalHandler "github.com/m04kA/SMC-SurfShopService/internal/api/handlers/update_rental"
	uploadFileHandler "github.com/m04kA/SMC-SurfShopService/internal/api/handlers/upload_file"
	"github.com/m04kA/SMC-SurfShopService/internal/api/middleware"
	"github.com/m04kA/SMC-SurfShopService/internal/config"
	"github.com/m04kA/SMC-SurfShopService/internal/infra/cache"
	galleryRepo "github.com/m04kA/SMC-SurfShopService/internal/infra/storage/gallery"
	orderRepo "github.com/m04kA/SMC-SurfShopService/internal/infra/storage/order"
	productRepo "github.com/m04kA/SMC-SurfShopService/internal/infra/storage/product"
	rentalRepo "github.com/m04kA/SMC-SurfShopService/internal/infra/storage/rental"
	settingsRepo "github.com/m04kA/SMC-SurfShopService/internal/infra/storage/settings"
	subscriptionRepo "github.com/m04kA/SMC-SurfShopService/internal/infra/storage/subscription"
	surfboardRepo "github.com/m04kA/SMC-SurfShopService/internal/infra/storage/surfboard"
	userRepo "github.com/m04kA/SMC-SurfShopService/internal/infra/storage/user"
	"github.com/m04kA/SMC-SurfShopService/internal/infra/uploads"
	"github.com/m04kA/SMC-SurfShopService/internal/integrations/news"
	"github.com/m04kA/SMC-SurfShopService/internal/integrations/openweather"
	"github.com/m04kA/SMC-SurfShopService/internal/integrations/stripe"
	"github.com/m04kA/SMC-SurfShopService/internal/integrations/tides"
	"github.com/m04kA/SMC-SurfShopService/internal/receipt"
	authService "github.com/m04kA/SMC-SurfShopService/internal/service/auth"
	conditionsService "github.com/m04kA/SMC-SurfShopService/internal/service/conditions"
	galleryService "github.com/m04kA/SMC-SurfShopService/internal/service/gallery"
	ordersService "github.com/m04kA/SMC-SurfShopService/internal/service/orders"
	productsService "github.com/m04kA/SMC-SurfShopService/internal/service/products"
	pushService "github.com/m04kA/SMC-SurfShopService/internal/service/push"
	rentalsService "github.com/m04kA/SMC-SurfShopService/internal/service/rentals"
	settingsService "github.com/m04kA/SMC-SurfShopService/internal/service/settings"
	surfboardsService "github.com/m04kA/SMC-SurfShopService/internal/service/surfboards"
	checkAlertsUC "github.com/m04kA/SMC-SurfShopService/internal/usecase/check_alerts"
	startRentalUC "github.com/m04kA/SMC-SurfShopService/internal/usecase/start_rental"
	updateRentalUC "github.com/m04kA/SMC-SurfShopService/internal/usecase/update_rental"
	"github.com/m04kA/SMC-SurfShopService/migrations"
	"github.com/m04kA/SMC-SurfShopService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SurfShopService/pkg/jwtauth"
	"github.com/m04kA/SMC-SurfShopService/pkg/logger"
	"github.com/m04kA/SMC-SurfShopService/pkg/metrics"
	"github.com/m04kA/SMC-SurfShopService/pkg/password"
	"github.com/m04kA/SMC-SurfShopService/pkg/txmanager"
)

func serveCmd(configPath *string) *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			defer log.Close()

			if err := cfg.ValidateServe(); err != nil {
				return err
			}
			return serve(cmd.Context(), cfg, log, migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply pending migrations before start")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config, log *logger.Logger, migrate bool) error {
	log.Info("Starting SMC-SurfShopService...")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})
	defer close(stopMetricsCh)

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := openDB(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if migrate {
		if _, err := migrations.Apply(ctx, db, log); err != nil {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
	}

	// Обёртка собирает метрики запросов; без коллектора работает как прокси
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil, cfg.Metrics.ServiceName)
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	rentalRepository := rentalRepo.NewRepository(wrappedDB)
	surfboardRepository := surfboardRepo.NewRepository(wrappedDB)
	productRepository := productRepo.NewRepository(wrappedDB)
	orderRepository := orderRepo.NewRepository(wrappedDB)
	galleryRepository := galleryRepo.NewRepository(wrappedDB)
	settingsRepository := settingsRepo.NewRepository(wrappedDB)
	subscriptionRepository := subscriptionRepo.NewRepository(wrappedDB)
	userRepository := userRepo.NewRepository(wrappedDB)

	// Кэш погоды и новостей
	var responseCache conditionsService.Cache = cache.Nop{}
	if cfg.Redis.Enabled {
		client, err := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Warn("Redis unavailable, caching disabled: %v", err)
		} else {
			defer client.Close()
			responseCache = cache.NewRedis(client, seconds(cfg.Redis.TTL))
			log.Info("Redis cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTL)
		}
	}

	// Инициализируем интеграционных клиентов
	weatherClient := openweather.NewClient(cfg.Weather.BaseURL, cfg.Weather.APIKey,
		cfg.Weather.Lat, cfg.Weather.Lon, cfg.Weather.Lang, seconds(cfg.Weather.Timeout))
	tidesClient := tides.NewClient(cfg.Tides.URL, seconds(cfg.Tides.Timeout))
	newsClient := news.NewClient(cfg.News.FeedURL, seconds(cfg.News.Timeout))

	var gateway ordersService.PaymentGateway
	if cfg.Payments.Enabled() {
		gateway = stripe.NewClient(cfg.Payments.BaseURL, cfg.Payments.StripeAPIKey, seconds(cfg.Payments.Timeout))
		log.Info("Card payments enabled (currency=%s)", cfg.Payments.Currency)
	} else {
		log.Warn("Stripe API key is not set, card payments disabled")
	}
	if cfg.Weather.APIKey == "" {
		log.Warn("OpenWeather API key is not set, weather falls back to estimates")
	}

	fileStore, err := uploads.NewStore(cfg.Uploads.Dir, cfg.Uploads.MaxSizeBytes(), cfg.Server.PublicURL)
	if err != nil {
		return fmt.Errorf("failed to prepare uploads dir: %w", err)
	}

	tokenService := jwtauth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL())
	shop := receipt.Shop{Name: cfg.Shop.Name, Location: cfg.Shop.Address, Timezone: cfg.Shop.Location()}

	// Инициализируем сервисы
	authSvc := authService.NewService(userRepository, password.NewBcryptHasher(0), tokenService, log)
	rentalsSvc := rentalsService.NewService(rentalRepository, metricsCollector, shop, log)
	surfboardsSvc := surfboardsService.NewService(surfboardRepository, txMgr, log)
	productsSvc := productsService.NewService(productRepository, log)
	gallerySvc := galleryService.NewService(galleryRepository, log)
	settingsSvc := settingsService.NewService(settingsRepository, txMgr, log)
	pushSvc := pushService.NewService(subscriptionRepository, log)
	conditionsSvc := conditionsService.NewService(weatherClient, tidesClient, newsClient, responseCache, conditionsService.Options{
		Location:     cfg.Shop.Location(),
		TideLocation: cfg.Tides.Location,
		NewsLimit:    cfg.News.Limit,
	}, log)
	ordersSvc := ordersService.NewService(orderRepository, productRepository, gateway, txMgr, ordersService.Options{
		ShopName:      cfg.Shop.Name,
		Currency:      cfg.Payments.Currency,
		PublicURL:     cfg.Server.PublicURL,
		SuccessURL:    cfg.Payments.SuccessURL,
		CancelURL:     cfg.Payments.CancelURL,
		WebhookSecret: cfg.Payments.WebhookSecret,
	}, log)

	// Инициализируем use cases
	startRentalUseCase := startRentalUC.NewUseCase(rentalRepository, surfboardRepository, txMgr, metricsCollector, log)
	updateRentalUseCase := updateRentalUC.NewUseCase(rentalRepository, surfboardRepository, txMgr, metricsCollector, log)
	checkAlertsUseCase := checkAlertsUC.NewUseCase(rentalRepository, txMgr, metricsCollector, log)

	// Инициализируем handlers
	live := rentalsLiveHandler.NewHandler(rentalsSvc, rentalsLiveHandler.Options{
		Tick:           time.Duration(cfg.Live.TickInterval) * time.Millisecond,
		Refresh:        seconds(cfg.Live.RefreshInterval),
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	}, log)
	defer live.Close()

	handlers := &handlerSet{
		surfboards:    surfboardsHandler.NewHandler(surfboardsSvc, log),
		products:      productsHandler.NewHandler(productsSvc, log),
		gallery:       galleryHandler.NewHandler(gallerySvc, log),
		settings:      settingsHandler.NewHandler(settingsSvc, log),
		conditions:    conditionsHandler.NewHandler(conditionsSvc, log),
		login:         loginHandler.NewHandler(authSvc, log),
		setupOperator: setupOperatorHandler.NewHandler(authSvc, log),
		checkout:      checkoutHandler.NewHandler(ordersSvc, log),
		paymentStatus: getPaymentStatusHandler.NewHandler(ordersSvc, log),
		stripeWebhook: stripeWebhookHandler.NewHandler(ordersSvc, log),
		push:          pushHandler.NewHandler(pushSvc, log),
		upload:        uploadFileHandler.NewHandler(fileStore, log),
		startRental:   startRentalHandler.NewHandler(startRentalUseCase, log),
		updateRental:  updateRentalHandler.NewHandler(updateRentalUseCase, log),
		activeRentals: getActiveRentalsHandler.NewHandler(rentalsSvc, log),
		rental:        getRentalHandler.NewHandler(rentalsSvc, log),
		history:       getRentalHistoryHandler.NewHandler(rentalsSvc, log),
		receipt:       getRentalReceiptHandler.NewHandler(rentalsSvc, log),
		checkAlerts:   checkAlertsHandler.NewHandler(checkAlertsUseCase, log),
		live:          live,
	}

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	r.PathPrefix(uploads.URLPrefix).Handler(
		http.StripPrefix(uploads.URLPrefix, http.FileServer(http.Dir(cfg.Uploads.Dir))),
	).Methods(http.MethodGet)

	registerAPI(r, handlers, middleware.Auth(tokenService))

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      middleware.CORS(cfg.CORS.AllowedOrigins)(r), // preflight OPTIONS не доходит до маршрутов mux
		ReadTimeout:  seconds(cfg.Server.ReadTimeout),
		WriteTimeout: seconds(cfg.Server.WriteTimeout),
		IdleTimeout:  seconds(cfg.Server.IdleTimeout),
	}

	// Graceful shutdown
	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed to start: %w", err)
	case <-quit:
	}

	log.Info("Shutting down server...")

	// Websocket соединения не участвуют в Shutdown, закрываем ленты явно
	live.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), seconds(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
