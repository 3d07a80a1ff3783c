package main

import (
	"net/http"

	"github.com/gorilla/mux"

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
)

// handlerSet все HTTP обработчики API
type handlerSet struct {
	surfboards    *surfboardsHandler.Handler
	products      *productsHandler.Handler
	gallery       *galleryHandler.Handler
	settings      *settingsHandler.Handler
	conditions    *conditionsHandler.Handler
	login         *loginHandler.Handler
	setupOperator *setupOperatorHandler.Handler
	checkout      *checkoutHandler.Handler
	paymentStatus *getPaymentStatusHandler.Handler
	stripeWebhook *stripeWebhookHandler.Handler
	push          *pushHandler.Handler
	upload        *uploadFileHandler.Handler

	startRental   *startRentalHandler.Handler
	updateRental  *updateRentalHandler.Handler
	activeRentals *getActiveRentalsHandler.Handler
	rental        *getRentalHandler.Handler
	history       *getRentalHistoryHandler.Handler
	receipt       *getRentalReceiptHandler.Handler
	checkAlerts   *checkAlertsHandler.Handler
	live          *rentalsLiveHandler.Handler
}

// registerAPI монтирует /api/v1. Литеральные пути аренд регистрируются раньше /rentals/{id}.
func registerAPI(r *mux.Router, h *handlerSet, auth mux.MiddlewareFunc) {
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// --- Каталог и витрина ---
	api.HandleFunc("/surfboards", h.surfboards.List).Methods(http.MethodGet)
	api.HandleFunc("/products", h.products.List).Methods(http.MethodGet)
	api.HandleFunc("/gallery", h.gallery.List).Methods(http.MethodGet)
	api.HandleFunc("/settings", h.settings.Get).Methods(http.MethodGet)

	// --- Условия на пляже ---
	api.HandleFunc("/weather", h.conditions.Weather).Methods(http.MethodGet)
	api.HandleFunc("/waves", h.conditions.Waves).Methods(http.MethodGet)
	api.HandleFunc("/tides", h.conditions.Tides).Methods(http.MethodGet)
	api.HandleFunc("/news", h.conditions.News).Methods(http.MethodGet)

	// --- Оператор ---
	api.HandleFunc("/auth/login", h.login.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/setup", h.setupOperator.Handle).Methods(http.MethodPost)

	// --- Заказы и оплата ---
	api.HandleFunc("/payments/checkout", h.checkout.Handle).Methods(http.MethodPost)
	api.HandleFunc("/payments/status/{sessionId}", h.paymentStatus.Handle).Methods(http.MethodGet)
	api.HandleFunc("/webhook/stripe", h.stripeWebhook.Handle).Methods(http.MethodPost)

	api.HandleFunc("/push/subscribe", h.push.Subscribe).Methods(http.MethodPost)

	// --- Аренды (чтение) ---
	api.HandleFunc("/rentals/active", h.activeRentals.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rentals/check-alerts", h.checkAlerts.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rentals/live", h.live.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен оператора)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(auth)

	protected.HandleFunc("/surfboards", h.surfboards.Create).Methods(http.MethodPost)
	protected.HandleFunc("/surfboards/{id}", h.surfboards.Update).Methods(http.MethodPut)
	protected.HandleFunc("/surfboards/{id}", h.surfboards.Delete).Methods(http.MethodDelete)

	protected.HandleFunc("/products", h.products.Create).Methods(http.MethodPost)
	protected.HandleFunc("/products/{id}", h.products.Update).Methods(http.MethodPut)
	protected.HandleFunc("/products/{id}", h.products.Delete).Methods(http.MethodDelete)

	protected.HandleFunc("/gallery", h.gallery.Create).Methods(http.MethodPost)
	protected.HandleFunc("/gallery/{id}", h.gallery.Update).Methods(http.MethodPut)
	protected.HandleFunc("/gallery/{id}", h.gallery.Delete).Methods(http.MethodDelete)

	protected.HandleFunc("/settings", h.settings.Update).Methods(http.MethodPut)
	protected.HandleFunc("/upload", h.upload.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/push/subscriptions", h.push.List).Methods(http.MethodGet)

	protected.HandleFunc("/rentals/start", h.startRental.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/rentals/history", h.history.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/rentals/{id}", h.updateRental.Handle).Methods(http.MethodPut)

	// /rentals/{id} в самом конце, после всех литеральных путей
	api.HandleFunc("/rentals/{id}/receipt", h.receipt.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id}", h.rental.Handle).Methods(http.MethodGet)
}
