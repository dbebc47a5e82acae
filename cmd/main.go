package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addCartItemHandler "github.com/gaadimech/GaadiMech-PWA-sub001/internal/api/handlers/add_cart_item"
	applyCouponHandler "github.com/gaadimech/GaadiMech-PWA-sub001/internal/api/handlers/apply_coupon"
	clearCartHandler "github.com/gaadimech/GaadiMech-PWA-sub001/internal/api/handlers/clear_cart"
	clearVehicleHandler "github.com/gaadimech/GaadiMech-PWA-sub001/internal/api/handlers/clear_vehicle"
	createExpressLeadHandler "github.com/gaadimech/GaadiMech-PWA-sub001/internal/api/handlers/create_express_lead"
	createPaymentOrderHandler "github.com/gaadimech/GaadiMech-PWA-sub001/internal/api/handlers/create_payment_order"
	getCartHandler "github.com/gaadimech/GaadiMech-PWA-sub001/internal/api/handlers/get_cart"
	getExpressSlotsHandler "github.com/gaadimech/GaadiMech-PWA-sub001/internal/api/handlers/get_express_slots"
	getFuelTypesHandler "github.com/gaadimech/GaadiMech-PWA-sub001/internal/api/handlers/get_fuel_types"
	getManufacturersHandler "github.com/gaadimech/GaadiMech-PWA-sub001/internal/api/handlers/get_manufacturers"
	getModelsHandler "github.com/gaadimech/GaadiMech-PWA-sub001/internal/api/handlers/get_models"
	getVehicleHandler "github.com/gaadimech/GaadiMech-PWA-sub001/internal/api/handlers/get_vehicle"
	refreshPricingHandler "github.com/gaadimech/GaadiMech-PWA-sub001/internal/api/handlers/refresh_pricing"
	removeCartItemHandler "github.com/gaadimech/GaadiMech-PWA-sub001/internal/api/handlers/remove_cart_item"
	removeCouponHandler "github.com/gaadimech/GaadiMech-PWA-sub001/internal/api/handlers/remove_coupon"
	resolvePricingHandler "github.com/gaadimech/GaadiMech-PWA-sub001/internal/api/handlers/resolve_pricing"
	saveVehicleHandler "github.com/gaadimech/GaadiMech-PWA-sub001/internal/api/handlers/save_vehicle"
	scheduleExpressLeadHandler "github.com/gaadimech/GaadiMech-PWA-sub001/internal/api/handlers/schedule_express_lead"
	updateCartItemHandler "github.com/gaadimech/GaadiMech-PWA-sub001/internal/api/handlers/update_cart_item"
	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/api/middleware"
	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/config"
	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/domain"
	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/infra/pricingsheet"
	"github.com/gaadimech/GaadiMech-PWA-sub001/internal/infra/sessionstore"
	cartRepo "github.com/gaadimech/GaadiMech-PWA-sub001/internal/infra/storage/cart"
	cmsClient "github.com/gaadimech/GaadiMech-PWA-sub001/internal/integrations/cms"
	paymentClient "github.com/gaadimech/GaadiMech-PWA-sub001/internal/integrations/payment"
	cartService "github.com/gaadimech/GaadiMech-PWA-sub001/internal/service/cart"
	pricingService "github.com/gaadimech/GaadiMech-PWA-sub001/internal/service/pricing"
	applyCouponUC "github.com/gaadimech/GaadiMech-PWA-sub001/internal/usecase/apply_coupon"
	checkoutUC "github.com/gaadimech/GaadiMech-PWA-sub001/internal/usecase/checkout"
	createExpressLeadUC "github.com/gaadimech/GaadiMech-PWA-sub001/internal/usecase/create_express_lead"
	getAvailableSlotsUC "github.com/gaadimech/GaadiMech-PWA-sub001/internal/usecase/get_available_slots"
	scheduleExpressLeadUC "github.com/gaadimech/GaadiMech-PWA-sub001/internal/usecase/schedule_express_lead"
	"github.com/gaadimech/GaadiMech-PWA-sub001/pkg/dbmetrics"
	"github.com/gaadimech/GaadiMech-PWA-sub001/pkg/logger"
	"github.com/gaadimech/GaadiMech-PWA-sub001/pkg/metrics"
	"github.com/gaadimech/GaadiMech-PWA-sub001/pkg/simpletxmanager"
	"github.com/gaadimech/GaadiMech-PWA-sub001/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting GaadiMech-PWA pricing and cart service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Сессионное хранилище с фоновой уборкой истекших сессий
	stopSweepCh := make(chan struct{})
	sessions := sessionstore.New(
		time.Duration(cfg.Session.TTLMinutes)*time.Minute,
		time.Duration(cfg.Session.SweepIntervalMinutes)*time.Minute,
		log,
		stopSweepCh,
	)
	log.Info("Session store initialized (ttl=%dm, sweep=%dm)", cfg.Session.TTLMinutes, cfg.Session.SweepIntervalMinutes)

	// База данных опциональна: без нее корзина живет только в сессиях,
	// снапшоты не пишутся
	var (
		db             *sql.DB
		cartRepository *cartRepo.Repository
		txMgr          cartService.TransactionManager
	)

	if cfg.Database.Enabled {
		db, err = sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		if cfg.Metrics.Enabled {
			wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
			cartRepository = cartRepo.NewRepository(wrappedDB)
			txMgr = txmanager.NewTransactionManager(wrappedDB)
			log.Info("Database metrics collection started")
		} else {
			cartRepository = cartRepo.NewRepository(db)
			txMgr = simpletxmanager.NewTransactionManager(db)
		}
	} else {
		log.Warn("Database disabled, cart snapshots will not be persisted")
	}

	// Загрузчик прайс-листа и сервис цен
	sheetLoader := pricingsheet.NewLoader(
		cfg.Pricing.SheetURL,
		time.Duration(cfg.Pricing.Timeout)*time.Second,
		log,
	)
	pricingSvc := pricingService.NewService(sheetLoader, log)

	// Первичная загрузка прайс-листа. Сервис стартует и с пустым
	// прайс-листом, резолв вернет отсутствие цены
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), time.Duration(cfg.Pricing.Timeout+5)*time.Second)
	rows := pricingSvc.Refresh(loadCtx)
	cancelLoad()
	log.Info("Pricing sheet loaded: %d rows", rows)

	// Интеграционные клиенты
	cms := cmsClient.NewClient(
		cfg.CMS.URL,
		cfg.CMS.Token,
		time.Duration(cfg.CMS.Timeout)*time.Second,
		log,
	)
	payments := paymentClient.NewClient(
		cfg.Payment.URL,
		cfg.Payment.KeyID,
		cfg.Payment.KeySecret,
		cfg.Payment.Currency,
		time.Duration(cfg.Payment.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (CMS=%s, Payment=%s)", cfg.CMS.URL, cfg.Payment.URL)

	// Сервис корзины
	var cartSvc *cartService.Service
	if cartRepository != nil {
		cartSvc = cartService.NewService(sessions, cartRepository, txMgr, log)
	} else {
		cartSvc = cartService.NewService(sessions, nil, nil, log)
	}

	// Слушатель мутаций корзины для аудита
	cartSvc.AddListener(func(sessionID string, summary domain.CartSummary) {
		log.Info("Cart changed: session=%s, services=%d, total=%.2f", sessionID, summary.ServiceCount, summary.Total)
	})

	// Инициализируем use cases
	createLeadUseCase := createExpressLeadUC.NewUseCase(pricingSvc, sessions, cms, log)
	scheduleLeadUseCase := scheduleExpressLeadUC.NewUseCase(pricingSvc, sessions, cms, log)
	getSlotsUseCase := getAvailableSlotsUC.NewUseCase(log)
	applyCouponUseCase := applyCouponUC.NewUseCase(sessions, cms, log)
	checkoutUseCase := checkoutUC.NewUseCase(cartSvc, payments, cfg.Checkout.WhatsAppNumber, log)

	// Инициализируем handlers
	getManufacturers := getManufacturersHandler.NewHandler(pricingSvc, log)
	getModels := getModelsHandler.NewHandler(pricingSvc, log)
	getFuelTypes := getFuelTypesHandler.NewHandler(pricingSvc, log)
	resolvePricing := resolvePricingHandler.NewHandler(pricingSvc, log)
	refreshPricing := refreshPricingHandler.NewHandler(pricingSvc, log)
	saveVehicle := saveVehicleHandler.NewHandler(sessions, log)
	getVehicle := getVehicleHandler.NewHandler(sessions, log)
	clearVehicle := clearVehicleHandler.NewHandler(sessions, log)
	addCartItem := addCartItemHandler.NewHandler(cartSvc, log)
	updateCartItem := updateCartItemHandler.NewHandler(cartSvc, log)
	removeCartItem := removeCartItemHandler.NewHandler(cartSvc, log)
	getCart := getCartHandler.NewHandler(cartSvc, log)
	clearCart := clearCartHandler.NewHandler(cartSvc, log)
	applyCoupon := applyCouponHandler.NewHandler(applyCouponUseCase, log)
	removeCoupon := removeCouponHandler.NewHandler(applyCouponUseCase, log)
	getExpressSlots := getExpressSlotsHandler.NewHandler(getSlotsUseCase, log)
	createExpressLead := createExpressLeadHandler.NewHandler(createLeadUseCase, log)
	scheduleExpressLead := scheduleExpressLeadHandler.NewHandler(scheduleLeadUseCase, log)
	createPaymentOrder := createPaymentOrderHandler.NewHandler(checkoutUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix; все маршруты привязаны к сессии через X-Session-ID
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Session(sessions))

	// --- Прайс-лист ---
	api.HandleFunc("/pricing/manufacturers", getManufacturers.Handle).Methods(http.MethodGet)
	api.HandleFunc("/pricing/manufacturers/{manufacturer}/models", getModels.Handle).Methods(http.MethodGet)
	api.HandleFunc("/pricing/fuel-types", getFuelTypes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/pricing/resolve", resolvePricing.Handle).Methods(http.MethodGet)
	api.HandleFunc("/pricing/refresh", refreshPricing.Handle).Methods(http.MethodPost)

	// --- Выбранный автомобиль ---
	api.HandleFunc("/session/vehicle", saveVehicle.Handle).Methods(http.MethodPut)
	api.HandleFunc("/session/vehicle", getVehicle.Handle).Methods(http.MethodGet)
	api.HandleFunc("/session/vehicle", clearVehicle.Handle).Methods(http.MethodDelete)

	// --- Корзина doorstep-услуг ---
	api.HandleFunc("/cart/items", addCartItem.Handle).Methods(http.MethodPost)
	api.HandleFunc("/cart/items/{serviceId}", updateCartItem.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/cart/items/{serviceId}", removeCartItem.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/cart", getCart.Handle).Methods(http.MethodGet)
	api.HandleFunc("/cart", clearCart.Handle).Methods(http.MethodDelete)

	// --- Купоны ---
	api.HandleFunc("/coupons/apply", applyCoupon.Handle).Methods(http.MethodPost)
	api.HandleFunc("/coupons/pending", removeCoupon.Handle).Methods(http.MethodDelete)

	// --- Экспресс-сервис ---
	api.HandleFunc("/express/slots", getExpressSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/express/leads", createExpressLead.Handle).Methods(http.MethodPost)
	api.HandleFunc("/express/leads/schedule", scheduleExpressLead.Handle).Methods(http.MethodPatch)

	// --- Оплата корзины ---
	api.HandleFunc("/checkout/payment-order", createPaymentOrder.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	close(stopSweepCh)
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped")
}
