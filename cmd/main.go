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
	_ "time/tzdata"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelAppointmentHandler "github.com/m04kA/coaching-scheduler/internal/api/handlers/cancel_appointment"
	completeAppointmentHandler "github.com/m04kA/coaching-scheduler/internal/api/handlers/complete_appointment"
	createBookingHandler "github.com/m04kA/coaching-scheduler/internal/api/handlers/create_booking"
	createServiceTypeHandler "github.com/m04kA/coaching-scheduler/internal/api/handlers/create_service_type"
	getAppointmentHandler "github.com/m04kA/coaching-scheduler/internal/api/handlers/get_appointment"
	getAssessmentHandler "github.com/m04kA/coaching-scheduler/internal/api/handlers/get_assessment"
	getScoreHandler "github.com/m04kA/coaching-scheduler/internal/api/handlers/get_score"
	getServiceTypeHandler "github.com/m04kA/coaching-scheduler/internal/api/handlers/get_service_type"
	getUserAppointmentsHandler "github.com/m04kA/coaching-scheduler/internal/api/handlers/get_user_appointments"
	getUserScoresHandler "github.com/m04kA/coaching-scheduler/internal/api/handlers/get_user_scores"
	getWeekAvailabilityHandler "github.com/m04kA/coaching-scheduler/internal/api/handlers/get_week_availability"
	listAppointmentsHandler "github.com/m04kA/coaching-scheduler/internal/api/handlers/list_appointments"
	listClientsHandler "github.com/m04kA/coaching-scheduler/internal/api/handlers/list_clients"
	listContactMessagesHandler "github.com/m04kA/coaching-scheduler/internal/api/handlers/list_contact_messages"
	listServiceTypesHandler "github.com/m04kA/coaching-scheduler/internal/api/handlers/list_service_types"
	markContactMessageReadHandler "github.com/m04kA/coaching-scheduler/internal/api/handlers/mark_contact_message_read"
	rescheduleAppointmentHandler "github.com/m04kA/coaching-scheduler/internal/api/handlers/reschedule_appointment"
	setMeetingLinkHandler "github.com/m04kA/coaching-scheduler/internal/api/handlers/set_meeting_link"
	setServiceTypeActiveHandler "github.com/m04kA/coaching-scheduler/internal/api/handlers/set_service_type_active"
	submitAssessmentHandler "github.com/m04kA/coaching-scheduler/internal/api/handlers/submit_assessment"
	submitContactMessageHandler "github.com/m04kA/coaching-scheduler/internal/api/handlers/submit_contact_message"
	toggleBlockHandler "github.com/m04kA/coaching-scheduler/internal/api/handlers/toggle_block"
	updateServiceTypeHandler "github.com/m04kA/coaching-scheduler/internal/api/handlers/update_service_type"
	"github.com/m04kA/coaching-scheduler/internal/api/middleware"
	"github.com/m04kA/coaching-scheduler/internal/config"
	appointmentRepo "github.com/m04kA/coaching-scheduler/internal/infra/storage/appointment"
	blockRepo "github.com/m04kA/coaching-scheduler/internal/infra/storage/block"
	contactRepo "github.com/m04kA/coaching-scheduler/internal/infra/storage/contact"
	scoreRepo "github.com/m04kA/coaching-scheduler/internal/infra/storage/score"
	serviceTypeRepo "github.com/m04kA/coaching-scheduler/internal/infra/storage/servicetype"
	profileServiceClient "github.com/m04kA/coaching-scheduler/internal/integrations/profileservice"
	"github.com/m04kA/coaching-scheduler/internal/questionbank"
	"github.com/m04kA/coaching-scheduler/internal/schedule"
	appointmentsService "github.com/m04kA/coaching-scheduler/internal/service/appointments"
	catalogService "github.com/m04kA/coaching-scheduler/internal/service/catalog"
	contactService "github.com/m04kA/coaching-scheduler/internal/service/contact"
	scoresService "github.com/m04kA/coaching-scheduler/internal/service/scores"
	createBookingUC "github.com/m04kA/coaching-scheduler/internal/usecase/create_booking"
	getWeekAvailabilityUC "github.com/m04kA/coaching-scheduler/internal/usecase/get_week_availability"
	rescheduleBookingUC "github.com/m04kA/coaching-scheduler/internal/usecase/reschedule_booking"
	submitAssessmentUC "github.com/m04kA/coaching-scheduler/internal/usecase/submit_assessment"
	toggleBlockUC "github.com/m04kA/coaching-scheduler/internal/usecase/toggle_block"
	"github.com/m04kA/coaching-scheduler/pkg/dbmetrics"
	"github.com/m04kA/coaching-scheduler/pkg/logger"
	"github.com/m04kA/coaching-scheduler/pkg/metrics"
	"github.com/m04kA/coaching-scheduler/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.NewWithOptions(cfg.Logs.File, cfg.Logs.Level, logger.Options{
		MaxSizeMB:  cfg.Logs.MaxSizeMB,
		MaxBackups: cfg.Logs.MaxBackups,
		MaxAgeDays: cfg.Logs.MaxAgeDays,
		Compress:   cfg.Logs.Compress,
	})
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting coaching-scheduler...")
	log.Info("Configuration loaded from config.toml")

	// Календарь практики в ее часовом поясе
	calendar, err := schedule.LoadCalendar(cfg.Business.Timezone)
	if err != nil {
		log.Fatal("Failed to load business timezone %q: %v", cfg.Business.Timezone, err)
	}

	// Тесты самооценки встроены в бинарник
	bank, err := questionbank.Load()
	if err != nil {
		log.Fatal("Failed to load question bank: %v", err)
	}
	log.Info("Question bank loaded: %v", bank.Types())

	// Инициализируем метрики (если включены)
	// Интерфейсы остаются nil при выключенных метриках, чтобы не передавать typed nil
	var (
		metricsCollector *metrics.Metrics
		dbRecorder       dbmetrics.Recorder
		bookingMetrics   createBookingUC.Metrics
		scoringMetrics   submitAssessmentUC.Metrics
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		dbRecorder = metricsCollector
		bookingMetrics = metricsCollector
		scoringMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Без recorder обертка просто пропускает запросы
	wrappedDB := dbmetrics.WrapWithDefault(db, dbRecorder, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем интеграционных клиентов
	profileClient := profileServiceClient.NewClient(
		cfg.ProfileService.URL,
		cfg.ProfileService.ProfileTimeout(),
		log,
	)
	log.Info("Integration clients initialized (ProfileService=%s timeout=%ds)",
		cfg.ProfileService.URL, cfg.ProfileService.Timeout)

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	blockRepository := blockRepo.NewRepository(wrappedDB)
	serviceTypeRepository := serviceTypeRepo.NewRepository(wrappedDB)
	scoreRepository := scoreRepo.NewRepository(wrappedDB)
	contactRepository := contactRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, txMgr, calendar, log)
	catalogSvc := catalogService.NewService(serviceTypeRepository, log)
	scoresSvc := scoresService.NewService(scoreRepository, log)
	contactSvc := contactService.NewService(contactRepository, log)

	// Инициализируем use cases
	getWeekAvailabilityUseCase := getWeekAvailabilityUC.NewUseCase(
		appointmentRepository,
		blockRepository,
		calendar,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		appointmentRepository,
		blockRepository,
		serviceTypeRepository,
		profileClient,
		txMgr,
		calendar,
		bookingMetrics,
		log,
	)

	rescheduleBookingUseCase := rescheduleBookingUC.NewUseCase(
		appointmentRepository,
		blockRepository,
		txMgr,
		calendar,
		log,
	)

	toggleBlockUseCase := toggleBlockUC.NewUseCase(
		blockRepository,
		txMgr,
		calendar,
		log,
	)

	submitAssessmentUseCase := submitAssessmentUC.NewUseCase(
		bank,
		scoreRepository,
		scoringMetrics,
		log,
	)

	// Инициализируем handlers
	getWeekAvailability := getWeekAvailabilityHandler.NewHandler(getWeekAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	rescheduleAppointment := rescheduleAppointmentHandler.NewHandler(rescheduleBookingUseCase, log)
	toggleBlock := toggleBlockHandler.NewHandler(toggleBlockUseCase, log)
	getAssessment := getAssessmentHandler.NewHandler(bank, log)
	submitAssessment := submitAssessmentHandler.NewHandler(submitAssessmentUseCase, log)

	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	getUserAppointments := getUserAppointmentsHandler.NewHandler(appointmentsSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	listClients := listClientsHandler.NewHandler(appointmentsSvc, log)
	completeAppointment := completeAppointmentHandler.NewHandler(appointmentsSvc, log)
	setMeetingLink := setMeetingLinkHandler.NewHandler(appointmentsSvc, log)

	listServiceTypes := listServiceTypesHandler.NewHandler(catalogSvc, log)
	getServiceType := getServiceTypeHandler.NewHandler(catalogSvc, log)
	createServiceType := createServiceTypeHandler.NewHandler(catalogSvc, log)
	updateServiceType := updateServiceTypeHandler.NewHandler(catalogSvc, log)
	setServiceTypeActive := setServiceTypeActiveHandler.NewHandler(catalogSvc, log)

	getUserScores := getUserScoresHandler.NewHandler(scoresSvc, log)
	getScore := getScoreHandler.NewHandler(scoresSvc, log)

	submitContactMessage := submitContactMessageHandler.NewHandler(contactSvc, log)
	listContactMessages := listContactMessagesHandler.NewHandler(contactSvc, log)
	markContactMessageRead := markContactMessageReadHandler.NewHandler(contactSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (заголовки идентификации опциональны)
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	public.Use(middleware.OptionalAuth)

	// Сетка слотов на неделю
	public.HandleFunc("/availability", getWeekAvailability.Handle).Methods(http.MethodGet)

	// Каталог услуг (администратор видит и отключенные)
	public.HandleFunc("/service-types", listServiceTypes.Handle).Methods(http.MethodGet)
	public.HandleFunc("/service-types/{serviceTypeId}", getServiceType.Handle).Methods(http.MethodGet)

	// Тесты самооценки, анонимный результат не сохраняется
	public.HandleFunc("/assessments/{testType}", getAssessment.Handle).Methods(http.MethodGet)
	public.HandleFunc("/assessments/{testType}/submissions", submitAssessment.Handle).Methods(http.MethodPost)

	// Форма обратной связи
	public.HandleFunc("/contact", submitContactMessage.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	protected.HandleFunc("/appointments", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/reschedule", rescheduleAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/appointments", getUserAppointments.Handle).Methods(http.MethodGet)

	// --- Результаты тестов ---
	protected.HandleFunc("/users/{userId}/scores", getUserScores.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/scores/{scoreId}", getScore.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (X-User-Role: admin)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth, middleware.AdminOnly)

	// --- Записи и клиенты ---
	admin.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId}/complete", completeAppointment.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/appointments/{appointmentId}/meeting-link", setMeetingLink.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/clients", listClients.Handle).Methods(http.MethodGet)

	// --- Блокировки слотов ---
	admin.HandleFunc("/blocks/toggle", toggleBlock.Handle).Methods(http.MethodPost)

	// --- Каталог услуг ---
	admin.HandleFunc("/service-types", createServiceType.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/service-types/{serviceTypeId}", updateServiceType.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/service-types/{serviceTypeId}/active", setServiceTypeActive.Handle).Methods(http.MethodPut)

	// --- Обратная связь ---
	admin.HandleFunc("/contact-messages", listContactMessages.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/contact-messages/{messageId}/read", markContactMessageRead.Handle).Methods(http.MethodPatch)

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

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
