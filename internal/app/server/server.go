package server

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"motorph/internal/domain/attendance"
	"motorph/internal/domain/auth"
	"motorph/internal/domain/employee"
	"motorph/internal/domain/payroll"
	"motorph/internal/platform/config"
	cryptoutil "motorph/internal/platform/crypto"
	"motorph/internal/platform/db"
	"motorph/internal/platform/jobs"
	"motorph/internal/platform/logger"
	"motorph/internal/platform/metrics"
	"motorph/internal/platform/record"
	"motorph/internal/transport/http/api"
	authhandler "motorph/internal/transport/http/handlers/auth"
	employeehandler "motorph/internal/transport/http/handlers/employees"
	payrollhandler "motorph/internal/transport/http/handlers/payroll"
	"motorph/internal/transport/http/middleware"
)

type App struct {
	Config    config.Config
	Logger    *zap.Logger
	Router    http.Handler
	Scheduler *jobs.Scheduler
	Employees *employee.Service

	pool *pgxpool.Pool
}

// New wires the catalog, ledger, engine and HTTP surface from cfg. The catalog
// starts from the employees table when it holds data, else from the master
// file. A catalog that fails to load leaves the service running with no employees.
func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.JWTSecret == "" {
		secret, err := randomSecret()
		if err != nil {
			return nil, err
		}
		cfg.JWTSecret = secret
		log.Warn("JWT_SECRET not set; using an ephemeral secret")
	}

	app := &App{Config: cfg, Logger: log}

	var saver employee.Saver = employee.NopSaver{}
	if cfg.DatabaseURL != "" {
		pool, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("db connect: %w", err)
		}
		if cfg.RunMigrations {
			if err := db.Migrate(ctx, pool); err != nil {
				pool.Close()
				return nil, fmt.Errorf("migrate: %w", err)
			}
		}
		app.pool = pool
		saver = employee.NewPostgresSaver(pool)
	}

	crypto, err := cryptoutil.New(cfg.DataEncryptionKey)
	if err != nil {
		app.Close()
		return nil, err
	}

	catalog := employee.NewCatalog(record.FileSource(cfg.EmployeeFile), saver, logger.Named(log, "catalog"))
	app.Employees = employee.NewService(catalog, logger.Named(log, "employees"))
	if err := app.Employees.Reload(ctx); err != nil {
		log.Error("employee catalog unavailable", zap.String("file", cfg.EmployeeFile), zap.Error(err))
	}

	ledger := attendance.NewLedger(record.FileSource(cfg.AttendanceFile), logger.Named(log, "attendance"))
	engine := payroll.NewEngine(ledger, logger.Named(log, "payroll"))
	pdf := payroll.NewPDFRenderer(cfg.PayslipDir, crypto)

	var coreMu sync.Mutex
	app.Scheduler = jobs.NewScheduler(cfg.ReloadSchedule, &coreMu, app.Employees, logger.Named(log, "jobs"))

	collector := metrics.New()
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger.Named(log, "http"), collector))
	router.Use(middleware.Recoverer(log))
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Serialize(&coreMu))

		authSvc := auth.NewService(app.Employees, logger.Named(log, "auth"))
		authhandler.NewHandler(authSvc, app.Employees, cfg.JWTSecret, cfg.TokenTTL, log).RegisterRoutes(r)
		employeehandler.NewHandler(app.Employees, log).RegisterRoutes(r)
		payrollhandler.NewHandler(app.Employees, engine, pdf, log).RegisterRoutes(r)
	})

	app.Router = router
	return app, nil
}

func (a *App) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
}

// Run loads configuration from the environment and serves until SIGINT or SIGTERM.
func Run() error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	zap.ReplaceGlobals(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := New(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.Scheduler.Start(); err != nil {
		return fmt.Errorf("start scheduler: %w", err)
	}
	defer app.Scheduler.Stop()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info("payroll server listening", zap.String("addr", cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func randomSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
