package main

import (
	"database/sql"
	"net/http"
	"time"

	"backoffice/internal/access"
	"backoffice/internal/auth"
	"backoffice/internal/config"
	"backoffice/internal/db"
	"backoffice/internal/flash"
	"backoffice/internal/handler"
	"backoffice/internal/logger"
	"backoffice/internal/metrics"
	"backoffice/internal/middleware"
	"backoffice/internal/order"
	"backoffice/internal/payment"
	"backoffice/internal/payout"
	"backoffice/internal/persona"
	"backoffice/internal/project"
	"backoffice/internal/task"
	"backoffice/internal/user"
	"backoffice/internal/view"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

var (
	initDBFunc      = db.InitDB
	startServerFunc = func(addr string, h http.Handler) error {
		srv := &http.Server{
			Addr:              addr,
			Handler:           h,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      60 * time.Second,
		}
		return srv.ListenAndServe()
	}
)

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}

func run() error {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := initDBFunc(cfg)
	defer database.Close()

	router, err := newServer(cfg, database)
	if err != nil {
		return err
	}

	logger.L().Info("back office listening", zap.String("port", cfg.AppPort), zap.String("env", cfg.AppEnv))
	return startServerFunc(":"+cfg.AppPort, router)
}

// newServer wires repositories, services and the HTTP stack over database.
func newServer(cfg *config.Config, database *sql.DB) (http.Handler, error) {
	secure := cfg.AppEnv == "production"

	accessSvc := access.NewService(access.NewRepository(database))
	services := handler.Services{
		Orders:   order.NewService(order.NewRepository(database), payment.NewRepository(database)),
		Payments: payment.NewService(payment.NewRepository(database)),
		Payouts:  payout.NewService(payout.NewRepository(database)),
		Access:   accessSvc,
		Users:    user.NewService(user.NewRepository(database)),
		Projects: project.NewService(project.NewRepository(database)),
		Tasks:    task.NewService(task.NewRepository(database)),
		Personas: persona.NewService(persona.NewRepository(database)),
	}

	renderer, err := view.New(accessSvc, cfg.AppDebug)
	if err != nil {
		return nil, err
	}

	h := handler.New(
		services,
		auth.NewSessions(cfg.SessionSecret, cfg.SessionTTL, secure),
		flash.NewCodec(cfg.SessionSecret, secure),
		renderer,
	)
	app := h.Routes(middleware.NewCSRF(cfg.CSRFSecret, secure, renderer.Forbidden), middleware.NewLimiter())

	r := chi.NewRouter()
	r.Get("/health", health(database))
	r.Get("/metrics", metrics.Handler)
	r.Mount("/", app)
	return r, nil
}

func health(database *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := database.PingContext(r.Context()); err != nil {
			logger.FromCtx(r.Context()).Error("health check failed", zap.Error(err))
			http.Error(w, "DB UNAVAILABLE", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}
}
