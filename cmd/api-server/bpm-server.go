package main

import (
	"context"
	"flag"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"bpmapi/db"
	"bpmapi/db/migrations"
	"bpmapi/internal/config"
	"bpmapi/internal/handlers"
	"bpmapi/internal/logging"
	"bpmapi/internal/metrics"
)

func main() {
	configPath := flag.String("config", "config/example.yaml", "путь к файлу конфигурации")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	log := logging.New(cfg.App.Env)
	defer log.Sync()

	var store handlers.StorageInterface
	switch cfg.Storage.Backend {
	case "postgres":
		if err := migrations.Run(cfg.Postgres.DSN); err != nil {
			log.Fatal("migrations failed", zap.Error(err))
		}
		log.Info("migrations applied")

		dbConn, err := sqlx.Connect("postgres", cfg.Postgres.DSN)
		if err != nil {
			log.Fatal("cannot connect to db", zap.Error(err))
		}
		defer dbConn.Close()
		store = db.NewStorage(dbConn)
		log.Info("using postgres storage")
	default:
		store = db.NewMemoryStorage()
		log.Info("using in-memory storage with demo fixtures")
	}

	h := handlers.NewHandler(store, log)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	// Ограничение времени запроса живёт на транспортной границе
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(metrics.Middleware)

	r.Route("/api", func(r chi.Router) {
		r.Get("/ping", h.PingHandler)
		// активы
		r.Get("/assets", h.GetAssetsByEmployeeHandler)
		r.Get("/assets/types", h.GetAssetTypesHandler)
		// расходы сотрудников
		r.Get("/employees/expenses", h.GetEmployeeExpensesHandler)
		r.Post("/employees/expenses", h.SubmitEmployeeExpenseHandler)
		// закупки
		r.Post("/purchases/requests", h.CreatePurchaseRequestHandler)
		// командировки
		r.Get("/travels/requests/{id}", h.GetTravelRequestHandler)
		r.Post("/travels/expenses", h.SubmitTravelExpenseHandler)
		// здоровье
		r.Get("/health", h.HealthHandler)
	})

	if cfg.Metrics.Enabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("starting server", zap.String("addr", cfg.HTTP.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info("graceful shutdown complete")
}
