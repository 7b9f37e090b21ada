package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"MineRappa/internal/auth"
	"MineRappa/internal/calc/premium/autodesign"
	"MineRappa/internal/calc/premium/batch"
	"MineRappa/internal/calc/premium/importer"
	"MineRappa/internal/calc/premium/recommend"
	"MineRappa/internal/calc/rap"
	"MineRappa/internal/calc/report"
	"MineRappa/internal/config"
	"MineRappa/internal/designs"
	"MineRappa/internal/logger"
	"MineRappa/internal/repo"
	"MineRappa/internal/units"
)

// MaxUploadSize bounds workbook uploads.
const MaxUploadSize = 10 << 20

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func limitBody(n int64) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, n)
			next.ServeHTTP(w, r)
		})
	}
}

// HandleList registers every route on mux.
func HandleList(mux *mux.Router, cfg config.Config, store *repo.PostgresRepository) {
	reg := units.NewRegistry()

	authEnv := &auth.Authenv{JWTkey: []byte(cfg.TokenKey), Repo: store, Log: logger.ForComponent("auth"), Secure: cfg.TLS()}
	limiter := auth.NewIPRateLimiter(5, 10)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	rapH := rap.NewHandler(reg, logger.ForComponent("rap"))

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")
	api.HandleFunc("/formulas", rapH.Formulas).Methods("GET")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	batchH := &batch.Handler{Units: reg, Log: logger.ForComponent("batch")}
	importH := &importer.Handler{Units: reg, Log: logger.ForComponent("importer")}
	autoH := &autodesign.Handler{Units: reg, Log: logger.ForComponent("autodesign")}
	recommendH := &recommend.Handler{}
	reportH := &report.Handler{Units: reg, Log: logger.ForComponent("report")}
	designsH := &designs.Handler{Repo: store, Units: reg, Log: logger.ForComponent("designs")}

	secureApi.HandleFunc("/rap/calc", rapH.Calc).Methods("POST")
	secureApi.HandleFunc("/rap/solve", rapH.Solve).Methods("POST")
	secureApi.HandleFunc("/rap/auto", autoH.Pillar).Methods("POST")
	secureApi.HandleFunc("/rap/batch", batchH.Designs).Methods("POST")
	secureApi.HandleFunc("/rap/recommend", recommendH.Formula).Methods("POST")
	secureApi.HandleFunc("/rap/report/pdf", reportH.Generate).Methods("POST")
	secureApi.Handle("/rap/import", limitBody(MaxUploadSize)(http.HandlerFunc(importH.Designs))).Methods("POST")

	secureApi.HandleFunc("/designs", designsH.Save).Methods("POST")
	secureApi.HandleFunc("/designs", designsH.List).Methods("GET")
	secureApi.HandleFunc("/designs/{id}", designsH.Get).Methods("GET")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration", "error", err)
		os.Exit(1)
	}
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		slog.Error("configuration", "error", err)
		os.Exit(1)
	}
	log := logger.Init(logger.Config{Level: level, Format: cfg.LogFormat, Output: os.Stderr})

	db, err := repo.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("database unavailable", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	store := repo.NewPostgres(db)
	if err := store.Migrate(ctx); err != nil {
		log.Error("database migration", "error", err)
		os.Exit(1)
	}

	mux := mux.NewRouter()
	HandleList(mux, cfg, store)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           CORS(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("starting server", "addr", cfg.Addr, "tls", cfg.TLS())
		if cfg.TLS() {
			errc <- server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			errc <- server.ListenAndServe()
		}
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
		return
	case <-ctx.Done():
	}
	log.Info("shutdown signal received, closing active connections")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
