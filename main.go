package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/wtcounter/cliparse"
	"github.com/danielhkuo/wtcounter/db"
	"github.com/danielhkuo/wtcounter/reporter"
	"github.com/danielhkuo/wtcounter/router"
)

func main() {
	var err error

	// A missing .env is fine; real deployments use the environment
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if cliparse.IsHelp(err) {
		fmt.Println(err)
		os.Exit(0)
	}
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	// Connect and verify
	conn, err := db.Connect(cfg.DriverName(), cfg.DataSourceName(), cfg.MaxOpenConns)
	if err != nil {
		slog.Error("database connection failed", "error", err, "type", cfg.DatabaseType)
		os.Exit(1)
	}
	defer conn.Close()

	// Create schema (tables)
	if err := db.NewMigrationRunner(conn).Run(context.Background()); err != nil {
		slog.Error("schema migration failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	store := db.NewStore(conn)

	if cfg.ReportInterval > 0 {
		rep, err := reporter.New(store, cfg.ReportInterval, cfg.QueryTimeout)
		if err != nil {
			slog.Error("reporter setup failed", "error", err)
			os.Exit(1)
		}
		rep.Start()
		defer rep.Stop()
		slog.Info("Reporting recent visits", "interval", cfg.ReportInterval)
	}

	// Create server
	server := http.Server{
		Handler:           router.NewRouter(store, cfg),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.QueryTimeout + 5*time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Shutdown failed", "error", err)
		}
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
