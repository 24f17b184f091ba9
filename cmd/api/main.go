package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/mwaldrip/ledgerboard/internal/auth"
	authStore "github.com/mwaldrip/ledgerboard/internal/auth/store"
	"github.com/mwaldrip/ledgerboard/internal/config"
	"github.com/mwaldrip/ledgerboard/internal/customer"
	customerStore "github.com/mwaldrip/ledgerboard/internal/customer/store"
	"github.com/mwaldrip/ledgerboard/internal/database"
	ledgerHttp "github.com/mwaldrip/ledgerboard/internal/http"
	authHandler "github.com/mwaldrip/ledgerboard/internal/http/auth"
	customerHandler "github.com/mwaldrip/ledgerboard/internal/http/customer"
	dashboardHandler "github.com/mwaldrip/ledgerboard/internal/http/dashboard"
	invoiceHandler "github.com/mwaldrip/ledgerboard/internal/http/invoice"
	"github.com/mwaldrip/ledgerboard/internal/invoice"
	invoiceStore "github.com/mwaldrip/ledgerboard/internal/invoice/store"
	"github.com/mwaldrip/ledgerboard/internal/viewcache"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	cache := viewcache.New()
	sessions := auth.NewSessions(cfg.Session.Secret, cfg.Session.TTL)

	var (
		invoiceService  = invoice.NewService(invoiceStore.New(db))
		customerService = customer.NewService(customerStore.New(db))
		authService     = auth.NewService(authStore.New(db))
		invoiceActions  = invoice.NewActions(invoiceService, cache)
	)

	var (
		authH      = authHandler.NewHandler(authService, sessions)
		dashboardH = dashboardHandler.NewHandler(invoiceService)
		invoicesH  = invoiceHandler.NewHandler(invoiceService, invoiceActions, cache)
		customersH = customerHandler.NewHandler(customerService)
	)

	router := ledgerHttp.New(sessions, cfg.CORS.Origin, authH, dashboardH, invoicesH, customersH)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "port", server.Addr)

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
