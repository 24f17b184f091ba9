package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/mwaldrip/ledgerboard/internal/auth"
	authHandler "github.com/mwaldrip/ledgerboard/internal/http/auth"
	customerHandler "github.com/mwaldrip/ledgerboard/internal/http/customer"
	dashboardHandler "github.com/mwaldrip/ledgerboard/internal/http/dashboard"
	invoiceHandler "github.com/mwaldrip/ledgerboard/internal/http/invoice"
)

func New(
	sessions *auth.Sessions,
	corsOrigin string,
	authV1 *authHandler.Handler,
	dashboardV1 *dashboardHandler.Handler,
	invoicesV1 *invoiceHandler.Handler,
	customersV1 *customerHandler.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{corsOrigin},
		AllowedMethods:   []string{"GET", "POST"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))
	router.Use(AuthGate(sessions))

	authV1.Routes(router)

	router.Route("/dashboard", func(r chi.Router) {
		dashboardV1.Routes(r)

		r.Route("/invoices", invoicesV1.Routes)
		r.Route("/customers", customersV1.Routes)
	})

	return router
}
