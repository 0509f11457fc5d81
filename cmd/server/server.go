// cmd/server/server.go
package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tanmaydb/courtdesk/internal/api"
	"github.com/tanmaydb/courtdesk/internal/api/auth"
	"github.com/tanmaydb/courtdesk/internal/api/bookings"
	"github.com/tanmaydb/courtdesk/internal/api/events"
	"github.com/tanmaydb/courtdesk/internal/api/members"
	"github.com/tanmaydb/courtdesk/internal/api/registrations"
	"github.com/tanmaydb/courtdesk/internal/availability"
	"github.com/tanmaydb/courtdesk/internal/config"
	"github.com/tanmaydb/courtdesk/internal/directory"
	"github.com/tanmaydb/courtdesk/internal/email"
	"github.com/tanmaydb/courtdesk/internal/registry"
	"github.com/tanmaydb/courtdesk/internal/store"
)

func newServer(cfg *config.Config, st *store.Store) (*http.Server, error) {
	var sender email.Sender
	if cfg.EmailEnabled() {
		ses, err := email.NewSESClient(cfg.SES.AccessKeyID, cfg.SES.SecretAccessKey, cfg.SES.Region, cfg.SES.Sender)
		if err != nil {
			return nil, fmt.Errorf("configure ses: %w", err)
		}
		sender = ses
	} else {
		log.Warn().Msg("SES not configured; registration confirmations disabled")
	}

	auth.InitHandlers(st, auth.SessionConfig{
		CookieName: cfg.Session.CookieName,
		SecretKey:  cfg.App.SecretKey,
		ExpiryDays: cfg.Session.ExpiryDays,
		Secure:     cfg.App.Environment != "development",
	})
	members.InitHandlers(directory.New(st))
	events.InitHandlers(st)
	registrations.InitHandlers(registry.New(st), sender)
	bookings.InitHandlers(availability.New(st), st)

	router := http.NewServeMux()
	registerRoutes(router)

	handler := api.ChainMiddleware(
		router,
		api.WithLogging,
		api.WithRecovery,
		api.WithRequestID,
		api.WithContentType,
	)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}, nil
}

func registerRoutes(mux *http.ServeMux) {
	// Health check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Session routes
	mux.HandleFunc("POST /api/v1/auth/login", auth.HandleLogin)
	mux.HandleFunc("POST /api/v1/auth/logout", auth.HandleLogout)

	// Admin routes behind the session cookie
	mux.Handle("GET /api/v1/members/search", auth.RequireSession(http.HandlerFunc(members.HandleMemberSearch)))
	mux.Handle("GET /admin/members/search", auth.RequireSession(http.HandlerFunc(members.HandleMemberSearchFragment)))
	mux.Handle("POST /api/v1/events", auth.RequireSession(http.HandlerFunc(events.HandleCreateEvent)))
	mux.Handle("POST /api/v1/registrations", auth.RequireSession(http.HandlerFunc(registrations.HandleCreateRegistration)))
	mux.Handle("GET /api/v1/bookings/export", auth.RequireSession(http.HandlerFunc(bookings.HandleExport)))

	// Public reads
	mux.HandleFunc("GET /api/v1/events", events.HandleListEvents)
	mux.HandleFunc("GET /api/v1/bookings/availability", bookings.HandleAvailability)
}
