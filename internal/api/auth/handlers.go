// internal/api/auth/handlers.go
package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/tanmaydb/courtdesk/internal/api/apiutil"
	"github.com/tanmaydb/courtdesk/internal/fault"
	"github.com/tanmaydb/courtdesk/internal/models"
)

// StaffStore looks up staff login accounts by email, case-insensitively.
type StaffStore interface {
	StaffByEmail(ctx context.Context, email string) (*models.Staff, error)
}

var (
	store      StaffStore
	sessionCfg SessionConfig
	limiter    *rate.Limiter
)

func InitHandlers(s StaffStore, cfg SessionConfig) {
	store = s
	sessionCfg = cfg
	limiter = rate.NewLimiter(rate.Limit(5), 10) // More restrictive for auth
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func HandleLogin(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	if store == nil {
		logger.Error().Msg("Auth store not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if !limiter.Allow() {
		http.Error(w, "Too many login attempts", http.StatusTooManyRequests)
		return
	}

	var req loginRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		apiutil.WriteError(w, r, fault.Validation("invalid login payload"))
		return
	}
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		apiutil.WriteError(w, r, fault.Validation("email and password are required"))
		return
	}

	staff, err := store.StaffByEmail(r.Context(), email)
	if err != nil {
		if fault.IsNotFound(err) {
			// Same response as a wrong password so accounts cannot be probed.
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}
		apiutil.WriteError(w, r, err)
		return
	}

	if !VerifyPassword(staff.PasswordHash, req.Password) {
		logger.Warn().Str("email", email).Msg("Failed login attempt")
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	if err := IssueSession(w, sessionCfg, staff); err != nil {
		logger.Error().Err(err).Msg("Failed to issue session")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	_ = apiutil.WriteJSON(w, http.StatusOK, map[string]string{
		"id":    staff.ID.Hex(),
		"name":  staff.Name,
		"email": staff.Email,
	})
}

func HandleLogout(w http.ResponseWriter, r *http.Request) {
	ClearSession(w, sessionCfg)
	w.WriteHeader(http.StatusNoContent)
}

// RequireSession guards admin routes behind a valid session cookie.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := SessionFromRequest(r, sessionCfg)
		if err != nil || claims == nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
