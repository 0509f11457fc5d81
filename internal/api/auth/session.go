package auth

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tanmaydb/courtdesk/internal/models"
)

var errNoSession = errors.New("no session")

// SessionConfig controls token signing and cookie issuance.
type SessionConfig struct {
	CookieName string
	SecretKey  string
	ExpiryDays int
	Secure     bool
}

// Claims is the signed session payload: subject id plus email and name.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// IssueSession signs a session token for the staff account and delivers it
// via an http-only, SameSite=Lax cookie.
func IssueSession(w http.ResponseWriter, cfg SessionConfig, staff *models.Staff) error {
	if cfg.SecretKey == "" {
		return errors.New("session secret key is not configured")
	}

	ttl := time.Duration(cfg.ExpiryDays) * 24 * time.Hour
	expiresAt := time.Now().Add(ttl)
	claims := Claims{
		Email: staff.Email,
		Name:  staff.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   staff.ID.Hex(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.SecretKey))
	if err != nil {
		return fmt.Errorf("sign session token: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cfg.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  expiresAt,
		MaxAge:   int(ttl.Seconds()),
	})
	return nil
}

// SessionFromRequest validates the session cookie and returns its claims.
func SessionFromRequest(r *http.Request, cfg SessionConfig) (*Claims, error) {
	cookie, err := r.Cookie(cfg.CookieName)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return nil, errNoSession
		}
		return nil, err
	}

	var claims Claims
	_, err = jwt.ParseWithClaims(cookie.Value, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.SecretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse session token: %w", err)
	}
	return &claims, nil
}

// ClearSession expires the session cookie.
func ClearSession(w http.ResponseWriter, cfg SessionConfig) {
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
}
