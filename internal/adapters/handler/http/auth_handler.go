package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vendio/api/internal/core/domain"
	"github.com/vendio/api/internal/core/ports"
)

const (
	accessTokenCookie  = "accessToken"
	refreshTokenCookie = "refreshToken"
)

type AuthHandler struct {
	auth   ports.AuthService
	tokens ports.TokenService
	// secureCookies toggles Secure + SameSite=Strict; off in
	// development so plain-HTTP localhost flows keep working.
	secureCookies bool
}

func NewAuthHandler(auth ports.AuthService, tokens ports.TokenService, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		auth:          auth,
		tokens:        tokens,
		secureCookies: secureCookies,
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid request body.")
		return
	}

	identity, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeAuthError(w, err)
		return
	}

	h.issueSession(w, r, identity, http.StatusOK, "Login successful.")
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid request body.")
		return
	}

	identity, err := h.auth.Signup(r.Context(), req.Email, req.Password)
	if err != nil {
		writeAuthError(w, err)
		return
	}

	h.issueSession(w, r, identity, http.StatusCreated, "Sign up successful.")
}

// Refresh rotates a refresh token: the presented token is consumed and
// a new access/refresh pair is issued. The token comes from the JSON
// body, falling back to the refreshToken cookie.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.RefreshToken == "" {
		if cookie, err := r.Cookie(refreshTokenCookie); err == nil {
			req.RefreshToken = cookie.Value
		}
	}
	if req.RefreshToken == "" {
		writeMessage(w, http.StatusBadRequest, false, "Refresh token required.")
		return
	}

	pair, err := h.tokens.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		writeMessage(w, http.StatusUnauthorized, false, refreshErrorMessage(err))
		return
	}

	h.setTokenCookies(w, pair.AccessToken, pair.RefreshToken)
	writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"user":         pair.User,
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
		"expiresIn":    int64(pair.ExpiresIn.Seconds()),
	})
}

// Logout clears the token cookies and revokes the refresh token's
// registry entry when one is presented, so a captured refresh token
// dies with the session instead of living until signature expiry.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(refreshTokenCookie); err == nil && cookie.Value != "" {
		_ = h.tokens.Revoke(r.Context(), cookie.Value)
	}

	h.expireTokenCookies(w)
	writeMessage(w, http.StatusOK, true, "Logged out.")
}

func (h *AuthHandler) issueSession(w http.ResponseWriter, r *http.Request, identity domain.Identity, status int, message string) {
	accessToken, expiresIn, err := h.tokens.IssueAccessToken(identity)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, false, serverErrorMessage)
		return
	}

	refreshToken, err := h.tokens.IssueRefreshToken(r.Context(), identity)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, false, serverErrorMessage)
		return
	}

	h.setTokenCookies(w, accessToken, refreshToken)
	writeJSON(w, status, map[string]any{
		"success":      true,
		"message":      message,
		"user":         identity,
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
		"expiresIn":    int64(expiresIn.Seconds()),
	})
}

func refreshErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrRefreshNotFound):
		return "Refresh token not found or expired."
	case errors.Is(err, domain.ErrTokenExpired):
		return "Refresh token expired."
	default:
		return "Invalid refresh token."
	}
}

func (h *AuthHandler) setTokenCookies(w http.ResponseWriter, accessToken, refreshToken string) {
	http.SetCookie(w, h.cookie(accessTokenCookie, accessToken, int(h.tokens.AccessTTL().Seconds())))
	http.SetCookie(w, h.cookie(refreshTokenCookie, refreshToken, int(h.tokens.RefreshTTL().Seconds())))
}

func (h *AuthHandler) expireTokenCookies(w http.ResponseWriter) {
	http.SetCookie(w, h.cookie(accessTokenCookie, "", -1))
	http.SetCookie(w, h.cookie(refreshTokenCookie, "", -1))
}

func (h *AuthHandler) cookie(name, value string, maxAge int) *http.Cookie {
	sameSite := http.SameSiteLaxMode
	if h.secureCookies {
		sameSite = http.SameSiteStrictMode
	}
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: sameSite,
		MaxAge:   maxAge,
	}
}
