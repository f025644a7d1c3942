package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"jobboard/internal/api/middleware"
	"jobboard/internal/app/service"
	"jobboard/internal/common"
	"jobboard/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type AuthHandler struct {
	authService *service.AuthService

	// cookieMaxAge is the client-side lifetime of the session cookie.
	// It intentionally exceeds the token's own expiry: the verifier
	// rejects the token long before the browser drops the cookie.
	cookieMaxAge time.Duration
}

func NewAuthHandler(authService *service.AuthService, cookieMaxAge time.Duration) *AuthHandler {
	return &AuthHandler{authService: authService, cookieMaxAge: cookieMaxAge}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/register", h.register)
	r.Post("/login", h.login)
	r.Get("/logout", h.logout)
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if err := h.authService.Register(r.Context(), req); err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, common.MessageResponse{
		Message: "User created successfully",
		Success: true,
	})
}

type loginResponse struct {
	Message string      `json:"message"`
	User    *model.User `json:"user"`
	Success bool        `json:"success"`
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	result, err := h.authService.Login(r.Context(), req)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    result.Token,
		Path:     "/",
		MaxAge:   int(h.cookieMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
	common.RespondWithJSON(w, http.StatusOK, loginResponse{
		Message: "Welcome " + result.User.Fullname,
		User:    result.User,
		Success: true,
	})
}

// logout clears the session cookie; there is no server-side session
// state to tear down.
func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
	common.RespondWithJSON(w, http.StatusOK, common.MessageResponse{
		Message: "Logged out successfully",
		Success: true,
	})
}
