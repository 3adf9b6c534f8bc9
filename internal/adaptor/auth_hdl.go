package adaptor

import (
	"errors"
	"net"
	"net/http"

	"ecommerce-catalog/internal/dto/request"
	"ecommerce-catalog/internal/usecase"
	"ecommerce-catalog/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	cookie  utils.CookieConfig
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, cookie utils.CookieConfig, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		cookie:  cookie,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Register handles POST /api/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, req) {
		return
	}

	resp, err := h.service.Register(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "register")
		return
	}

	utils.ResponseCreated(w, "Registration successful. OTP sent to your email for verification.", resp)
}

// VerifyRegistration handles POST /api/register/verify
func (h *AuthHandler) VerifyRegistration(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyRegistrationRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, req) {
		return
	}

	resp, err := h.service.VerifyRegistration(r.Context(), &req)
	if errors.Is(err, usecase.ErrUserNotFound) {
		h.log.Warn("Verification for missing user", zap.String("email", req.Email))
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}
	if err != nil {
		handleServiceError(w, h.log, err, "verify registration")
		return
	}

	utils.ResponseSuccess(w, "Email verified successfully. You can now login.", resp)
}

// Login handles POST /api/login and sets the session cookie.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, req) {
		return
	}

	result, err := h.service.Login(r.Context(), &req, clientInfo(r))
	if err != nil {
		handleServiceError(w, h.log, err, "login")
		return
	}

	utils.SetSessionCookie(w, result.Token, result.TTL, h.cookie)
	utils.ResponseSuccess(w, "Login successful", result.Response)
}

// Logout handles POST /api/logout. Requires AuthSession.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, _ := utils.GetTokenFromContext(r.Context())

	if err := h.service.Logout(r.Context(), token); err != nil {
		handleServiceError(w, h.log, err, "logout")
		return
	}

	utils.ClearSessionCookie(w, h.cookie)
	utils.ResponseSuccess(w, "Logout successful", nil)
}

func clientInfo(r *http.Request) usecase.ClientInfo {
	ip := r.RemoteAddr
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		ip = host
	}
	return usecase.ClientInfo{UserAgent: r.UserAgent(), IPAddress: ip}
}
