package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/pawhaven/pawhaven/internal/handler/dto"
	"github.com/pawhaven/pawhaven/internal/service"
)

// AccountHandler handles registration and login endpoints.
type AccountHandler struct {
	svc    *service.AccountService
	logger *slog.Logger
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(svc *service.AccountService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		svc:    svc,
		logger: logger,
	}
}

// Register handles POST /api/register.
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "All fields are required")
		return
	}

	user, err := h.svc.Register(r.Context(), service.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			writeFailure(w, http.StatusBadRequest, "All fields are required")
		case errors.Is(err, service.ErrUsernameTaken):
			writeFailure(w, http.StatusBadRequest, "Username already exists")
		default:
			h.logger.Error("registration failed", "error", err)
			writeFailure(w, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	h.logger.Info("user_registered", "user_id", user.ID, "username", user.Username)

	writeJSON(w, http.StatusCreated, dto.StatusResponse{Success: true, Message: "User registered successfully"})
}

// Login handles POST /api/login.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.svc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		// Unknown username and wrong password produce the same response.
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeFailure(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.logger.Error("login failed", "error", err)
		writeFailure(w, http.StatusInternalServerError, "Login failed")
		return
	}

	writeJSON(w, http.StatusOK, dto.LoginResponse{Success: true, Token: token})
}
