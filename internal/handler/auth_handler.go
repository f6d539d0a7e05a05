package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/employee-directory-api/internal/domain"
	"github.com/employee-directory-api/internal/dto"
	"github.com/employee-directory-api/internal/service"
	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	authService service.AuthService
	validator   *validator.Validate
	logger      *slog.Logger
}

func NewAuthHandler(authService service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator.New(),
		logger:      logger,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	user, err := h.authService.Register(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusCreated, dto.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	tokens, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, tokens)
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req dto.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	access, err := h.authService.Refresh(r.Context(), req.Refresh)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, dto.AccessTokenResponse{Access: access})
}

func (h *AuthHandler) handleServiceError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		respondJSON(h.logger, w, http.StatusBadRequest, ve)
	case errors.Is(err, domain.ErrInvalidCredentials):
		respondDetail(h.logger, w, http.StatusUnauthorized, "No active account found with the given credentials")
	case errors.Is(err, domain.ErrInvalidToken):
		respondDetail(h.logger, w, http.StatusUnauthorized, "Token is invalid or expired")
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		respondDetail(h.logger, w, http.StatusInternalServerError, "A server error occurred.")
	}
}
