package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/employee-directory-api/internal/dto"
)

func respondJSON(logger *slog.Logger, w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func respondDetail(logger *slog.Logger, w http.ResponseWriter, status int, detail string) {
	respondJSON(logger, w, status, dto.DetailResponse{Detail: detail})
}

func respondError(logger *slog.Logger, w http.ResponseWriter, status int, errMsg, details string) {
	resp := dto.ErrorResponse{Error: errMsg}
	if details != "" {
		resp.Message = details
	}
	respondJSON(logger, w, status, resp)
}
