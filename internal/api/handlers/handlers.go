package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Nehru-cyber/task-manager/internal/api/types"
	"github.com/Nehru-cyber/task-manager/pkg/logger"
	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeServiceError maps the error to a status and user-safe message. The
// full error, including any wrapped cause, stays in the server log.
func writeServiceError(w http.ResponseWriter, err error) {
	status, msg := types.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.L().Error("request failed", zap.Error(err))
	}
	writeJSON(w, status, types.ErrorResponse{Error: msg})
}

func writeErrorStr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, types.ErrorResponse{Error: msg})
}
