package routes

import (
	"encoding/json"
	"io"
	"net/http"

	"mooddiary/diary/types"
	"mooddiary/diary/utils/apperr"
	"mooddiary/diary/utils/logging"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// handleJSON encodes the handler result with 200, or its error as
// {"error": msg} with the status apperr assigns. 5xx causes go to the error
// log only.
func handleJSON(handler func(r *http.Request) (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := handler(r)
		if err != nil {
			status, msg := apperr.Status(err)
			if status >= http.StatusInternalServerError {
				logging.ErrorLogger.Error("request failed",
					zap.String("request_id", middleware.GetReqID(r.Context())),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Error(err),
				)
			}
			writeJSON(w, status, types.ErrorResponse{Error: msg})
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(v); err != nil {
		return apperr.NewValidation("invalid JSON body")
	}
	return nil
}
