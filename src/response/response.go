package response

import (
	"encoding/json"
	"net/http"

	"exceptionlogger/src/apperror"

	logger "github.com/sirupsen/logrus"
)

const StatusSuccess = "success"

// MessageEnvelope acknowledges a write.
type MessageEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// DataEnvelope carries query results. Data is always serialized, so an
// empty result list is rendered as [] and never dropped.
type DataEnvelope struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

// ErrorBody is the body of every non-2xx response.
type ErrorBody struct {
	Detail string            `json:"detail"`
	Errors map[string]string `json:"errors,omitempty"`
}

func WriteMessage(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusOK, MessageEnvelope{Status: StatusSuccess, Message: message})
}

func WriteData(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, DataEnvelope{Status: StatusSuccess, Data: data})
}

// WriteError maps err to its HTTP status and renders it as an ErrorBody.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	typed := apperror.From(err)
	status := typed.HTTPStatus()

	entry := logger.WithFields(map[string]interface{}{
		"method":     r.Method,
		"path":       r.URL.Path,
		"status":     status,
		"error_code": typed.Code(),
	}).WithError(err)
	if status >= http.StatusInternalServerError {
		entry.Error("request failed")
	} else {
		entry.Warn("request rejected")
	}

	WriteJSON(w, status, ErrorBody{Detail: typed.Detail(), Errors: typed.Details()})
}

func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Error("failed to encode response")
	}
}
