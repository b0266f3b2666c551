package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error       string `json:"error"`
	Description string `json:"description,omitempty"`
}

// DecodeJSON декодирует тело запроса в переданную структуру
func DecodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

// RespondJSON пишет JSON ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// RespondError пишет ответ с ошибкой и указанным статусом
func RespondError(w http.ResponseWriter, status int, description string) {
	RespondJSON(w, status, ErrorResponse{
		Error:       http.StatusText(status),
		Description: description,
	})
}

// RespondBadRequest 400
func RespondBadRequest(w http.ResponseWriter, description string) {
	RespondError(w, http.StatusBadRequest, description)
}

// RespondUnauthorized 401
func RespondUnauthorized(w http.ResponseWriter, description string) {
	RespondError(w, http.StatusUnauthorized, description)
}

// RespondForbidden 403
func RespondForbidden(w http.ResponseWriter, description string) {
	RespondError(w, http.StatusForbidden, description)
}

// RespondNotFound 404
func RespondNotFound(w http.ResponseWriter, description string) {
	RespondError(w, http.StatusNotFound, description)
}

// RespondConflict 409
func RespondConflict(w http.ResponseWriter, description string) {
	RespondError(w, http.StatusConflict, description)
}

// RespondInternalError 500
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, "внутренняя ошибка сервиса")
}
