package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	apihandlers "github.com/m04kA/ShareIt-RentalService/internal/api/handlers"
	"github.com/m04kA/ShareIt-RentalService/internal/api/middleware"
	"github.com/m04kA/ShareIt-RentalService/internal/domain"
	"github.com/m04kA/ShareIt-RentalService/internal/gateway/client"
)

const (
	msgMissingUserID      = "отсутствует заголовок " + middleware.UserIDHeader
	msgInvalidRequestBody = "некорректное тело запроса"
	msgStartInPast        = "дата начала бронирования не может быть в прошлом"
	msgEndNotAfterStart   = "дата окончания должна быть позже даты начала"
	msgInvalidPagination  = "некорректные параметры пагинации"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Handler валидирует запросы на границе и проксирует их в server-модуль.
// Своих данных у шлюза нет: любой прошедший валидацию запрос уходит
// дальше без изменений.
type Handler struct {
	upstream *client.Client
	logger   Logger
}

func NewHandler(upstream *client.Client, logger Logger) *Handler {
	return &Handler{
		upstream: upstream,
		logger:   logger,
	}
}

// Proxy пересылает запрос без дополнительной валидации
func (h *Handler) Proxy(w http.ResponseWriter, r *http.Request) {
	h.upstream.Forward(w, r)
}

// ProxyAuthorized пересылает запрос, требуя заголовок X-Sharer-User-Id
func (h *Handler) ProxyAuthorized(w http.ResponseWriter, r *http.Request) {
	if !h.checkUserID(w, r) {
		return
	}
	h.upstream.Forward(w, r)
}

// CreateBooking POST /api/v1/bookings: проверяет интервал бронирования
// до пересылки
func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	if !h.checkUserID(w, r) {
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to read body: %v", err)
		apihandlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	r.Body.Close()

	var req struct {
		Start time.Time `json:"start"`
		End   time.Time `json:"end"`
	}
	if err := json.Unmarshal(body, &req); err != nil || req.Start.IsZero() || req.End.IsZero() {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		apihandlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	now := time.Now()
	if req.Start.Before(now) {
		h.logger.Warn("POST /bookings - Start in the past: start=%s", req.Start.Format(time.RFC3339))
		apihandlers.RespondBadRequest(w, msgStartInPast)
		return
	}
	if !req.End.After(req.Start) {
		h.logger.Warn("POST /bookings - End not after start: start=%s, end=%s",
			req.Start.Format(time.RFC3339), req.End.Format(time.RFC3339))
		apihandlers.RespondBadRequest(w, msgEndNotAfterStart)
		return
	}

	// Тело уже прочитано, восстанавливаем его для пересылки
	r.Body = io.NopCloser(bytes.NewReader(body))
	r.ContentLength = int64(len(body))
	h.upstream.Forward(w, r)
}

// ListBookings GET /api/v1/bookings и /api/v1/bookings/owner:
// проверяет state и параметры пагинации до пересылки
func (h *Handler) ListBookings(w http.ResponseWriter, r *http.Request) {
	if !h.checkUserID(w, r) {
		return
	}

	if rawState := r.URL.Query().Get("state"); rawState != "" {
		if _, err := domain.ParseSearchStatus(rawState); err != nil {
			h.logger.Warn("GET %s - Unknown state: %s", r.URL.Path, rawState)
			apihandlers.RespondBadRequest(w, fmt.Sprintf("Unknown state: %s", rawState))
			return
		}
	}

	if !h.checkPagination(w, r) {
		return
	}
	h.upstream.Forward(w, r)
}

// ProxyPaginated пересылает запрос, проверив параметры пагинации
func (h *Handler) ProxyPaginated(w http.ResponseWriter, r *http.Request) {
	if !h.checkUserID(w, r) {
		return
	}
	if !h.checkPagination(w, r) {
		return
	}
	h.upstream.Forward(w, r)
}

func (h *Handler) checkUserID(w http.ResponseWriter, r *http.Request) bool {
	raw := r.Header.Get(middleware.UserIDHeader)
	if raw == "" {
		h.logger.Warn("%s %s - Missing user ID header", r.Method, r.URL.Path)
		apihandlers.RespondUnauthorized(w, msgMissingUserID)
		return false
	}
	if userID, err := strconv.ParseInt(raw, 10, 64); err != nil || userID <= 0 {
		h.logger.Warn("%s %s - Invalid user ID header: %s", r.Method, r.URL.Path, raw)
		apihandlers.RespondUnauthorized(w, msgMissingUserID)
		return false
	}
	return true
}

func (h *Handler) checkPagination(w http.ResponseWriter, r *http.Request) bool {
	if _, _, err := apihandlers.ParsePagination(r.URL.Query()); err != nil {
		h.logger.Warn("%s %s - Invalid pagination: %v", r.Method, r.URL.Path, err)
		apihandlers.RespondBadRequest(w, msgInvalidPagination)
		return false
	}
	return true
}
