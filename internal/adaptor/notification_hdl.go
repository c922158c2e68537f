package adaptor

import (
	"encoding/json"
	"net/http"

	"waitwise/internal/dto/request"
	"waitwise/internal/usecase"
	"waitwise/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type NotificationHandler struct {
	service usecase.NotificationService
	log     *zap.Logger
}

func NewNotificationHandler(service usecase.NotificationService, log *zap.Logger) *NotificationHandler {
	return &NotificationHandler{
		service: service,
		log:     log.With(zap.String("handler", "notification")),
	}
}

// GetInbox handles GET /api/notifications (protected)
func (h *NotificationHandler) GetInbox(w http.ResponseWriter, r *http.Request) {
	inbox, err := h.service.GetInbox(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get inbox")
		return
	}

	utils.ResponseSuccess(w, "success", inbox)
}

// MarkRead handles PUT /api/notifications/{id}/read (protected)
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid notification id", nil)
		return
	}

	if err := h.service.MarkRead(r.Context(), id); err != nil {
		handleServiceError(h.log, w, err, "mark read")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// MarkAllRead handles PUT /api/notifications/read-all (protected)
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	if err := h.service.MarkAllRead(r.Context()); err != nil {
		handleServiceError(h.log, w, err, "mark all read")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// ClearInbox handles DELETE /api/notifications (protected)
func (h *NotificationHandler) ClearInbox(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ClearInbox(r.Context()); err != nil {
		handleServiceError(h.log, w, err, "clear inbox")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// GetPreferences handles GET /api/notifications/preferences (protected)
func (h *NotificationHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.service.GetPreferences(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get preferences")
		return
	}

	utils.ResponseSuccess(w, "success", prefs)
}

// UpdatePreference handles PUT /api/notifications/preferences (protected)
func (h *NotificationHandler) UpdatePreference(w http.ResponseWriter, r *http.Request) {
	var req request.UpdatePreferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	prefs, err := h.service.SetPreference(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "update preference")
		return
	}

	utils.ResponseSuccess(w, "success", prefs)
}

// UpdateThreshold handles PUT /api/notifications/threshold (protected)
func (h *NotificationHandler) UpdateThreshold(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateThresholdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	prefs, err := h.service.SetThreshold(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "update threshold")
		return
	}

	utils.ResponseSuccess(w, "success", prefs)
}
