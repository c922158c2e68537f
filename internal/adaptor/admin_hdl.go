package adaptor

import (
	"encoding/json"
	"net/http"

	"waitwise/internal/dto/request"
	"waitwise/internal/usecase"
	"waitwise/pkg/utils"

	"go.uber.org/zap"
)

type AdminHandler struct {
	service usecase.AdminService
	log     *zap.Logger
}

func NewAdminHandler(service usecase.AdminService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		log:     log.With(zap.String("handler", "admin")),
	}
}

// UpdateQueue handles PUT /api/admin/center/queue (admin)
func (h *AdminHandler) UpdateQueue(w http.ResponseWriter, r *http.Request) {
	adminID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpdateQueueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	center, err := h.service.SetQueueLength(r.Context(), adminID, *req.Queue)
	if err != nil {
		handleServiceError(h.log, w, err, "update queue")
		return
	}

	utils.ResponseSuccess(w, "success", center)
}

// ToggleStatus handles PUT /api/admin/center/status (admin)
func (h *AdminHandler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	adminID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	center, err := h.service.ToggleStatus(r.Context(), adminID)
	if err != nil {
		handleServiceError(h.log, w, err, "toggle status")
		return
	}

	utils.ResponseSuccess(w, "success", center)
}

// GetAllBookings handles GET /api/admin/bookings (admin)
func (h *AdminHandler) GetAllBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.GetAllBookings(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get all bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}
