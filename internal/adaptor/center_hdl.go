package adaptor

import (
	"net/http"

	"waitwise/internal/usecase"
	"waitwise/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CenterHandler struct {
	service usecase.CenterService
	log     *zap.Logger
}

func NewCenterHandler(service usecase.CenterService, log *zap.Logger) *CenterHandler {
	return &CenterHandler{
		service: service,
		log:     log.With(zap.String("handler", "center")),
	}
}

// GetCenters handles GET /api/centers (public)
func (h *CenterHandler) GetCenters(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	q := usecase.CenterQuery{
		Category: query.Get("type"),
		Search:   query.Get("search"),
		Sort:     query.Get("sort"),
	}

	switch q.Sort {
	case "", "wait", "distance", "rating":
	default:
		h.log.Warn("unknown sort, ignoring", zap.String("sort", q.Sort))
		q.Sort = ""
	}

	centers, err := h.service.GetCenters(r.Context(), q)
	if err != nil {
		handleServiceError(h.log, w, err, "get centers")
		return
	}

	utils.ResponseSuccess(w, "success", centers)
}

// GetCenter handles GET /api/centers/{id} (public)
func (h *CenterHandler) GetCenter(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid center id", nil)
		return
	}

	center, err := h.service.GetCenter(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, err, "get center")
		return
	}

	utils.ResponseSuccess(w, "success", center)
}

// GetCenterReviews handles GET /api/centers/{id}/reviews (public)
func (h *CenterHandler) GetCenterReviews(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid center id", nil)
		return
	}

	reviews, err := h.service.GetReviews(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, err, "get center reviews")
		return
	}

	utils.ResponseSuccess(w, "success", reviews)
}

// GetStats handles GET /api/stats (public)
func (h *CenterHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get stats")
		return
	}

	utils.ResponseSuccess(w, "success", stats)
}
