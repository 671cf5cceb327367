package adaptor

import (
	"net/http"

	"transfer-booking/internal/dto/request"
	"transfer-booking/internal/usecase"
	"transfer-booking/pkg/utils"

	"go.uber.org/zap"
)

type ActivityHandler struct {
	service usecase.ActivityService
	log     *zap.Logger
}

func NewActivityHandler(service usecase.ActivityService, log *zap.Logger) *ActivityHandler {
	return &ActivityHandler{
		service: service,
		log:     log.With(zap.String("handler", "activity")),
	}
}

// GetActivities handles GET /api/admin/activities (admin only)
func (h *ActivityHandler) GetActivities(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	activities, err := h.service.GetActivities(r.Context(), req)
	if err != nil {
		h.log.Error("Failed to get activities", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "success", activities)
}
