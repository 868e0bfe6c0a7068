package stats

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"robot-rental-admin/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Dashboard(c *gin.Context) {
	dashboard, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "dashboard statistics retrieved", dashboard)
}

func (h *Handler) Refresh(c *gin.Context) {
	dashboard, err := h.service.Refresh(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "dashboard statistics refreshed", dashboard)
}
