package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"robot-rental-admin/internal/admin/model"
	"robot-rental-admin/internal/admin/service"
	"robot-rental-admin/pkg/response"
)

type AdminHandler struct {
	service service.AdminService
}

func NewAdminHandler(service service.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if req.Username == "" || req.Password == "" {
		response.Error(c, http.StatusBadRequest, "username and password are required")
		return
	}

	result, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "login successful", result)
}
