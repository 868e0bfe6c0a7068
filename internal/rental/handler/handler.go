package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"robot-rental-admin/internal/rental/model"
	"robot-rental-admin/internal/rental/service"
	"robot-rental-admin/pkg/response"
)

type RentalHandler struct {
	service service.RentalService
}

func NewRentalHandler(service service.RentalService) *RentalHandler {
	return &RentalHandler{service: service}
}

func (h *RentalHandler) Create(c *gin.Context) {
	var req model.CreateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	rental, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "rental opened", rental)
}

func (h *RentalHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid rental ID")
		return
	}

	rental, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "rental retrieved", rental)
}

func (h *RentalHandler) List(c *gin.Context) {
	var filter model.RentalFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid query parameters: "+err.Error())
		return
	}

	result, err := h.service.List(c.Request.Context(), &filter)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "rentals retrieved", result)
}

func (h *RentalHandler) ChangeStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid rental ID")
		return
	}

	var req model.ChangeRentalStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	rental, err := h.service.ChangeStatus(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "rental status updated", rental)
}
