package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"robot-rental-admin/internal/charity/model"
	"robot-rental-admin/internal/charity/service"
	"robot-rental-admin/pkg/response"
)

type CharityHandler struct {
	service service.CharityService
}

func NewCharityHandler(service service.CharityService) *CharityHandler {
	return &CharityHandler{service: service}
}

func (h *CharityHandler) CreateInstitution(c *gin.Context) {
	var req model.CreateInstitutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	institution, err := h.service.CreateInstitution(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "institution created", institution)
}

func (h *CharityHandler) GetInstitution(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid institution ID")
		return
	}

	institution, err := h.service.GetInstitution(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "institution retrieved", institution)
}

func (h *CharityHandler) UpdateInstitution(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid institution ID")
		return
	}

	var req model.UpdateInstitutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	institution, err := h.service.UpdateInstitution(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "institution updated", institution)
}

func (h *CharityHandler) DeleteInstitution(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid institution ID")
		return
	}

	if err := h.service.DeleteInstitution(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "institution deleted", nil)
}

func (h *CharityHandler) SearchInstitutions(c *gin.Context) {
	var filter model.InstitutionFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid query parameters: "+err.Error())
		return
	}

	result, err := h.service.SearchInstitutions(c.Request.Context(), &filter)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "institutions retrieved", result)
}

func (h *CharityHandler) CreateActivity(c *gin.Context) {
	var req model.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	activity, err := h.service.CreateActivity(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "activity created", activity)
}

func (h *CharityHandler) GetActivity(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid activity ID")
		return
	}

	activity, err := h.service.GetActivity(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "activity retrieved", activity)
}

func (h *CharityHandler) UpdateActivity(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid activity ID")
		return
	}

	var req model.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	activity, err := h.service.UpdateActivity(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "activity updated", activity)
}

func (h *CharityHandler) DeleteActivity(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid activity ID")
		return
	}

	if err := h.service.DeleteActivity(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "activity deleted", nil)
}

func (h *CharityHandler) SearchActivities(c *gin.Context) {
	var filter model.ActivityFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid query parameters: "+err.Error())
		return
	}

	result, err := h.service.SearchActivities(c.Request.Context(), &filter)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "activities retrieved", result)
}

func (h *CharityHandler) ChangeActivityStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid activity ID")
		return
	}

	var req model.ChangeActivityStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	activity, err := h.service.ChangeActivityStatus(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "activity status updated", activity)
}

func (h *CharityHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "charity statistics retrieved", stats)
}
