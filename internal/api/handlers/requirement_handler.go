package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danuartha/notaris-go/internal/application"
	"github.com/danuartha/notaris-go/internal/domain/requirement"
	"github.com/danuartha/notaris-go/pkg/response"
	"github.com/danuartha/notaris-go/pkg/utils"
)

type RequirementHandler struct {
	svc *application.RequirementService
}

func NewRequirementHandler(svc *application.RequirementService) *RequirementHandler {
	return &RequirementHandler{svc: svc}
}

// ListForActivity godoc
// @Summary List the requirement checklist for an activity
// @Tags requirements
// @Security BearerAuth
// @Produce json
// @Param id path int true "Activity ID"
// @Success 200 {array} requirement.Requirement
// @Failure 400 {object} response.ErrorResponse "Invalid activity id"
// @Failure 403 {object} response.ErrorResponse "Forbidden"
// @Failure 404 {object} response.ErrorResponse "Activity not found"
// @Router /activities/{id}/requirements [get]
func (h *RequirementHandler) ListForActivity(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid activity id"})
		return
	}
	userID, role, ok := requestIdentity(c)
	if !ok {
		return
	}

	reqs, err := h.svc.ListForActivity(id, userID, role)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reqs)
}

// CreateExtra godoc
// @Summary Add an extra requirement scoped to one activity
// @Tags requirements
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body requirement.CreateExtraDTO true "Requirement info"
// @Success 201 {object} requirement.Requirement
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 403 {object} response.ErrorResponse "Forbidden"
// @Failure 404 {object} response.ErrorResponse "Activity not found"
// @Router /requirements [post]
func (h *RequirementHandler) CreateExtra(c *gin.Context) {
	var input requirement.CreateExtraDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	userID, role, ok := requestIdentity(c)
	if !ok {
		return
	}

	req, err := h.svc.CreateExtra(c, userID, role, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, req)
}

// DeleteRequirement godoc
// @Summary Delete an activity-scoped extra requirement
// @Tags requirements
// @Security BearerAuth
// @Produce json
// @Param id path int true "Requirement ID"
// @Success 204 "No Content"
// @Failure 400 {object} response.ErrorResponse "Invalid requirement id"
// @Failure 403 {object} response.ErrorResponse "Forbidden"
// @Failure 404 {object} response.ErrorResponse "Requirement not found"
// @Failure 422 {object} response.ErrorResponse "Deed-level requirements cannot be deleted here"
// @Router /requirements/{id} [delete]
func (h *RequirementHandler) DeleteRequirement(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid requirement id"})
		return
	}
	userID, role, ok := requestIdentity(c)
	if !ok {
		return
	}

	if err := h.svc.DeleteRequirement(c, id, userID, role); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SubmitValue godoc
// @Summary Submit a text value for a requirement
// @Tags requirements
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Requirement ID"
// @Param input body requirement.SubmitValueDTO true "Value"
// @Success 200 {object} requirement.Value
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 403 {object} response.ErrorResponse "Forbidden"
// @Failure 404 {object} response.ErrorResponse "Requirement not found"
// @Router /requirements/{id}/value [post]
func (h *RequirementHandler) SubmitValue(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid requirement id"})
		return
	}
	var input requirement.SubmitValueDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	userID, role, ok := requestIdentity(c)
	if !ok {
		return
	}

	value, err := h.svc.SubmitValue(c, id, userID, role, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, value)
}

// SubmitFile godoc
// @Summary Upload a file for a file-type requirement
// @Tags requirements
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Requirement ID"
// @Param activity_id formData int true "Activity ID"
// @Param file formData file true "Document file"
// @Success 200 {object} requirement.Value
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 403 {object} response.ErrorResponse "Forbidden"
// @Failure 404 {object} response.ErrorResponse "Requirement not found"
// @Router /requirements/{id}/file [post]
func (h *RequirementHandler) SubmitFile(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid requirement id"})
		return
	}
	var form struct {
		ActivityID uint `form:"activity_id" binding:"required"`
	}
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "file is required"})
		return
	}
	userID, role, ok := requestIdentity(c)
	if !ok {
		return
	}

	value, err := h.svc.SubmitFileValue(c, id, form.ActivityID, userID, role, header)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, value)
}

// ReviewValue godoc
// @Summary Approve or reject a submitted requirement value
// @Tags requirements
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Value ID"
// @Param input body requirement.ReviewValueDTO true "Decision"
// @Success 200 {object} requirement.Value
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 403 {object} response.ErrorResponse "Forbidden"
// @Failure 404 {object} response.ErrorResponse "Value not found"
// @Router /requirement-values/{id}/review [post]
func (h *RequirementHandler) ReviewValue(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid value id"})
		return
	}
	var input requirement.ReviewValueDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	userID, role, ok := requestIdentity(c)
	if !ok {
		return
	}

	value, err := h.svc.ReviewValue(c, id, userID, role, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, value)
}
