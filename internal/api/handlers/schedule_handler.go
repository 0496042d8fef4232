package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danuartha/notaris-go/internal/application"
	"github.com/danuartha/notaris-go/internal/domain/schedule"
	"github.com/danuartha/notaris-go/pkg/response"
	"github.com/danuartha/notaris-go/pkg/utils"
)

type ScheduleHandler struct {
	svc *application.ScheduleService
}

func NewScheduleHandler(svc *application.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{svc: svc}
}

// SaveSchedule godoc
// @Summary Create or replace the activity's signing schedule
// @Tags schedules
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body schedule.SaveScheduleDTO true "Schedule info; datetime or date+time"
// @Success 200 {object} activity.Detail
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 403 {object} response.ErrorResponse "Forbidden"
// @Failure 404 {object} response.ErrorResponse "Activity not found"
// @Failure 422 {object} response.ValidationErrorResponse "Field validation errors"
// @Router /schedules [post]
func (h *ScheduleHandler) SaveSchedule(c *gin.Context) {
	var input schedule.SaveScheduleDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	userID, role, ok := requestIdentity(c)
	if !ok {
		return
	}

	detail, err := h.svc.SaveSchedule(c, userID, role, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// DeleteSchedule godoc
// @Summary Delete a schedule
// @Tags schedules
// @Security BearerAuth
// @Produce json
// @Param id path int true "Schedule ID"
// @Success 200 {object} activity.Detail
// @Failure 400 {object} response.ErrorResponse "Invalid schedule id"
// @Failure 403 {object} response.ErrorResponse "Forbidden"
// @Failure 404 {object} response.ErrorResponse "Schedule not found"
// @Router /schedules/{id} [delete]
func (h *ScheduleHandler) DeleteSchedule(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid schedule id"})
		return
	}
	userID, role, ok := requestIdentity(c)
	if !ok {
		return
	}

	detail, err := h.svc.DeleteSchedule(c, id, userID, role)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}
