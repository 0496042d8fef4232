package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danuartha/notaris-go/internal/application"
	"github.com/danuartha/notaris-go/internal/domain/activity"
	"github.com/danuartha/notaris-go/internal/domain/track"
	"github.com/danuartha/notaris-go/internal/domain/user"
	"github.com/danuartha/notaris-go/pkg/response"
	"github.com/danuartha/notaris-go/pkg/utils"
)

type ActivityHandler struct {
	svc  *application.ActivityService
	flow *application.FlowService
}

func NewActivityHandler(svc *application.ActivityService, flow *application.FlowService) *ActivityHandler {
	return &ActivityHandler{svc: svc, flow: flow}
}

func requestIdentity(c *gin.Context) (uint, user.Role, bool) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return 0, user.RoleUnknown, false
	}
	return claims.UserID, user.RoleFromID(claims.RoleID), true
}

// ListActivities godoc
// @Summary List activities visible to the current user
// @Tags activities
// @Security BearerAuth
// @Produce json
// @Success 200 {array} activity.Activity
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /activities [get]
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	userID, role, ok := requestIdentity(c)
	if !ok {
		return
	}

	activities, err := h.svc.ListActivitiesFor(userID, role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, activities)
}

// GetActivity godoc
// @Summary Get an activity with its derived step track
// @Tags activities
// @Security BearerAuth
// @Produce json
// @Param id path int true "Activity ID"
// @Success 200 {object} activity.Detail
// @Failure 400 {object} response.ErrorResponse "Invalid activity id"
// @Failure 403 {object} response.ErrorResponse "Forbidden"
// @Failure 404 {object} response.ErrorResponse "Activity not found"
// @Router /activities/{id} [get]
func (h *ActivityHandler) GetActivity(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid activity id"})
		return
	}
	userID, role, ok := requestIdentity(c)
	if !ok {
		return
	}

	detail, err := h.flow.GetDetail(id, userID, role)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// CreateActivity godoc
// @Summary Create an activity for a deed with its initial parties
// @Tags activities
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body activity.CreateActivityDTO true "Activity info"
// @Success 201 {object} activity.Detail
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 403 {object} response.ErrorResponse "Forbidden"
// @Failure 422 {object} response.ErrorResponse "Party count mismatch"
// @Router /activities [post]
func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	var input activity.CreateActivityDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	userID, role, ok := requestIdentity(c)
	if !ok {
		return
	}

	detail, err := h.svc.CreateActivity(c, userID, role, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, detail)
}

// UpdateActivity godoc
// @Summary Update an activity's name, deed, or party list
// @Tags activities
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Activity ID"
// @Param input body activity.UpdateActivityDTO true "Fields to update"
// @Success 200 {object} activity.Detail
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 403 {object} response.ErrorResponse "Forbidden"
// @Failure 404 {object} response.ErrorResponse "Activity not found"
// @Failure 422 {object} response.ErrorResponse "Party count mismatch"
// @Router /activities/{id} [put]
func (h *ActivityHandler) UpdateActivity(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid activity id"})
		return
	}
	var input activity.UpdateActivityDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	userID, role, ok := requestIdentity(c)
	if !ok {
		return
	}

	detail, err := h.svc.UpdateActivity(c, id, userID, role, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// DeleteActivity godoc
// @Summary Delete an activity and its track
// @Tags activities
// @Security BearerAuth
// @Produce json
// @Param id path int true "Activity ID"
// @Success 204 "No Content"
// @Failure 400 {object} response.ErrorResponse "Invalid activity id"
// @Failure 403 {object} response.ErrorResponse "Forbidden"
// @Failure 404 {object} response.ErrorResponse "Activity not found"
// @Router /activities/{id} [delete]
func (h *ActivityHandler) DeleteActivity(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid activity id"})
		return
	}
	userID, role, ok := requestIdentity(c)
	if !ok {
		return
	}

	if err := h.svc.DeleteActivity(c, id, userID, role); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddParty godoc
// @Summary Invite a client to an activity
// @Tags activities
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Activity ID"
// @Param input body activity.AddClientDTO true "Client to invite"
// @Success 200 {object} activity.Detail
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 403 {object} response.ErrorResponse "Forbidden"
// @Failure 404 {object} response.ErrorResponse "Activity not found"
// @Failure 422 {object} response.ErrorResponse "Already invited"
// @Router /activities/{id}/clients [post]
func (h *ActivityHandler) AddParty(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid activity id"})
		return
	}
	var input activity.AddClientDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	userID, role, ok := requestIdentity(c)
	if !ok {
		return
	}

	detail, err := h.svc.AddParty(c, id, userID, role, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// RemoveParty godoc
// @Summary Remove an invited client from an activity
// @Tags activities
// @Security BearerAuth
// @Produce json
// @Param id path int true "Activity ID"
// @Param user_id path int true "Client user ID"
// @Success 200 {object} activity.Detail
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 403 {object} response.ErrorResponse "Forbidden"
// @Failure 404 {object} response.ErrorResponse "Activity not found"
// @Router /activities/{id}/clients/{user_id} [delete]
func (h *ActivityHandler) RemoveParty(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid activity id"})
		return
	}
	targetID, err := utils.ParseIDParam(c, "user_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid user id"})
		return
	}
	userID, role, ok := requestIdentity(c)
	if !ok {
		return
	}

	detail, err := h.svc.RemoveParty(c, id, targetID, userID, role)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Respond godoc
// @Summary Approve or reject an invitation as a client
// @Tags activities
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Activity ID"
// @Param input body activity.RespondDTO true "Decision"
// @Success 200 {object} activity.Detail
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 403 {object} response.ErrorResponse "Forbidden"
// @Failure 404 {object} response.ErrorResponse "Activity not found"
// @Failure 422 {object} response.ErrorResponse "Not an invited party"
// @Router /activities/{id}/respond [post]
func (h *ActivityHandler) Respond(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid activity id"})
		return
	}
	var input activity.RespondDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	userID, role, ok := requestIdentity(c)
	if !ok {
		return
	}

	detail, err := h.svc.Respond(c, id, userID, role, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// MarkStepDone godoc
// @Summary Mark a manual workflow step as done
// @Tags activities
// @Security BearerAuth
// @Produce json
// @Param id path int true "Activity ID"
// @Param step path string true "Step key (docs, schedule, sign, print)"
// @Success 200 {object} activity.Detail
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 403 {object} response.ErrorResponse "Forbidden"
// @Failure 404 {object} response.ErrorResponse "Activity not found"
// @Failure 422 {object} response.ErrorResponse "Step locked or not manual"
// @Router /activities/{id}/steps/{step}/done [post]
func (h *ActivityHandler) MarkStepDone(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid activity id"})
		return
	}
	userID, role, ok := requestIdentity(c)
	if !ok {
		return
	}

	step := track.Step(c.Param("step"))
	detail, err := h.flow.MarkStepDone(c, id, step, userID, role)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}
