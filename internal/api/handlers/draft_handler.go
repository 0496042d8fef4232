package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danuartha/notaris-go/internal/application"
	"github.com/danuartha/notaris-go/internal/domain/draft"
	"github.com/danuartha/notaris-go/pkg/response"
	"github.com/danuartha/notaris-go/pkg/utils"
)

type DraftHandler struct {
	svc *application.DraftService
}

func NewDraftHandler(svc *application.DraftService) *DraftHandler {
	return &DraftHandler{svc: svc}
}

// SaveDraft godoc
// @Summary Create or update the activity's draft deed
// @Tags drafts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Activity ID"
// @Param input body draft.SaveDraftDTO true "Draft content"
// @Success 200 {object} activity.Detail
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 403 {object} response.ErrorResponse "Forbidden"
// @Failure 404 {object} response.ErrorResponse "Activity not found"
// @Router /activities/{id}/draft [put]
func (h *DraftHandler) SaveDraft(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid activity id"})
		return
	}
	var input draft.SaveDraftDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	userID, role, ok := requestIdentity(c)
	if !ok {
		return
	}

	detail, err := h.svc.SaveDraft(c, id, userID, role, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Approve godoc
// @Summary Approve the draft as an invited party
// @Tags drafts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Activity ID"
// @Param input body draft.DecisionDTO false "Optional note"
// @Success 200 {object} activity.Detail
// @Failure 403 {object} response.ErrorResponse "Forbidden"
// @Failure 404 {object} response.ErrorResponse "Activity not found"
// @Failure 422 {object} response.ErrorResponse "Draft belum tersedia"
// @Router /activities/{id}/draft/approve [post]
func (h *DraftHandler) Approve(c *gin.Context) {
	h.decide(c, true)
}

// Reject godoc
// @Summary Reject the draft as an invited party
// @Tags drafts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Activity ID"
// @Param input body draft.DecisionDTO false "Optional note"
// @Success 200 {object} activity.Detail
// @Failure 403 {object} response.ErrorResponse "Forbidden"
// @Failure 404 {object} response.ErrorResponse "Activity not found"
// @Failure 422 {object} response.ErrorResponse "Draft belum tersedia"
// @Router /activities/{id}/draft/reject [post]
func (h *DraftHandler) Reject(c *gin.Context) {
	h.decide(c, false)
}

func (h *DraftHandler) decide(c *gin.Context, approve bool) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid activity id"})
		return
	}
	var input draft.DecisionDTO
	// The note body is optional, a bare POST is fine.
	_ = c.ShouldBind(&input)

	userID, role, ok := requestIdentity(c)
	if !ok {
		return
	}

	detail, err := h.svc.Decide(c, id, userID, role, approve, input.Note)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// UploadFile godoc
// @Summary Upload a draft document file
// @Tags drafts
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Activity ID"
// @Param file formData file true "Draft file"
// @Success 200 {object} activity.Detail
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 403 {object} response.ErrorResponse "Forbidden"
// @Failure 404 {object} response.ErrorResponse "Activity not found"
// @Router /activities/{id}/draft/file [post]
func (h *DraftHandler) UploadFile(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid activity id"})
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

	detail, err := h.svc.UploadFile(c, id, userID, role, header)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Render godoc
// @Summary Store the rendered deed document for an activity
// @Tags drafts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Activity ID"
// @Param input body draft.RenderDTO true "Rendered HTML and pdf options"
// @Success 200 {object} activity.Detail
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 403 {object} response.ErrorResponse "Forbidden"
// @Failure 404 {object} response.ErrorResponse "Activity not found"
// @Router /activities/{id}/draft/render [post]
func (h *DraftHandler) Render(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid activity id"})
		return
	}
	var input draft.RenderDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	userID, role, ok := requestIdentity(c)
	if !ok {
		return
	}

	detail, err := h.svc.Render(c, id, userID, role, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}
