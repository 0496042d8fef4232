package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danuartha/notaris-go/internal/application"
	"github.com/danuartha/notaris-go/pkg/response"
)

// writeServiceError maps application errors onto the wire contract: not-found
// errors become 404, permission errors 403, workflow and validation failures
// 422 (with a field map when the service provides one), everything else 500.
func writeServiceError(c *gin.Context, err error) {
	var partyErr *application.PartyCountError
	if errors.As(err, &partyErr) {
		c.JSON(http.StatusUnprocessableEntity, response.ErrorResponse{Error: partyErr.Error()})
		return
	}

	var schedErr *application.ScheduleValidationError
	if errors.As(err, &schedErr) {
		c.JSON(http.StatusUnprocessableEntity, response.ValidationErrorResponse{
			Message: "Validasi gagal.",
			Errors:  schedErr.Fields,
		})
		return
	}

	switch {
	case errors.Is(err, application.ErrActivityNotFound),
		errors.Is(err, application.ErrDeedNotFound),
		errors.Is(err, application.ErrClientNotFound),
		errors.Is(err, application.ErrScheduleNotFound),
		errors.Is(err, application.ErrRequirementNotFound),
		errors.Is(err, application.ErrValueNotFound),
		errors.Is(err, application.ErrUserNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrForbidden):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrDraftMissing),
		errors.Is(err, application.ErrAlreadyInvited),
		errors.Is(err, application.ErrNotAParty),
		errors.Is(err, application.ErrInvalidStep),
		errors.Is(err, application.ErrStepNotManual),
		errors.Is(err, application.ErrStepLocked),
		errors.Is(err, application.ErrNotExtraRequirement),
		errors.Is(err, application.ErrDeedInUse):
		c.JSON(http.StatusUnprocessableEntity, response.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}
