package utils

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func ParseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id parameter")
	}
	return uint(id), nil
}

// GenerateTrackingCode builds the short public code printed on activity
// receipts, e.g. "AKT-9F2C41DA".
func GenerateTrackingCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "AKT-" + strings.ToUpper(raw[:8])
}
