package utils

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/danuartha/notaris-go/internal/domain/audit"
	"github.com/danuartha/notaris-go/internal/repository"
	"github.com/gin-gonic/gin"
)

// LogAuditWithConsole records an audit entry after a successful mutation.
// Request data is extracted synchronously; the DB write runs on a background
// goroutine. Assignable so tests can stub it out.
var LogAuditWithConsole = func(c *gin.Context, action, resourceType, resourceID string, oldData, newData interface{}, msg string, repo repository.AuditRepo) {
	userID, _ := GetUserIDFromContext(c)
	ip := c.ClientIP()
	ua := c.GetHeader("User-Agent")

	go func() {
		if err := LogAudit(userID, ip, ua, action, resourceType, resourceID, oldData, newData, msg, repo); err != nil {
			fmt.Printf("[LogAudit] error: %v\n", err)
		}
	}()
}

var LogAudit = func(
	userID uint,
	ip string,
	ua string,
	action string,
	resourceType string,
	resourceID string,
	before any,
	after any,
	description string,
	repo repository.AuditRepo,
) error {
	var oldData, newData []byte
	var err error

	if before != nil {
		if oldData, err = json.Marshal(before); err != nil {
			log.Printf("[LogAudit] failed to marshal old data: %v", err)
		}
	}
	if after != nil {
		if newData, err = json.Marshal(after); err != nil {
			log.Printf("[LogAudit] failed to marshal new data: %v", err)
		}
	}

	entry := &audit.AuditLog{
		UserID:       userID,
		IP:           ip,
		UserAgent:    ua,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		OldData:      oldData,
		NewData:      newData,
		Description:  description,
	}
	return repo.CreateAuditLog(entry)
}
