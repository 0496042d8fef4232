package cron

import (
	"log"
	"time"

	"github.com/danuartha/notaris-go/internal/application"
	"github.com/danuartha/notaris-go/internal/config"
)

func StartCleanupTask(auditService *application.AuditService) {
	go func() {
		retention := config.AuditRetentionDays
		if retention <= 0 {
			retention = 30
		}
		log.Printf("Starting background cleanup task (retention: %d days)", retention)

		// Run immediately on startup
		if err := auditService.CleanupOldLogs(retention); err != nil {
			log.Printf("Failed to cleanup old audit logs: %v", err)
		}

		// Then run every 24 hours
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			log.Println("Running scheduled audit log cleanup...")
			if err := auditService.CleanupOldLogs(retention); err != nil {
				log.Printf("Failed to cleanup old audit logs: %v", err)
			} else {
				log.Println("Audit log cleanup completed successfully")
			}
		}
	}()
}
