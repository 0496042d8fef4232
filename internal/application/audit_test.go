package application

import (
	"errors"
	"testing"
	"time"

	"github.com/danuartha/notaris-go/internal/domain/audit"
	"github.com/danuartha/notaris-go/internal/repository"
	"github.com/stretchr/testify/assert"
)

func TestQueryAuditLogs_FiltersPassedThrough(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewAuditService(repos)

	userID := uint(7)
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	params := repository.AuditQueryParams{
		UserID:    &userID,
		StartTime: &start,
		Limit:     50,
	}
	m.audit.EXPECT().GetAuditLogs(params).Return([]audit.AuditLog{{ID: 1, UserID: 7}}, nil)

	logs, err := svc.QueryAuditLogs(params)
	assert.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestCleanupOldLogs(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewAuditService(repos)

	m.audit.EXPECT().DeleteOldAuditLogs(30).Return(nil)
	assert.NoError(t, svc.CleanupOldLogs(30))

	m.audit.EXPECT().DeleteOldAuditLogs(7).Return(errors.New("db down"))
	assert.EqualError(t, svc.CleanupOldLogs(7), "db down")
}
