package audit_logs

import (
	"net/http"
	"strings"

	users_middleware "collabriq-backend/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuditLogController struct {
	auditLogService *AuditLogService
}

func (c *AuditLogController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/workspaces/:id/audit-logs", c.GetWorkspaceAuditLogs)
}

// GetWorkspaceAuditLogs
// @Summary Recent audit entries of a workspace
// @Tags audit-logs
// @Param id path string true "Workspace ID"
// @Success 200 {array} audit_logs.AuditLog
// @Router /workspaces/{id}/audit-logs [get]
func (c *AuditLogController) GetWorkspaceAuditLogs(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	workspaceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid workspace id"})
		return
	}

	entries, err := c.auditLogService.GetWorkspaceAuditLogs(user, workspaceID)
	if err != nil {
		status := http.StatusBadRequest
		if strings.Contains(err.Error(), "not found") {
			status = http.StatusNotFound
		}

		ctx.JSON(status, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, entries)
}
