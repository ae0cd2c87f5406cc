package hierarchy_controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func respondWithServiceError(ctx *gin.Context, err error) {
	message := err.Error()

	status := http.StatusBadRequest
	switch {
	case strings.Contains(message, "not found"):
		status = http.StatusNotFound
	case strings.Contains(message, "permission"),
		strings.HasPrefix(message, "only the workspace owner"):
		status = http.StatusForbidden
	case strings.Contains(message, "failed to store"),
		strings.Contains(message, "failed to read"):
		status = http.StatusBadGateway
	}

	ctx.JSON(status, gin.H{"error": message})
}
