package workspaces_controllers

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
		strings.HasPrefix(message, "only the workspace owner"),
		strings.Contains(message, "creator's role cannot be changed"),
		strings.Contains(message, "creator cannot be removed"):
		status = http.StatusForbidden
	}

	ctx.JSON(status, gin.H{"error": message})
}
