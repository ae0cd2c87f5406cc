package discussions

import (
	"net/http"
	"strings"

	users_middleware "collabriq-backend/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DiscussionController struct {
	discussionService *DiscussionService
}

func (c *DiscussionController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/workspaces/:id/messages", c.ListMessages)
	router.POST("/workspaces/:id/messages", c.PostMessage)
	router.DELETE("/workspaces/messages/:id", c.DeleteMessage)
}

// ListMessages
// @Summary Workspace discussion, newest first
// @Tags discussions
// @Param id path string true "Workspace ID"
// @Success 200 {array} discussions.MessageResponseDTO
// @Router /workspaces/{id}/messages [get]
func (c *DiscussionController) ListMessages(ctx *gin.Context) {
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

	messages, err := c.discussionService.ListMessages(user, workspaceID)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, messages)
}

// PostMessage
// @Summary Post a discussion message
// @Tags discussions
// @Accept json
// @Param id path string true "Workspace ID"
// @Param request body discussions.PostMessageRequestDTO true "Message"
// @Success 201 {object} discussions.DiscussionMessage
// @Router /workspaces/{id}/messages [post]
func (c *DiscussionController) PostMessage(ctx *gin.Context) {
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

	var request PostMessageRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "message cannot be empty"})
		return
	}

	message, err := c.discussionService.PostMessage(user, workspaceID, request.Message)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, message)
}

// DeleteMessage
// @Summary Delete a discussion message
// @Tags discussions
// @Param id path string true "Message ID"
// @Success 200
// @Router /workspaces/messages/{id} [delete]
func (c *DiscussionController) DeleteMessage(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	messageID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid message id"})
		return
	}

	if err := c.discussionService.DeleteMessage(user, messageID); err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "message deleted"})
}

func respondWithServiceError(ctx *gin.Context, err error) {
	message := err.Error()

	status := http.StatusBadRequest
	switch {
	case strings.Contains(message, "not found"):
		status = http.StatusNotFound
	case strings.Contains(message, "permission"),
		strings.HasPrefix(message, "only the workspace owner"):
		status = http.StatusForbidden
	}

	ctx.JSON(status, gin.H{"error": message})
}
