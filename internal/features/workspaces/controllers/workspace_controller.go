package workspaces_controllers

import (
	"net/http"

	users_middleware "collabriq-backend/internal/features/users/middleware"
	workspaces_dto "collabriq-backend/internal/features/workspaces/dto"
	workspaces_services "collabriq-backend/internal/features/workspaces/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WorkspaceController struct {
	workspaceService *workspaces_services.WorkspaceService
}

func (c *WorkspaceController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/workspaces", c.CreateWorkspace)
	router.GET("/workspaces", c.ListWorkspaces)
	router.GET("/workspaces/search", c.SearchWorkspaces)
	router.GET("/workspaces/:id", c.GetWorkspace)
	router.PATCH("/workspaces/:id/visibility", c.ChangeVisibility)
	router.DELETE("/workspaces/:id", c.DeleteWorkspace)
}

// CreateWorkspace
// @Summary Create a workspace
// @Tags workspaces
// @Accept json
// @Param request body workspaces_dto.CreateWorkspaceRequestDTO true "Workspace"
// @Success 201 {object} workspaces_dto.WorkspaceResponseDTO
// @Router /workspaces [post]
func (c *WorkspaceController) CreateWorkspace(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var request workspaces_dto.CreateWorkspaceRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "name, description and visibility are required"})
		return
	}

	workspace, err := c.workspaceService.CreateWorkspace(user, &request)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, workspace)
}

// ListWorkspaces
// @Summary Workspaces the user owns or joined
// @Tags workspaces
// @Success 200 {object} workspaces_dto.WorkspaceListResponseDTO
// @Router /workspaces [get]
func (c *WorkspaceController) ListWorkspaces(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	response, err := c.workspaceService.ListWorkspaces(user)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// SearchWorkspaces
// @Summary Search public workspaces by name or description
// @Tags workspaces
// @Param q query string true "Search text"
// @Success 200 {array} workspaces_dto.WorkspaceResponseDTO
// @Router /workspaces/search [get]
func (c *WorkspaceController) SearchWorkspaces(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	query := ctx.Query("q")
	if query == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "search query is required"})
		return
	}

	results, err := c.workspaceService.SearchPublicWorkspaces(user, query)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, results)
}

// GetWorkspace
// @Summary Workspace details
// @Tags workspaces
// @Param id path string true "Workspace ID"
// @Success 200 {object} workspaces_dto.WorkspaceResponseDTO
// @Router /workspaces/{id} [get]
func (c *WorkspaceController) GetWorkspace(ctx *gin.Context) {
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

	response, err := c.workspaceService.GetWorkspace(user, workspaceID)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// ChangeVisibility
// @Summary Toggle workspace visibility
// @Tags workspaces
// @Accept json
// @Param id path string true "Workspace ID"
// @Param request body workspaces_dto.ChangeVisibilityRequestDTO true "Visibility"
// @Success 200 {object} workspaces_dto.WorkspaceResponseDTO
// @Router /workspaces/{id}/visibility [patch]
func (c *WorkspaceController) ChangeVisibility(ctx *gin.Context) {
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

	var request workspaces_dto.ChangeVisibilityRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "visibility is required"})
		return
	}

	workspace, err := c.workspaceService.ChangeVisibility(user, workspaceID, request.Visibility)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, workspace)
}

// DeleteWorkspace
// @Summary Delete a workspace and everything in it
// @Tags workspaces
// @Param id path string true "Workspace ID"
// @Success 200
// @Router /workspaces/{id} [delete]
func (c *WorkspaceController) DeleteWorkspace(ctx *gin.Context) {
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

	if err := c.workspaceService.DeleteWorkspace(user, workspaceID); err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "workspace deleted"})
}
