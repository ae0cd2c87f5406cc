package hierarchy_controllers

import (
	"net/http"

	hierarchy_dto "collabriq-backend/internal/features/hierarchy/dto"
	hierarchy_services "collabriq-backend/internal/features/hierarchy/services"
	users_middleware "collabriq-backend/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FolderController struct {
	folderService *hierarchy_services.FolderService
}

func (c *FolderController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/workspaces/:id/hierarchy", c.Resolve)
	router.POST("/workspaces/:id/folders", c.CreateFolder)
	router.GET("/workspaces/folders/:id/path", c.GetFolderPath)
	router.PATCH("/workspaces/folders/:id", c.RenameFolder)
	router.DELETE("/workspaces/folders/:id", c.DeleteFolder)
}

// Resolve
// @Summary Folders and files at one hierarchy level
// @Tags hierarchy
// @Param id path string true "Workspace ID"
// @Param folderId query string false "Folder ID, omitted for the root"
// @Success 200 {object} hierarchy_dto.ResolveResponseDTO
// @Router /workspaces/{id}/hierarchy [get]
func (c *FolderController) Resolve(ctx *gin.Context) {
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

	var folderID *uuid.UUID
	if raw := ctx.Query("folderId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid folder id"})
			return
		}
		folderID = &parsed
	}

	response, err := c.folderService.Resolve(user, workspaceID, folderID)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// CreateFolder
// @Summary Create a folder
// @Tags hierarchy
// @Accept json
// @Param id path string true "Workspace ID"
// @Param request body hierarchy_dto.CreateFolderRequestDTO true "Folder"
// @Success 201 {object} hierarchy_models.Folder
// @Router /workspaces/{id}/folders [post]
func (c *FolderController) CreateFolder(ctx *gin.Context) {
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

	var request hierarchy_dto.CreateFolderRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "folder name is required"})
		return
	}

	folder, err := c.folderService.CreateFolder(user, workspaceID, request.ParentID, request.Name)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, folder)
}

// GetFolderPath
// @Summary Breadcrumb path from the root to a folder
// @Tags hierarchy
// @Param id path string true "Folder ID"
// @Success 200 {array} hierarchy_dto.BreadcrumbDTO
// @Router /workspaces/folders/{id}/path [get]
func (c *FolderController) GetFolderPath(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	folderID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid folder id"})
		return
	}

	breadcrumbs, err := c.folderService.GetHierarchy(user, folderID)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, breadcrumbs)
}

// RenameFolder
// @Summary Rename a folder
// @Tags hierarchy
// @Accept json
// @Param id path string true "Folder ID"
// @Param request body hierarchy_dto.RenameRequestDTO true "New name"
// @Success 200
// @Router /workspaces/folders/{id} [patch]
func (c *FolderController) RenameFolder(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	folderID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid folder id"})
		return
	}

	var request hierarchy_dto.RenameRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "folder name is required"})
		return
	}

	if err := c.folderService.RenameFolder(user, folderID, request.Name); err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "folder renamed"})
}

// DeleteFolder
// @Summary Delete a folder and its whole subtree
// @Tags hierarchy
// @Param id path string true "Folder ID"
// @Success 200
// @Router /workspaces/folders/{id} [delete]
func (c *FolderController) DeleteFolder(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	folderID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid folder id"})
		return
	}

	if err := c.folderService.DeleteFolder(ctx.Request.Context(), user, folderID); err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "folder deleted"})
}
