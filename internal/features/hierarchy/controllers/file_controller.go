package hierarchy_controllers

import (
	"io"
	"net/http"

	hierarchy_dto "collabriq-backend/internal/features/hierarchy/dto"
	hierarchy_services "collabriq-backend/internal/features/hierarchy/services"
	users_middleware "collabriq-backend/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Uploads above this size are rejected before touching the blob store.
const maxUploadSizeBytes = 50 << 20

type FileController struct {
	fileService *hierarchy_services.FileService
}

func (c *FileController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/workspaces/:id/files", c.UploadFile)
	router.GET("/workspaces/files/:id/download", c.DownloadFile)
	router.GET("/workspaces/files/:id/content", c.ViewTextFile)
	router.PUT("/workspaces/files/:id/content", c.EditFile)
	router.PATCH("/workspaces/files/:id", c.RenameFile)
	router.DELETE("/workspaces/files/:id", c.DeleteFile)
}

// UploadFile
// @Summary Upload a file into a folder
// @Tags hierarchy
// @Accept multipart/form-data
// @Param id path string true "Workspace ID"
// @Param folderId formData string true "Folder ID"
// @Param description formData string false "Description"
// @Param file formData file true "Content"
// @Success 201 {object} hierarchy_models.File
// @Router /workspaces/{id}/files [post]
func (c *FileController) UploadFile(ctx *gin.Context) {
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

	folderID, err := uuid.Parse(ctx.PostForm("folderId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "a folder is required for file upload"})
		return
	}

	header, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "a file is required"})
		return
	}
	if header.Size > maxUploadSizeBytes {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "file is too large"})
		return
	}

	opened, err := header.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "failed to read uploaded file"})
		return
	}
	defer opened.Close()

	content, err := io.ReadAll(opened)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "failed to read uploaded file"})
		return
	}

	file, err := c.fileService.UploadFile(
		ctx.Request.Context(), user, workspaceID, folderID,
		header.Filename, ctx.PostForm("description"), content,
	)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, file)
}

// DownloadFile
// @Summary Download a file's raw content
// @Tags hierarchy
// @Param id path string true "File ID"
// @Success 200 {file} binary
// @Router /workspaces/files/{id}/download [get]
func (c *FileController) DownloadFile(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	fileID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid file id"})
		return
	}

	file, content, err := c.fileService.DownloadFile(ctx.Request.Context(), user, fileID)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+file.Name+`"`)
	ctx.Data(http.StatusOK, "application/octet-stream", content)
}

// ViewTextFile
// @Summary Text content of an editable file
// @Tags hierarchy
// @Param id path string true "File ID"
// @Success 200 {object} hierarchy_dto.FileContentResponseDTO
// @Router /workspaces/files/{id}/content [get]
func (c *FileController) ViewTextFile(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	fileID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid file id"})
		return
	}

	file, content, err := c.fileService.ViewTextFile(ctx.Request.Context(), user, fileID)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, hierarchy_dto.FileContentResponseDTO{
		ID:      file.ID,
		Name:    file.Name,
		Content: content,
	})
}

// EditFile
// @Summary Replace the text content of an editable file
// @Tags hierarchy
// @Accept json
// @Param id path string true "File ID"
// @Param request body hierarchy_dto.EditFileRequestDTO true "New content"
// @Success 200
// @Router /workspaces/files/{id}/content [put]
func (c *FileController) EditFile(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	fileID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid file id"})
		return
	}

	var request hierarchy_dto.EditFileRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	err = c.fileService.EditFile(ctx.Request.Context(), user, fileID, request.Content)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "file updated"})
}

// RenameFile
// @Summary Rename a file
// @Tags hierarchy
// @Accept json
// @Param id path string true "File ID"
// @Param request body hierarchy_dto.RenameRequestDTO true "New name"
// @Success 200
// @Router /workspaces/files/{id} [patch]
func (c *FileController) RenameFile(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	fileID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid file id"})
		return
	}

	var request hierarchy_dto.RenameRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "file name is required"})
		return
	}

	if err := c.fileService.RenameFile(user, fileID, request.Name); err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "file renamed"})
}

// DeleteFile
// @Summary Delete a file
// @Tags hierarchy
// @Param id path string true "File ID"
// @Success 200
// @Router /workspaces/files/{id} [delete]
func (c *FileController) DeleteFile(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	fileID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid file id"})
		return
	}

	if err := c.fileService.DeleteFile(ctx.Request.Context(), user, fileID); err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "file deleted"})
}
