package workspaces_controllers

import (
	"net/http"

	users_middleware "collabriq-backend/internal/features/users/middleware"
	workspaces_dto "collabriq-backend/internal/features/workspaces/dto"
	workspaces_services "collabriq-backend/internal/features/workspaces/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MembershipController struct {
	membershipService *workspaces_services.MembershipService
}

func (c *MembershipController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/workspaces/:id/members", c.GetMembers)
	router.POST("/workspaces/:id/invitations", c.InviteUser)
	router.POST("/workspaces/:id/join", c.JoinWorkspace)
	router.PATCH("/workspaces/memberships/:id/role", c.ChangeMemberRole)
	router.DELETE("/workspaces/memberships/:id", c.RemoveMember)
}

// GetMembers
// @Summary Members of a workspace
// @Tags memberships
// @Param id path string true "Workspace ID"
// @Success 200 {array} workspaces_dto.MemberResponseDTO
// @Router /workspaces/{id}/members [get]
func (c *MembershipController) GetMembers(ctx *gin.Context) {
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

	members, err := c.membershipService.GetMembers(user, workspaceID)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, members)
}

// InviteUser
// @Summary Invite an email to a workspace
// @Tags memberships
// @Accept json
// @Param id path string true "Workspace ID"
// @Param request body workspaces_dto.InviteUserRequestDTO true "Invitee"
// @Success 201
// @Router /workspaces/{id}/invitations [post]
func (c *MembershipController) InviteUser(ctx *gin.Context) {
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

	var request workspaces_dto.InviteUserRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "a valid email is required"})
		return
	}

	if err := c.membershipService.InviteUser(user, workspaceID, request.Email); err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "invitation sent"})
}

// JoinWorkspace
// @Summary Join a public workspace or redeem an invitation token
// @Tags memberships
// @Accept json
// @Param id path string true "Workspace ID"
// @Param request body workspaces_dto.JoinWorkspaceRequestDTO false "Invitation token"
// @Success 200
// @Router /workspaces/{id}/join [post]
func (c *MembershipController) JoinWorkspace(ctx *gin.Context) {
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

	var request workspaces_dto.JoinWorkspaceRequestDTO
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
	}

	// The emailed link carries the token as a query parameter.
	if request.Token == nil {
		if raw := ctx.Query("token"); raw != "" {
			token, err := uuid.Parse(raw)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid invitation token"})
				return
			}
			request.Token = &token
		}
	}

	if err := c.membershipService.JoinWorkspace(user, workspaceID, request.Token); err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "joined workspace"})
}

// ChangeMemberRole
// @Summary Change a member's role
// @Tags memberships
// @Accept json
// @Param id path string true "Membership ID"
// @Param request body workspaces_dto.ChangeRoleRequestDTO true "New role"
// @Success 200
// @Router /workspaces/memberships/{id}/role [patch]
func (c *MembershipController) ChangeMemberRole(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	membershipID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid membership id"})
		return
	}

	var request workspaces_dto.ChangeRoleRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "role is required"})
		return
	}

	if err := c.membershipService.ChangeMemberRole(user, membershipID, request.Role); err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "role updated"})
}

// RemoveMember
// @Summary Remove a member from a workspace
// @Tags memberships
// @Param id path string true "Membership ID"
// @Success 200
// @Router /workspaces/memberships/{id} [delete]
func (c *MembershipController) RemoveMember(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	membershipID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid membership id"})
		return
	}

	if err := c.membershipService.RemoveMember(user, membershipID); err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "member removed"})
}
