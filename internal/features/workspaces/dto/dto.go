package workspaces_dto

import (
	"time"

	users_enums "collabriq-backend/internal/features/users/enums"
	workspaces_enums "collabriq-backend/internal/features/workspaces/enums"

	"github.com/google/uuid"
)

type CreateWorkspaceRequestDTO struct {
	Name        string                               `json:"name"        binding:"required,min=1,max=200"`
	Description string                               `json:"description" binding:"required,min=1"`
	Visibility  workspaces_enums.WorkspaceVisibility `json:"visibility"  binding:"required"`
}

type ChangeVisibilityRequestDTO struct {
	Visibility workspaces_enums.WorkspaceVisibility `json:"visibility" binding:"required"`
}

type WorkspaceResponseDTO struct {
	ID          uuid.UUID                            `json:"id"`
	Name        string                               `json:"name"`
	Description string                               `json:"description"`
	Visibility  workspaces_enums.WorkspaceVisibility `json:"visibility"`
	OwnerID     uuid.UUID                            `json:"ownerId"`
	IsForSale   bool                                 `json:"isForSale"`
	SalePrice   *int64                               `json:"salePrice,omitempty"`
	CreatedAt   time.Time                            `json:"createdAt"`

	// Role of the requesting user, empty when they are not a member.
	Role users_enums.WorkspaceRole `json:"role,omitempty"`
}

type WorkspaceListResponseDTO struct {
	Owned  []WorkspaceResponseDTO `json:"owned"`
	Joined []WorkspaceResponseDTO `json:"joined"`
}

type MemberResponseDTO struct {
	MembershipID uuid.UUID                 `json:"membershipId"`
	UserID       uuid.UUID                 `json:"userId"`
	Username     string                    `json:"username"`
	Email        string                    `json:"email"`
	Role         users_enums.WorkspaceRole `json:"role"`
	JoinedAt     time.Time                 `json:"joinedAt"`
}

type InviteUserRequestDTO struct {
	Email string `json:"email" binding:"required,email"`
}

type JoinWorkspaceRequestDTO struct {
	// Token is omitted when joining a public workspace directly.
	Token *uuid.UUID `json:"token"`
}

type ChangeRoleRequestDTO struct {
	Role users_enums.WorkspaceRole `json:"role" binding:"required"`
}
