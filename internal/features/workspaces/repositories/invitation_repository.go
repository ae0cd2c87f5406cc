package workspaces_repositories

import (
	workspaces_models "collabriq-backend/internal/features/workspaces/models"
	"collabriq-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvitationRepository struct{}

func (r *InvitationRepository) Create(invitation *workspaces_models.WorkspaceInvitation) error {
	return storage.GetDb().Create(invitation).Error
}

func (r *InvitationRepository) GetByWorkspaceAndEmail(
	workspaceID uuid.UUID,
	email string,
) (*workspaces_models.WorkspaceInvitation, error) {
	var invitation workspaces_models.WorkspaceInvitation

	err := storage.GetDb().
		Where("workspace_id = ? AND email = ?", workspaceID, email).
		First(&invitation).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &invitation, nil
}

func (r *InvitationRepository) GetByWorkspaceAndToken(
	workspaceID uuid.UUID,
	token uuid.UUID,
) (*workspaces_models.WorkspaceInvitation, error) {
	var invitation workspaces_models.WorkspaceInvitation

	err := storage.GetDb().
		Where("workspace_id = ? AND token = ?", workspaceID, token).
		First(&invitation).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &invitation, nil
}

func (r *InvitationRepository) Delete(invitationID uuid.UUID) error {
	return storage.GetDb().
		Delete(&workspaces_models.WorkspaceInvitation{}, invitationID).Error
}
