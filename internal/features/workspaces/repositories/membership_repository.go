package workspaces_repositories

import (
	"time"

	users_enums "collabriq-backend/internal/features/users/enums"
	workspaces_models "collabriq-backend/internal/features/workspaces/models"
	"collabriq-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MembershipRepository struct{}

// MemberRow is a membership joined with its user's public fields.
type MemberRow struct {
	MembershipID uuid.UUID
	UserID       uuid.UUID
	Username     string
	Email        string
	Role         users_enums.WorkspaceRole
	JoinedAt     time.Time
}

func (r *MembershipRepository) FindMembersWithUsers(
	workspaceID uuid.UUID,
) ([]*MemberRow, error) {
	var rows []*MemberRow

	err := storage.GetDb().
		Table("workspace_memberships").
		Select(
			"workspace_memberships.id AS membership_id, " +
				"users.id AS user_id, users.username, users.email, " +
				"workspace_memberships.role, " +
				"workspace_memberships.created_at AS joined_at",
		).
		Joins("JOIN users ON users.id = workspace_memberships.user_id").
		Where("workspace_memberships.workspace_id = ?", workspaceID).
		Order("workspace_memberships.created_at ASC").
		Find(&rows).Error

	return rows, err
}

func (r *MembershipRepository) Create(membership *workspaces_models.WorkspaceMembership) error {
	return storage.GetDb().Create(membership).Error
}

func (r *MembershipRepository) GetByID(
	membershipID uuid.UUID,
) (*workspaces_models.WorkspaceMembership, error) {
	var membership workspaces_models.WorkspaceMembership

	err := storage.GetDb().Where("id = ?", membershipID).First(&membership).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &membership, nil
}

func (r *MembershipRepository) GetByWorkspaceAndUser(
	workspaceID uuid.UUID,
	userID uuid.UUID,
) (*workspaces_models.WorkspaceMembership, error) {
	var membership workspaces_models.WorkspaceMembership

	err := storage.GetDb().
		Where("workspace_id = ? AND user_id = ?", workspaceID, userID).
		First(&membership).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &membership, nil
}

func (r *MembershipRepository) FindByWorkspaceID(
	workspaceID uuid.UUID,
) ([]*workspaces_models.WorkspaceMembership, error) {
	var memberships []*workspaces_models.WorkspaceMembership

	err := storage.GetDb().
		Where("workspace_id = ?", workspaceID).
		Order("created_at ASC").
		Find(&memberships).Error

	return memberships, err
}

func (r *MembershipRepository) UpdateRole(
	membershipID uuid.UUID,
	role users_enums.WorkspaceRole,
) error {
	return storage.GetDb().Model(&workspaces_models.WorkspaceMembership{}).
		Where("id = ?", membershipID).
		Update("role", role).Error
}

func (r *MembershipRepository) Delete(membershipID uuid.UUID) error {
	return storage.GetDb().
		Delete(&workspaces_models.WorkspaceMembership{}, membershipID).Error
}

func (r *MembershipRepository) CountByWorkspaceAndRole(
	workspaceID uuid.UUID,
	role users_enums.WorkspaceRole,
) (int64, error) {
	var count int64

	err := storage.GetDb().Model(&workspaces_models.WorkspaceMembership{}).
		Where("workspace_id = ? AND role = ?", workspaceID, role).
		Count(&count).Error

	return count, err
}
