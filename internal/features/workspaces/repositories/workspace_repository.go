package workspaces_repositories

import (
	"time"

	users_enums "collabriq-backend/internal/features/users/enums"
	workspaces_models "collabriq-backend/internal/features/workspaces/models"
	"collabriq-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkspaceRepository struct{}

// JoinedWorkspaceRow is a workspace joined through a membership, with the
// member's role attached.
type JoinedWorkspaceRow struct {
	Workspace workspaces_models.Workspace `gorm:"embedded"`
	Role      users_enums.WorkspaceRole
}

// CreateWorkspaceWithOwner inserts the workspace and its creator membership
// in one transaction so a workspace never exists without its creator row.
func (r *WorkspaceRepository) CreateWorkspaceWithOwner(
	workspace *workspaces_models.Workspace,
) error {
	return storage.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(workspace).Error; err != nil {
			return err
		}

		membership := &workspaces_models.WorkspaceMembership{
			ID:          uuid.New(),
			WorkspaceID: workspace.ID,
			UserID:      workspace.OwnerID,
			Role:        users_enums.WorkspaceRoleCreator,
			CreatedAt:   time.Now().UTC(),
		}

		return tx.Create(membership).Error
	})
}

func (r *WorkspaceRepository) GetByID(
	workspaceID uuid.UUID,
) (*workspaces_models.Workspace, error) {
	var workspace workspaces_models.Workspace

	err := storage.GetDb().Where("id = ?", workspaceID).First(&workspace).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &workspace, nil
}

func (r *WorkspaceRepository) Save(workspace *workspaces_models.Workspace) error {
	return storage.GetDb().Save(workspace).Error
}

// DeleteWorkspaceCascade removes memberships, invitations and the workspace
// row in one transaction. Workspace-scoped data of other features is removed
// beforehand through deletion listeners.
func (r *WorkspaceRepository) DeleteWorkspaceCascade(workspaceID uuid.UUID) error {
	return storage.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("workspace_id = ?", workspaceID).
			Delete(&workspaces_models.WorkspaceMembership{}).Error; err != nil {
			return err
		}

		if err := tx.Where("workspace_id = ?", workspaceID).
			Delete(&workspaces_models.WorkspaceInvitation{}).Error; err != nil {
			return err
		}

		return tx.Delete(&workspaces_models.Workspace{}, workspaceID).Error
	})
}

func (r *WorkspaceRepository) FindOwnedByUser(
	userID uuid.UUID,
) ([]*workspaces_models.Workspace, error) {
	var workspaces []*workspaces_models.Workspace

	err := storage.GetDb().
		Where("owner_id = ?", userID).
		Order("created_at DESC").
		Find(&workspaces).Error

	return workspaces, err
}

func (r *WorkspaceRepository) FindJoinedByUser(
	userID uuid.UUID,
) ([]*JoinedWorkspaceRow, error) {
	var rows []*JoinedWorkspaceRow

	err := storage.GetDb().
		Table("workspaces").
		Select("workspaces.*, workspace_memberships.role AS role").
		Joins("JOIN workspace_memberships ON workspace_memberships.workspace_id = workspaces.id").
		Where("workspace_memberships.user_id = ? AND workspaces.owner_id <> ?", userID, userID).
		Order("workspaces.created_at DESC").
		Find(&rows).Error

	return rows, err
}

// SearchPublic matches public workspaces by name or description, skipping
// ones the user already belongs to.
func (r *WorkspaceRepository) SearchPublic(
	query string,
	excludeUserID uuid.UUID,
) ([]*workspaces_models.Workspace, error) {
	var workspaces []*workspaces_models.Workspace

	pattern := "%" + query + "%"

	err := storage.GetDb().
		Where("visibility = ?", "public").
		Where("(LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?))", pattern, pattern).
		Where(
			"id NOT IN (?)",
			storage.GetDb().
				Table("workspace_memberships").
				Select("workspace_id").
				Where("user_id = ?", excludeUserID),
		).
		Order("created_at DESC").
		Find(&workspaces).Error

	return workspaces, err
}

// TransferOwnershipForSale finalizes a workspace sale: every existing
// membership is dropped, the buyer becomes owner with a fresh creator
// membership, and the sale flags are cleared. All in one transaction.
func (r *WorkspaceRepository) TransferOwnershipForSale(
	workspaceID uuid.UUID,
	buyerID uuid.UUID,
) error {
	return storage.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("workspace_id = ?", workspaceID).
			Delete(&workspaces_models.WorkspaceMembership{}).Error; err != nil {
			return err
		}

		updates := map[string]any{
			"owner_id":               buyerID,
			"is_for_sale":            false,
			"sale_price_minor_units": nil,
			"sale_creator_id":        nil,
		}

		err := tx.Model(&workspaces_models.Workspace{}).
			Where("id = ?", workspaceID).
			Updates(updates).Error
		if err != nil {
			return err
		}

		membership := &workspaces_models.WorkspaceMembership{
			ID:          uuid.New(),
			WorkspaceID: workspaceID,
			UserID:      buyerID,
			Role:        users_enums.WorkspaceRoleCreator,
			CreatedAt:   time.Now().UTC(),
		}

		return tx.Create(membership).Error
	})
}
