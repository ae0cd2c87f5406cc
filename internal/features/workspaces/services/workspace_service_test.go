package workspaces_services

import (
	"testing"

	users_enums "collabriq-backend/internal/features/users/enums"
	users_models "collabriq-backend/internal/features/users/models"
	users_testing "collabriq-backend/internal/features/users/testing"
	workspaces_dto "collabriq-backend/internal/features/workspaces/dto"
	workspaces_enums "collabriq-backend/internal/features/workspaces/enums"
	workspaces_models "collabriq-backend/internal/features/workspaces/models"
	"collabriq-backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createWorkspace(
	t *testing.T,
	visibility workspaces_enums.WorkspaceVisibility,
) (*workspaces_models.Workspace, *users_models.User) {
	t.Helper()

	user, _ := users_testing.CreateTestUser(t)

	workspace, err := GetWorkspaceService().CreateWorkspace(
		user,
		&workspaces_dto.CreateWorkspaceRequestDTO{
			Name:        "research-space",
			Description: "shared research notes",
			Visibility:  visibility,
		},
	)
	require.NoError(t, err)

	return workspace, user
}

func Test_CreateWorkspace_CreatesExactlyOneCreatorMembership(t *testing.T) {
	workspace, owner := createWorkspace(t, workspaces_enums.VisibilityPrivate)

	var memberships []*workspaces_models.WorkspaceMembership
	err := storage.GetDb().
		Where("workspace_id = ?", workspace.ID).
		Find(&memberships).Error
	require.NoError(t, err)

	require.Len(t, memberships, 1)
	assert.Equal(t, owner.ID, memberships[0].UserID)
	assert.Equal(t, users_enums.WorkspaceRoleCreator, memberships[0].Role)
}

func Test_CreateWorkspace_RejectsInvalidVisibility(t *testing.T) {
	user, _ := users_testing.CreateTestUser(t)

	_, err := GetWorkspaceService().CreateWorkspace(
		user,
		&workspaces_dto.CreateWorkspaceRequestDTO{
			Name:        "broken",
			Description: "broken",
			Visibility:  "internal",
		},
	)
	require.Error(t, err)
	assert.Equal(t, "visibility must be public or private", err.Error())
}

func Test_Authorize_PrivateWorkspaceLooksMissingToOutsiders(t *testing.T) {
	workspace, _ := createWorkspace(t, workspaces_enums.VisibilityPrivate)
	outsider, _ := users_testing.CreateTestUser(t)

	_, err := GetWorkspaceService().Authorize(
		workspace.ID, outsider, workspaces_enums.CapabilityViewContent,
	)
	require.Error(t, err)
	assert.Equal(t, "workspace was not found", err.Error())
}

func Test_Authorize_PublicWorkspaceIsViewableByAnyUser(t *testing.T) {
	workspace, _ := createWorkspace(t, workspaces_enums.VisibilityPublic)
	outsider, _ := users_testing.CreateTestUser(t)

	_, err := GetWorkspaceService().Authorize(
		workspace.ID, outsider, workspaces_enums.CapabilityViewContent,
	)
	require.NoError(t, err)

	// Viewing is not editing.
	_, err = GetWorkspaceService().Authorize(
		workspace.ID, outsider, workspaces_enums.CapabilityEditContent,
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission")
}

func Test_ChangeVisibility_OwnerOnly(t *testing.T) {
	workspace, _ := createWorkspace(t, workspaces_enums.VisibilityPrivate)
	stranger, _ := users_testing.CreateTestUser(t)

	_, err := GetWorkspaceService().ChangeVisibility(
		stranger, workspace.ID, workspaces_enums.VisibilityPublic,
	)
	require.Error(t, err)
	assert.Equal(t, "only the workspace owner can perform this action", err.Error())
}

func Test_ChangeVisibility_TogglesAndPersists(t *testing.T) {
	workspace, owner := createWorkspace(t, workspaces_enums.VisibilityPrivate)

	updated, err := GetWorkspaceService().ChangeVisibility(
		owner, workspace.ID, workspaces_enums.VisibilityPublic,
	)
	require.NoError(t, err)
	assert.Equal(t, workspaces_enums.VisibilityPublic, updated.Visibility)

	reloaded, err := GetWorkspaceService().workspaceRepository.GetByID(workspace.ID)
	require.NoError(t, err)
	assert.Equal(t, workspaces_enums.VisibilityPublic, reloaded.Visibility)
}

func Test_SearchPublicWorkspaces_ExcludesJoinedAndPrivate(t *testing.T) {
	_, owner := createWorkspace(t, workspaces_enums.VisibilityPrivate)

	publicWorkspace, err := GetWorkspaceService().CreateWorkspace(
		owner,
		&workspaces_dto.CreateWorkspaceRequestDTO{
			Name:        "astro-photography-hub",
			Description: "deep sky images",
			Visibility:  workspaces_enums.VisibilityPublic,
		},
	)
	require.NoError(t, err)

	searcher, _ := users_testing.CreateTestUser(t)

	results, err := GetWorkspaceService().SearchPublicWorkspaces(searcher, "ASTRO-PHOTO")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, publicWorkspace.ID, results[0].ID)

	// Once joined, the workspace drops out of the searcher's results.
	require.NoError(t, GetMembershipService().JoinWorkspace(searcher, publicWorkspace.ID, nil))

	results, err = GetWorkspaceService().SearchPublicWorkspaces(searcher, "astro-photo")
	require.NoError(t, err)
	assert.Empty(t, results)

	// The owner never sees their own workspace in search.
	results, err = GetWorkspaceService().SearchPublicWorkspaces(owner, "astro-photo")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func Test_ListWorkspaces_SplitsOwnedAndJoined(t *testing.T) {
	workspace, _ := createWorkspace(t, workspaces_enums.VisibilityPublic)
	member, _ := users_testing.CreateTestUser(t)

	require.NoError(t, GetMembershipService().JoinWorkspace(member, workspace.ID, nil))

	response, err := GetWorkspaceService().ListWorkspaces(member)
	require.NoError(t, err)

	assert.Empty(t, response.Owned)
	require.Len(t, response.Joined, 1)
	assert.Equal(t, workspace.ID, response.Joined[0].ID)
	assert.Equal(t, users_enums.WorkspaceRoleViewer, response.Joined[0].Role)
}
