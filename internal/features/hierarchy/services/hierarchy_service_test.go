package hierarchy_services

import (
	"context"
	"os"
	"testing"

	hierarchy_models "collabriq-backend/internal/features/hierarchy/models"
	users_models "collabriq-backend/internal/features/users/models"
	users_testing "collabriq-backend/internal/features/users/testing"
	workspaces_enums "collabriq-backend/internal/features/workspaces/enums"
	workspaces_models "collabriq-backend/internal/features/workspaces/models"
	workspaces_services "collabriq-backend/internal/features/workspaces/services"
	workspaces_testing "collabriq-backend/internal/features/workspaces/testing"
	"collabriq-backend/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	SetupDependencies()
	os.Exit(m.Run())
}

func newWorkspace(t *testing.T) (*workspaces_models.Workspace, *users_models.User) {
	t.Helper()

	owner, _ := users_testing.CreateTestUser(t)
	workspace := workspaces_testing.CreateTestWorkspace(
		t, owner, workspaces_enums.VisibilityPrivate,
	)

	return workspace, owner
}

func Test_CreateFolder_RootAndNested(t *testing.T) {
	workspace, owner := newWorkspace(t)

	root, err := GetFolderService().CreateFolder(owner, workspace.ID, nil, "docs")
	require.NoError(t, err)
	assert.Nil(t, root.ParentID)

	child, err := GetFolderService().CreateFolder(owner, workspace.ID, &root.ID, "drafts")
	require.NoError(t, err)
	require.NotNil(t, child.ParentID)
	assert.Equal(t, root.ID, *child.ParentID)
}

func Test_CreateFolder_RequiresEditorRole(t *testing.T) {
	owner, _ := users_testing.CreateTestUser(t)
	workspace := workspaces_testing.CreateTestWorkspace(
		t, owner, workspaces_enums.VisibilityPublic,
	)

	viewer, _ := users_testing.CreateTestUser(t)
	require.NoError(
		t, workspaces_services.GetMembershipService().JoinWorkspace(viewer, workspace.ID, nil),
	)

	_, err := GetFolderService().CreateFolder(viewer, workspace.ID, nil, "notes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission")
}

func Test_CreateFolder_ParentFromAnotherWorkspaceRejected(t *testing.T) {
	workspaceA, ownerA := newWorkspace(t)
	workspaceB, ownerB := newWorkspace(t)

	foreignParent, err := GetFolderService().CreateFolder(ownerB, workspaceB.ID, nil, "other")
	require.NoError(t, err)

	_, err = GetFolderService().CreateFolder(ownerA, workspaceA.ID, &foreignParent.ID, "sneaky")
	require.Error(t, err)
	assert.Equal(t, "parent folder was not found", err.Error())
}

func Test_Resolve_RootListsFoldersAndNoFiles(t *testing.T) {
	workspace, owner := newWorkspace(t)

	folder, err := GetFolderService().CreateFolder(owner, workspace.ID, nil, "assets")
	require.NoError(t, err)

	_, err = GetFileService().UploadFile(
		context.Background(), owner, workspace.ID, folder.ID,
		"readme.md", "intro", []byte("# hello"),
	)
	require.NoError(t, err)

	root, err := GetFolderService().Resolve(owner, workspace.ID, nil)
	require.NoError(t, err)
	assert.Len(t, root.Folders, 1)
	assert.Empty(t, root.Files)

	level, err := GetFolderService().Resolve(owner, workspace.ID, &folder.ID)
	require.NoError(t, err)
	assert.Empty(t, level.Folders)
	require.Len(t, level.Files, 1)
	assert.Equal(t, "readme.md", level.Files[0].Name)
	assert.True(t, level.Files[0].IsEditable)
}

func Test_GetHierarchy_ReturnsRootToSelfPath(t *testing.T) {
	workspace, owner := newWorkspace(t)

	a, err := GetFolderService().CreateFolder(owner, workspace.ID, nil, "a")
	require.NoError(t, err)
	b, err := GetFolderService().CreateFolder(owner, workspace.ID, &a.ID, "b")
	require.NoError(t, err)
	c, err := GetFolderService().CreateFolder(owner, workspace.ID, &b.ID, "c")
	require.NoError(t, err)

	breadcrumbs, err := GetFolderService().GetHierarchy(owner, c.ID)
	require.NoError(t, err)

	require.Len(t, breadcrumbs, 3)
	assert.Equal(t, "a", breadcrumbs[0].Name)
	assert.Equal(t, "b", breadcrumbs[1].Name)
	assert.Equal(t, "c", breadcrumbs[2].Name)
}

func Test_DeleteFolder_RemovesWholeSubtree(t *testing.T) {
	workspace, owner := newWorkspace(t)
	ctx := context.Background()

	top, err := GetFolderService().CreateFolder(owner, workspace.ID, nil, "top")
	require.NoError(t, err)
	middle, err := GetFolderService().CreateFolder(owner, workspace.ID, &top.ID, "middle")
	require.NoError(t, err)
	bottom, err := GetFolderService().CreateFolder(owner, workspace.ID, &middle.ID, "bottom")
	require.NoError(t, err)

	_, err = GetFileService().UploadFile(
		ctx, owner, workspace.ID, bottom.ID, "deep.txt", "", []byte("deep"),
	)
	require.NoError(t, err)

	sibling, err := GetFolderService().CreateFolder(owner, workspace.ID, nil, "sibling")
	require.NoError(t, err)

	require.NoError(t, GetFolderService().DeleteFolder(ctx, owner, top.ID))

	var folderCount int64
	require.NoError(t, storage.GetDb().Model(&hierarchy_models.Folder{}).
		Where("workspace_id = ?", workspace.ID).Count(&folderCount).Error)
	assert.Equal(t, int64(1), folderCount)

	var fileCount int64
	require.NoError(t, storage.GetDb().Model(&hierarchy_models.File{}).
		Where("workspace_id = ?", workspace.ID).Count(&fileCount).Error)
	assert.Equal(t, int64(0), fileCount)

	remaining, err := GetFolderService().Resolve(owner, workspace.ID, nil)
	require.NoError(t, err)
	require.Len(t, remaining.Folders, 1)
	assert.Equal(t, sibling.ID, remaining.Folders[0].ID)
}

func Test_UploadFile_RequiresExistingFolder(t *testing.T) {
	workspace, owner := newWorkspace(t)

	_, err := GetFileService().UploadFile(
		context.Background(), owner, workspace.ID, uuid.New(),
		"orphan.txt", "", []byte("content"),
	)
	require.Error(t, err)
	assert.Equal(t, "folder was not found", err.Error())
}

func Test_ViewAndEditTextFile_RoundTrip(t *testing.T) {
	workspace, owner := newWorkspace(t)
	ctx := context.Background()

	folder, err := GetFolderService().CreateFolder(owner, workspace.ID, nil, "scripts")
	require.NoError(t, err)

	file, err := GetFileService().UploadFile(
		ctx, owner, workspace.ID, folder.ID, "run.py", "", []byte("print('hi')"),
	)
	require.NoError(t, err)
	require.True(t, file.IsEditable)

	_, content, err := GetFileService().ViewTextFile(ctx, owner, file.ID)
	require.NoError(t, err)
	assert.Equal(t, "print('hi')", content)

	require.NoError(t, GetFileService().EditFile(ctx, owner, file.ID, "print('bye')"))

	_, content, err = GetFileService().ViewTextFile(ctx, owner, file.ID)
	require.NoError(t, err)
	assert.Equal(t, "print('bye')", content)

	updated, downloaded, err := GetFileService().DownloadFile(ctx, owner, file.ID)
	require.NoError(t, err)
	assert.Equal(t, "print('bye')", string(downloaded))
	assert.Equal(t, int64(len("print('bye')")), updated.SizeBytes)
}

func Test_ViewTextFile_RejectsBinaryExtensions(t *testing.T) {
	workspace, owner := newWorkspace(t)
	ctx := context.Background()

	folder, err := GetFolderService().CreateFolder(owner, workspace.ID, nil, "media")
	require.NoError(t, err)

	file, err := GetFileService().UploadFile(
		ctx, owner, workspace.ID, folder.ID, "photo.png", "", []byte{0x89, 0x50},
	)
	require.NoError(t, err)
	require.False(t, file.IsEditable)

	_, _, err = GetFileService().ViewTextFile(ctx, owner, file.ID)
	require.Error(t, err)
	assert.Equal(t, "this file type cannot be viewed or edited as text", err.Error())

	err = GetFileService().EditFile(ctx, owner, file.ID, "text")
	require.Error(t, err)
	assert.Equal(t, "this file type cannot be viewed or edited as text", err.Error())
}

func Test_DeleteWorkspace_CascadesToHierarchy(t *testing.T) {
	workspace, owner := newWorkspace(t)
	ctx := context.Background()

	folder, err := GetFolderService().CreateFolder(owner, workspace.ID, nil, "stuff")
	require.NoError(t, err)
	_, err = GetFileService().UploadFile(
		ctx, owner, workspace.ID, folder.ID, "notes.txt", "", []byte("bye"),
	)
	require.NoError(t, err)

	require.NoError(
		t, workspaces_services.GetWorkspaceService().DeleteWorkspace(owner, workspace.ID),
	)

	var folderCount, fileCount int64
	require.NoError(t, storage.GetDb().Model(&hierarchy_models.Folder{}).
		Where("workspace_id = ?", workspace.ID).Count(&folderCount).Error)
	require.NoError(t, storage.GetDb().Model(&hierarchy_models.File{}).
		Where("workspace_id = ?", workspace.ID).Count(&fileCount).Error)

	assert.Equal(t, int64(0), folderCount)
	assert.Equal(t, int64(0), fileCount)
}
