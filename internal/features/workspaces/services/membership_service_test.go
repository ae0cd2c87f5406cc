package workspaces_services

import (
	"regexp"
	"testing"

	"collabriq-backend/internal/features/mail"
	users_enums "collabriq-backend/internal/features/users/enums"
	users_testing "collabriq-backend/internal/features/users/testing"
	workspaces_enums "collabriq-backend/internal/features/workspaces/enums"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var inviteTokenPattern = regexp.MustCompile(`join\?token=([0-9a-f-]+)`)

func installFakeSender(t *testing.T) *mail.FakeSender {
	t.Helper()

	fake := &mail.FakeSender{}
	mail.SetMailSender(fake)
	t.Cleanup(func() { mail.SetMailSender(&mail.SMTPSender{}) })

	return fake
}

func Test_InviteUser_OwnerOnly(t *testing.T) {
	installFakeSender(t)
	workspace, _ := createWorkspace(t, workspaces_enums.VisibilityPrivate)
	member, _ := users_testing.CreateTestUser(t)

	err := GetMembershipService().InviteUser(member, workspace.ID, "someone@example.com")
	require.Error(t, err)
	assert.Equal(t, "only the workspace owner can perform this action", err.Error())
}

func Test_InviteUser_DuplicateInvitationRejected(t *testing.T) {
	installFakeSender(t)
	workspace, owner := createWorkspace(t, workspaces_enums.VisibilityPrivate)

	require.NoError(t, GetMembershipService().InviteUser(owner, workspace.ID, "guest@example.com"))

	err := GetMembershipService().InviteUser(owner, workspace.ID, "guest@example.com")
	require.Error(t, err)
	assert.Equal(t, "an invitation for this email is already pending", err.Error())
}

func Test_JoinWorkspace_WithInvitationToken(t *testing.T) {
	fake := installFakeSender(t)
	workspace, owner := createWorkspace(t, workspaces_enums.VisibilityPrivate)
	invitee, _ := users_testing.CreateTestUser(t)

	require.NoError(t, GetMembershipService().InviteUser(owner, workspace.ID, invitee.Email))

	token := uuid.MustParse(inviteTokenPattern.FindStringSubmatch(fake.LastMessage().Body)[1])

	require.NoError(t, GetMembershipService().JoinWorkspace(invitee, workspace.ID, &token))

	role, found, err := GetWorkspaceService().GetUserRole(workspace.ID, invitee.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, users_enums.WorkspaceRoleViewer, role)

	// The invitation is consumed, the token cannot admit anyone else.
	other, _ := users_testing.CreateTestUser(t)
	err = GetMembershipService().JoinWorkspace(other, workspace.ID, &token)
	require.Error(t, err)
	assert.Equal(t, "workspace was not found", err.Error())
}

func Test_JoinWorkspace_TokenForDifferentEmailRejected(t *testing.T) {
	fake := installFakeSender(t)
	workspace, owner := createWorkspace(t, workspaces_enums.VisibilityPrivate)

	require.NoError(t, GetMembershipService().InviteUser(owner, workspace.ID, "invited@example.com"))
	token := uuid.MustParse(inviteTokenPattern.FindStringSubmatch(fake.LastMessage().Body)[1])

	interloper, _ := users_testing.CreateTestUser(t)
	err := GetMembershipService().JoinWorkspace(interloper, workspace.ID, &token)
	require.Error(t, err)
	assert.Equal(t, "workspace was not found", err.Error())
}

func Test_JoinWorkspace_PublicWithoutToken(t *testing.T) {
	workspace, _ := createWorkspace(t, workspaces_enums.VisibilityPublic)
	joiner, _ := users_testing.CreateTestUser(t)

	require.NoError(t, GetMembershipService().JoinWorkspace(joiner, workspace.ID, nil))

	// Joining again is a silent no-op.
	require.NoError(t, GetMembershipService().JoinWorkspace(joiner, workspace.ID, nil))

	members, err := GetMembershipService().GetMembers(joiner, workspace.ID)
	require.NoError(t, err)
	assert.Len(t, members, 2)
}

func Test_JoinWorkspace_PrivateWithoutTokenRejected(t *testing.T) {
	workspace, _ := createWorkspace(t, workspaces_enums.VisibilityPrivate)
	outsider, _ := users_testing.CreateTestUser(t)

	err := GetMembershipService().JoinWorkspace(outsider, workspace.ID, nil)
	require.Error(t, err)
	assert.Equal(t, "workspace was not found", err.Error())
}

func Test_ChangeMemberRole_PromotesViewerToEditor(t *testing.T) {
	workspace, owner := createWorkspace(t, workspaces_enums.VisibilityPublic)
	member, _ := users_testing.CreateTestUser(t)
	require.NoError(t, GetMembershipService().JoinWorkspace(member, workspace.ID, nil))

	membership, err := GetMembershipService().membershipRepository.
		GetByWorkspaceAndUser(workspace.ID, member.ID)
	require.NoError(t, err)

	err = GetMembershipService().ChangeMemberRole(
		owner, membership.ID, users_enums.WorkspaceRoleEditor,
	)
	require.NoError(t, err)

	role, _, err := GetWorkspaceService().GetUserRole(workspace.ID, member.ID)
	require.NoError(t, err)
	assert.Equal(t, users_enums.WorkspaceRoleEditor, role)
}

func Test_ChangeMemberRole_ViewerCannotManage(t *testing.T) {
	workspace, _ := createWorkspace(t, workspaces_enums.VisibilityPublic)
	viewerOne, _ := users_testing.CreateTestUser(t)
	viewerTwo, _ := users_testing.CreateTestUser(t)
	require.NoError(t, GetMembershipService().JoinWorkspace(viewerOne, workspace.ID, nil))
	require.NoError(t, GetMembershipService().JoinWorkspace(viewerTwo, workspace.ID, nil))

	target, err := GetMembershipService().membershipRepository.
		GetByWorkspaceAndUser(workspace.ID, viewerTwo.ID)
	require.NoError(t, err)

	err = GetMembershipService().ChangeMemberRole(
		viewerOne, target.ID, users_enums.WorkspaceRoleEditor,
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission")
}

func Test_ChangeMemberRole_CreatorRowIsProtected(t *testing.T) {
	workspace, owner := createWorkspace(t, workspaces_enums.VisibilityPublic)
	editor, _ := users_testing.CreateTestUser(t)
	require.NoError(t, GetMembershipService().JoinWorkspace(editor, workspace.ID, nil))

	editorMembership, err := GetMembershipService().membershipRepository.
		GetByWorkspaceAndUser(workspace.ID, editor.ID)
	require.NoError(t, err)
	require.NoError(t, GetMembershipService().ChangeMemberRole(
		owner, editorMembership.ID, users_enums.WorkspaceRoleEditor,
	))

	creatorMembership, err := GetMembershipService().membershipRepository.
		GetByWorkspaceAndUser(workspace.ID, owner.ID)
	require.NoError(t, err)

	err = GetMembershipService().ChangeMemberRole(
		editor, creatorMembership.ID, users_enums.WorkspaceRoleViewer,
	)
	require.Error(t, err)
	assert.Equal(t, "the creator's role cannot be changed", err.Error())
}

func Test_ChangeMemberRole_CannotTargetSelf(t *testing.T) {
	workspace, owner := createWorkspace(t, workspaces_enums.VisibilityPublic)
	editor, _ := users_testing.CreateTestUser(t)
	require.NoError(t, GetMembershipService().JoinWorkspace(editor, workspace.ID, nil))

	membership, err := GetMembershipService().membershipRepository.
		GetByWorkspaceAndUser(workspace.ID, editor.ID)
	require.NoError(t, err)
	require.NoError(t, GetMembershipService().ChangeMemberRole(
		owner, membership.ID, users_enums.WorkspaceRoleEditor,
	))

	err = GetMembershipService().ChangeMemberRole(
		editor, membership.ID, users_enums.WorkspaceRoleViewer,
	)
	require.Error(t, err)
	assert.Equal(t, "you cannot change your own role", err.Error())
}

func Test_RemoveMember_CreatorCannotBeRemoved(t *testing.T) {
	workspace, owner := createWorkspace(t, workspaces_enums.VisibilityPublic)

	creatorMembership, err := GetMembershipService().membershipRepository.
		GetByWorkspaceAndUser(workspace.ID, owner.ID)
	require.NoError(t, err)

	err = GetMembershipService().RemoveMember(owner, creatorMembership.ID)
	require.Error(t, err)
	assert.Equal(t, "the creator cannot be removed from the workspace", err.Error())
}

func Test_RemoveMember_DropsTheMembership(t *testing.T) {
	workspace, owner := createWorkspace(t, workspaces_enums.VisibilityPublic)
	member, _ := users_testing.CreateTestUser(t)
	require.NoError(t, GetMembershipService().JoinWorkspace(member, workspace.ID, nil))

	membership, err := GetMembershipService().membershipRepository.
		GetByWorkspaceAndUser(workspace.ID, member.ID)
	require.NoError(t, err)

	require.NoError(t, GetMembershipService().RemoveMember(owner, membership.ID))

	_, found, err := GetWorkspaceService().GetUserRole(workspace.ID, member.ID)
	require.NoError(t, err)
	assert.False(t, found)
}
