package workspaces_enums

// Capability is what an operation needs from the requesting user, checked
// centrally by WorkspaceService.Authorize.
type Capability string

const (
	// CapabilityViewContent: member of the workspace, or the workspace is public.
	CapabilityViewContent Capability = "view_content"

	// CapabilityEditContent: editor or creator membership.
	CapabilityEditContent Capability = "edit_content"

	// CapabilityManageMembers: editor or creator membership.
	CapabilityManageMembers Capability = "manage_members"

	// CapabilityManageWorkspace: workspace owner only.
	CapabilityManageWorkspace Capability = "manage_workspace"
)
