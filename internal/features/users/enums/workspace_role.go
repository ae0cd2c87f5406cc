package users_enums

type WorkspaceRole string

const (
	WorkspaceRoleViewer  WorkspaceRole = "viewer"
	WorkspaceRoleEditor  WorkspaceRole = "editor"
	WorkspaceRoleCreator WorkspaceRole = "creator"
)

// IsValid validates the WorkspaceRole
func (r WorkspaceRole) IsValid() bool {
	switch r {
	case WorkspaceRoleViewer, WorkspaceRoleEditor, WorkspaceRoleCreator:
		return true
	default:
		return false
	}
}

// CanEditContent reports whether the role may create, rename, edit and
// delete folders, files and discussion messages.
func (r WorkspaceRole) CanEditContent() bool {
	return r == WorkspaceRoleEditor || r == WorkspaceRoleCreator
}
