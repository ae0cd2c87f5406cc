package workspaces_enums

type WorkspaceVisibility string

const (
	VisibilityPrivate WorkspaceVisibility = "private"
	VisibilityPublic  WorkspaceVisibility = "public"
)

func (v WorkspaceVisibility) IsValid() bool {
	return v == VisibilityPrivate || v == VisibilityPublic
}
