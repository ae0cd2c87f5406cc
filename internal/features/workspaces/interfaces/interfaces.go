package workspaces_interfaces

import (
	"github.com/google/uuid"
)

// WorkspaceDeletionListener is implemented by features holding
// workspace-scoped data. Each listener runs before the workspace row is
// removed so nothing is orphaned.
type WorkspaceDeletionListener interface {
	OnBeforeWorkspaceDeletion(workspaceID uuid.UUID) error
}
