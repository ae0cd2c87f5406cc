package workspaces_testing

import (
	"fmt"
	"testing"

	workspaces_dto "collabriq-backend/internal/features/workspaces/dto"
	workspaces_enums "collabriq-backend/internal/features/workspaces/enums"
	workspaces_models "collabriq-backend/internal/features/workspaces/models"
	workspaces_services "collabriq-backend/internal/features/workspaces/services"
	users_models "collabriq-backend/internal/features/users/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// CreateTestWorkspace creates a workspace owned by the user through the real
// service so the creator membership is in place.
func CreateTestWorkspace(
	t *testing.T,
	owner *users_models.User,
	visibility workspaces_enums.WorkspaceVisibility,
) *workspaces_models.Workspace {
	t.Helper()

	workspace, err := workspaces_services.GetWorkspaceService().CreateWorkspace(
		owner,
		&workspaces_dto.CreateWorkspaceRequestDTO{
			Name:        fmt.Sprintf("workspace-%s", uuid.New().String()[:8]),
			Description: "test workspace",
			Visibility:  visibility,
		},
	)
	require.NoError(t, err)

	return workspace
}
