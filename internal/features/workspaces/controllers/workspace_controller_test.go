package workspaces_controllers

import (
	"testing"

	users_testing "collabriq-backend/internal/features/users/testing"
	workspaces_dto "collabriq-backend/internal/features/workspaces/dto"
	workspaces_enums "collabriq-backend/internal/features/workspaces/enums"
	test_utils "collabriq-backend/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestRouter() *gin.Engine {
	return users_testing.CreateTestRouter(
		nil,
		[]func(*gin.RouterGroup){
			GetWorkspaceController().RegisterRoutes,
			GetMembershipController().RegisterRoutes,
		},
	)
}

func Test_CreateWorkspace_ReturnsCreatedWorkspace(t *testing.T) {
	router := createTestRouter()
	_, token := users_testing.CreateTestUser(t)

	var created workspaces_dto.WorkspaceResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t, router, "/api/v1/workspaces", "Bearer "+token,
		workspaces_dto.CreateWorkspaceRequestDTO{
			Name:        "api-born",
			Description: "made through the http layer",
			Visibility:  workspaces_enums.VisibilityPrivate,
		},
		201, &created,
	)

	assert.Equal(t, "api-born", created.Name)
	assert.Equal(t, workspaces_enums.VisibilityPrivate, created.Visibility)
}

func Test_CreateWorkspace_MissingFieldsRejected(t *testing.T) {
	router := createTestRouter()
	_, token := users_testing.CreateTestUser(t)

	test_utils.MakePostRequest(
		t, router, "/api/v1/workspaces", "Bearer "+token,
		map[string]string{"name": "incomplete"},
		400,
	)
}

func Test_Workspaces_RequireAuthentication(t *testing.T) {
	router := createTestRouter()

	response := test_utils.MakeRequest(t, router, test_utils.RequestOptions{
		Method:         "GET",
		URL:            "/api/v1/workspaces",
		ExpectedStatus: 401,
	})

	assert.Equal(t, 401, response.Code)
}

func Test_GetWorkspace_PrivateHiddenFromOutsiders(t *testing.T) {
	router := createTestRouter()

	_, ownerToken := users_testing.CreateTestUser(t)

	var created workspaces_dto.WorkspaceResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t, router, "/api/v1/workspaces", "Bearer "+ownerToken,
		workspaces_dto.CreateWorkspaceRequestDTO{
			Name:        "secret-club",
			Description: "members only",
			Visibility:  workspaces_enums.VisibilityPrivate,
		},
		201, &created,
	)

	_, outsiderToken := users_testing.CreateTestUser(t)

	response := test_utils.MakeRequest(t, router, test_utils.RequestOptions{
		Method:         "GET",
		URL:            "/api/v1/workspaces/" + created.ID.String(),
		AuthToken:      "Bearer " + outsiderToken,
		ExpectedStatus: 404,
	})
	require.Equal(t, 404, response.Code)

	// The owner still sees it.
	var fetched workspaces_dto.WorkspaceResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, "/api/v1/workspaces/"+created.ID.String(), "Bearer "+ownerToken,
		200, &fetched,
	)
	assert.Equal(t, created.ID, fetched.ID)
}

func Test_DeleteWorkspace_NonOwnerForbidden(t *testing.T) {
	router := createTestRouter()

	_, ownerToken := users_testing.CreateTestUser(t)

	var created workspaces_dto.WorkspaceResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t, router, "/api/v1/workspaces", "Bearer "+ownerToken,
		workspaces_dto.CreateWorkspaceRequestDTO{
			Name:        "not-yours",
			Description: "hands off",
			Visibility:  workspaces_enums.VisibilityPublic,
		},
		201, &created,
	)

	_, strangerToken := users_testing.CreateTestUser(t)

	test_utils.MakeRequest(t, router, test_utils.RequestOptions{
		Method:         "DELETE",
		URL:            "/api/v1/workspaces/" + created.ID.String(),
		AuthToken:      "Bearer " + strangerToken,
		ExpectedStatus: 403,
	})
}
