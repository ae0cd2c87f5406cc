package sales

import (
	"testing"

	users_enums "collabriq-backend/internal/features/users/enums"
	users_models "collabriq-backend/internal/features/users/models"
	users_testing "collabriq-backend/internal/features/users/testing"
	workspaces_enums "collabriq-backend/internal/features/workspaces/enums"
	workspaces_models "collabriq-backend/internal/features/workspaces/models"
	workspaces_services "collabriq-backend/internal/features/workspaces/services"
	workspaces_testing "collabriq-backend/internal/features/workspaces/testing"
	"collabriq-backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func installFakeGateway(t *testing.T) *FakeGateway {
	t.Helper()

	fake := &FakeGateway{}
	previous := GetSaleService().gateway
	GetSaleService().SetGateway(fake)
	t.Cleanup(func() { GetSaleService().SetGateway(previous) })

	return fake
}

func price(v int64) *int64 {
	return &v
}

func listedWorkspace(t *testing.T) (*workspaces_models.Workspace, *users_models.User) {
	t.Helper()

	owner, _ := users_testing.CreateTestUser(t)
	workspace := workspaces_testing.CreateTestWorkspace(
		t, owner, workspaces_enums.VisibilityPublic,
	)

	_, err := GetSaleService().SetForSale(owner, workspace.ID, &SetSaleRequestDTO{
		ForSale: true,
		Price:   price(25_000),
	})
	require.NoError(t, err)

	return workspace, owner
}

func Test_SetForSale_RejectsPriceBelowMinimum(t *testing.T) {
	owner, _ := users_testing.CreateTestUser(t)
	workspace := workspaces_testing.CreateTestWorkspace(
		t, owner, workspaces_enums.VisibilityPublic,
	)

	_, err := GetSaleService().SetForSale(owner, workspace.ID, &SetSaleRequestDTO{
		ForSale: true,
		Price:   price(9_999),
	})
	require.Error(t, err)
	assert.Equal(t, "sale price must be at least 10000 minor units (₹100)", err.Error())
}

func Test_SetForSale_OwnerOnly(t *testing.T) {
	owner, _ := users_testing.CreateTestUser(t)
	workspace := workspaces_testing.CreateTestWorkspace(
		t, owner, workspaces_enums.VisibilityPublic,
	)

	stranger, _ := users_testing.CreateTestUser(t)
	_, err := GetSaleService().SetForSale(stranger, workspace.ID, &SetSaleRequestDTO{
		ForSale: true,
		Price:   price(25_000),
	})
	require.Error(t, err)
	assert.Equal(t, "only the workspace owner can perform this action", err.Error())
}

func Test_SetForSale_ClearingNullsPriceAndSaleCreator(t *testing.T) {
	workspace, owner := listedWorkspace(t)

	updated, err := GetSaleService().SetForSale(owner, workspace.ID, &SetSaleRequestDTO{
		ForSale: false,
	})
	require.NoError(t, err)

	assert.False(t, updated.IsForSale)
	assert.Nil(t, updated.SalePriceMinorUnits)
	assert.Nil(t, updated.SaleCreatorID)
}

func Test_InitiatePurchase_ValidatesBeforeGatewayCall(t *testing.T) {
	fake := installFakeGateway(t)

	// Not for sale.
	owner, _ := users_testing.CreateTestUser(t)
	unlisted := workspaces_testing.CreateTestWorkspace(
		t, owner, workspaces_enums.VisibilityPublic,
	)

	buyer, _ := users_testing.CreateTestUser(t)
	_, err := GetSaleService().InitiatePurchase(buyer, unlisted.ID)
	require.Error(t, err)
	assert.Equal(t, "this workspace is not for sale", err.Error())

	// Owner buying their own workspace.
	listed, listedOwner := listedWorkspace(t)
	_, err = GetSaleService().InitiatePurchase(listedOwner, listed.ID)
	require.Error(t, err)
	assert.Equal(t, "you cannot buy your own workspace", err.Error())

	// No order reached the gateway for any rejected attempt.
	assert.Equal(t, 0, fake.OrderCount())
}

func Test_InitiatePurchase_CreatesGatewayOrder(t *testing.T) {
	fake := installFakeGateway(t)
	workspace, _ := listedWorkspace(t)
	buyer, _ := users_testing.CreateTestUser(t)

	response, err := GetSaleService().InitiatePurchase(buyer, workspace.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, fake.OrderCount())
	assert.Equal(t, int64(25_000), response.Amount)
	assert.Equal(t, "INR", response.Currency)
	assert.NotEmpty(t, response.OrderID)
}

func Test_CompletePurchase_RejectsBadSignature(t *testing.T) {
	installFakeGateway(t)
	workspace, _ := listedWorkspace(t)
	buyer, _ := users_testing.CreateTestUser(t)

	err := GetSaleService().CompletePurchase(buyer, workspace.ID, &CompletePurchaseRequestDTO{
		OrderID:   "order_fake_1",
		PaymentID: "pay_1",
		Signature: "forged",
	})
	require.Error(t, err)
	assert.Equal(t, "payment signature verification failed", err.Error())
}

func Test_CompletePurchase_TransfersOwnershipAndResetsMemberships(t *testing.T) {
	installFakeGateway(t)
	workspace, owner := listedWorkspace(t)

	// A second member who must be gone after the sale.
	member, _ := users_testing.CreateTestUser(t)
	require.NoError(
		t, workspaces_services.GetMembershipService().JoinWorkspace(member, workspace.ID, nil),
	)

	buyer, _ := users_testing.CreateTestUser(t)
	response, err := GetSaleService().InitiatePurchase(buyer, workspace.ID)
	require.NoError(t, err)

	err = GetSaleService().CompletePurchase(buyer, workspace.ID, &CompletePurchaseRequestDTO{
		OrderID:   response.OrderID,
		PaymentID: "pay_42",
		Signature: "valid-" + response.OrderID,
	})
	require.NoError(t, err)

	reloaded, err := workspaces_services.GetWorkspaceService().Authorize(
		workspace.ID, buyer, workspaces_enums.CapabilityManageWorkspace,
	)
	require.NoError(t, err)
	assert.Equal(t, buyer.ID, reloaded.OwnerID)
	assert.False(t, reloaded.IsForSale)
	assert.Nil(t, reloaded.SalePriceMinorUnits)

	// Exactly one membership remains: the buyer as creator.
	var memberships []*workspaces_models.WorkspaceMembership
	require.NoError(t, storage.GetDb().
		Where("workspace_id = ?", workspace.ID).
		Find(&memberships).Error)
	require.Len(t, memberships, 1)
	assert.Equal(t, buyer.ID, memberships[0].UserID)
	assert.Equal(t, users_enums.WorkspaceRoleCreator, memberships[0].Role)

	// The previous owner is out entirely.
	_, found, err := workspaces_services.GetWorkspaceService().GetUserRole(workspace.ID, owner.ID)
	require.NoError(t, err)
	assert.False(t, found)
}
