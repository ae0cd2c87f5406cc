package sales

import (
	"net/http"
	"strings"

	users_middleware "collabriq-backend/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SaleController struct {
	saleService *SaleService
}

func (c *SaleController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/workspaces/sales/:id", c.SetForSale)
	router.POST("/workspaces/sales/:id/purchase", c.InitiatePurchase)
	router.POST("/workspaces/sales/:id/complete", c.CompletePurchase)
}

// SetForSale
// @Summary List a workspace for sale or withdraw it
// @Tags sales
// @Accept json
// @Param id path string true "Workspace ID"
// @Param request body sales.SetSaleRequestDTO true "Sale settings"
// @Success 200 {object} workspaces_models.Workspace
// @Router /workspaces/sales/{id} [post]
func (c *SaleController) SetForSale(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	workspaceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid workspace id"})
		return
	}

	var request SetSaleRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	workspace, err := c.saleService.SetForSale(user, workspaceID, &request)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, workspace)
}

// InitiatePurchase
// @Summary Create a payment order for a workspace purchase
// @Tags sales
// @Param id path string true "Workspace ID"
// @Success 200 {object} sales.InitiatePurchaseResponseDTO
// @Router /workspaces/sales/{id}/purchase [post]
func (c *SaleController) InitiatePurchase(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	workspaceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid workspace id"})
		return
	}

	response, err := c.saleService.InitiatePurchase(user, workspaceID)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// CompletePurchase
// @Summary Finalize a workspace purchase after checkout
// @Tags sales
// @Accept json
// @Param id path string true "Workspace ID"
// @Param request body sales.CompletePurchaseRequestDTO true "Payment proof"
// @Success 200
// @Router /workspaces/sales/{id}/complete [post]
func (c *SaleController) CompletePurchase(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	workspaceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid workspace id"})
		return
	}

	var request CompletePurchaseRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "orderId, paymentId and signature are required"})
		return
	}

	if err := c.saleService.CompletePurchase(user, workspaceID, &request); err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "purchase completed"})
}

func respondWithServiceError(ctx *gin.Context, err error) {
	message := err.Error()

	status := http.StatusBadRequest
	switch {
	case strings.Contains(message, "not found"):
		status = http.StatusNotFound
	case strings.HasPrefix(message, "only the workspace owner"):
		status = http.StatusForbidden
	case strings.Contains(message, "gateway is unavailable"):
		status = http.StatusBadGateway
	}

	ctx.JSON(status, gin.H{"error": message})
}
