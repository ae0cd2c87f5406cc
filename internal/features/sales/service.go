package sales

import (
	"errors"
	"fmt"

	"collabriq-backend/internal/config"
	"collabriq-backend/internal/features/audit_logs"
	users_models "collabriq-backend/internal/features/users/models"
	workspaces_enums "collabriq-backend/internal/features/workspaces/enums"
	workspaces_models "collabriq-backend/internal/features/workspaces/models"
	workspaces_repositories "collabriq-backend/internal/features/workspaces/repositories"
	workspaces_services "collabriq-backend/internal/features/workspaces/services"

	"github.com/google/uuid"
)

// Workspaces cannot be listed below ₹100.
const minSalePriceMinorUnits int64 = 10000

type SaleService struct {
	workspaceService    *workspaces_services.WorkspaceService
	workspaceRepository *workspaces_repositories.WorkspaceRepository
	gateway             PaymentGateway
}

// SetGateway swaps the payment gateway, used by tests.
func (s *SaleService) SetGateway(gateway PaymentGateway) {
	s.gateway = gateway
}

// SetForSale lists the workspace for sale or takes it off the market.
func (s *SaleService) SetForSale(
	user *users_models.User,
	workspaceID uuid.UUID,
	request *SetSaleRequestDTO,
) (*workspaces_models.Workspace, error) {
	workspace, err := s.workspaceService.Authorize(
		workspaceID, user, workspaces_enums.CapabilityManageWorkspace,
	)
	if err != nil {
		return nil, err
	}

	if request.ForSale {
		if request.Price == nil || *request.Price < minSalePriceMinorUnits {
			return nil, errors.New("sale price must be at least 10000 minor units (₹100)")
		}

		workspace.IsForSale = true
		workspace.SalePriceMinorUnits = request.Price
		workspace.SaleCreatorID = &user.ID
	} else {
		workspace.IsForSale = false
		workspace.SalePriceMinorUnits = nil
		workspace.SaleCreatorID = nil
	}

	if err := s.workspaceRepository.Save(workspace); err != nil {
		return nil, err
	}

	if request.ForSale {
		audit_logs.GetAuditLogService().WriteAuditLog(
			fmt.Sprintf("Workspace %q listed for sale", workspace.Name),
			&user.ID, &workspaceID,
		)
	} else {
		audit_logs.GetAuditLogService().WriteAuditLog(
			fmt.Sprintf("Workspace %q taken off the market", workspace.Name),
			&user.ID, &workspaceID,
		)
	}

	return workspace, nil
}

// InitiatePurchase validates the sale before any gateway call, then creates
// a payment order the client completes checkout with.
func (s *SaleService) InitiatePurchase(
	buyer *users_models.User,
	workspaceID uuid.UUID,
) (*InitiatePurchaseResponseDTO, error) {
	workspace, err := s.workspaceRepository.GetByID(workspaceID)
	if err != nil {
		return nil, err
	}
	if workspace == nil {
		return nil, errors.New("workspace was not found")
	}

	if !workspace.IsForSale {
		return nil, errors.New("this workspace is not for sale")
	}
	if workspace.OwnerID == buyer.ID {
		return nil, errors.New("you cannot buy your own workspace")
	}
	if workspace.SalePriceMinorUnits == nil ||
		*workspace.SalePriceMinorUnits < minSalePriceMinorUnits {
		return nil, errors.New("sale price must be at least 10000 minor units (₹100)")
	}

	order, err := s.gateway.CreateOrder(
		*workspace.SalePriceMinorUnits, "INR", workspaceID.String(),
	)
	if err != nil {
		log.Error("Payment order creation failed", "workspaceId", workspaceID, "error", err)
		return nil, errors.New("payment gateway is unavailable, try again later")
	}

	return &InitiatePurchaseResponseDTO{
		OrderID:  order.OrderID,
		Amount:   order.Amount,
		Currency: order.Currency,
		KeyID:    config.GetEnv().RazorpayKeyID,
	}, nil
}

// CompletePurchase verifies the payment signature and hands the workspace
// over: all memberships are purged, the buyer becomes owner and sole
// creator, sale flags are cleared.
func (s *SaleService) CompletePurchase(
	buyer *users_models.User,
	workspaceID uuid.UUID,
	request *CompletePurchaseRequestDTO,
) error {
	workspace, err := s.workspaceRepository.GetByID(workspaceID)
	if err != nil {
		return err
	}
	if workspace == nil {
		return errors.New("workspace was not found")
	}

	if !workspace.IsForSale {
		return errors.New("this workspace is not for sale")
	}
	if workspace.OwnerID == buyer.ID {
		return errors.New("you cannot buy your own workspace")
	}

	verified := s.gateway.VerifyPaymentSignature(
		request.OrderID, request.PaymentID, request.Signature,
	)
	if !verified {
		return errors.New("payment signature verification failed")
	}

	if err := s.workspaceRepository.TransferOwnershipForSale(workspaceID, buyer.ID); err != nil {
		return err
	}

	audit_logs.GetAuditLogService().WriteAuditLog(
		fmt.Sprintf("Workspace %q sold to %s", workspace.Name, buyer.Username),
		&buyer.ID, &workspaceID,
	)

	return nil
}
