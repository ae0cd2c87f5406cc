package sales

import (
	"collabriq-backend/internal/config"
	workspaces_repositories "collabriq-backend/internal/features/workspaces/repositories"
	workspaces_services "collabriq-backend/internal/features/workspaces/services"
	"collabriq-backend/internal/util/logger"
)

var log = logger.GetLogger()

var saleService = &SaleService{
	workspaceService:    workspaces_services.GetWorkspaceService(),
	workspaceRepository: workspaces_repositories.GetWorkspaceRepository(),
	gateway:             defaultGateway(),
}

var saleController = &SaleController{
	saleService: saleService,
}

func defaultGateway() PaymentGateway {
	if config.GetEnv().IsTesting {
		return &FakeGateway{}
	}

	return NewRazorpayGateway()
}

func GetSaleService() *SaleService {
	return saleService
}

func GetSaleController() *SaleController {
	return saleController
}
