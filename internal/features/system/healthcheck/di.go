package healthcheck

var healthcheckController = &HealthcheckController{}

func GetHealthcheckController() *HealthcheckController {
	return healthcheckController
}
