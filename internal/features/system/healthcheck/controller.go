package healthcheck

import (
	"net/http"

	"collabriq-backend/internal/config"
	"collabriq-backend/internal/util/logger"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v4/disk"
)

var log = logger.GetLogger()

type HealthcheckController struct{}

func (c *HealthcheckController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/healthcheck", c.GetHealth)
}

// GetHealth
// @Summary Liveness probe with disk stats of the data folder
// @Tags system
// @Success 200
// @Router /healthcheck [get]
func (c *HealthcheckController) GetHealth(ctx *gin.Context) {
	response := gin.H{"status": "ok"}

	usage, err := disk.Usage(config.GetEnv().DataFolder)
	if err != nil {
		log.Warn("Failed to read disk usage", "error", err)
	} else {
		response["disk"] = gin.H{
			"totalBytes":  usage.Total,
			"freeBytes":   usage.Free,
			"usedPercent": usage.UsedPercent,
		}
	}

	ctx.JSON(http.StatusOK, response)
}
