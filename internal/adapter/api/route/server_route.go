package route

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/hugohenrick/chat-offline/internal/adapter/api/controller"
)

// SetupServerRoutes configura as rotas próprias do servidor. Todo o resto
// cai no gateway, que decide entre a API simulada e o upstream.
func SetupServerRoutes(router *gin.Engine, healthController *controller.HealthController, gatewayController *controller.GatewayController) {
	router.GET("/health", healthController.Check)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.NoRoute(gatewayController.Serve)
}
