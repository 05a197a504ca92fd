package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/chat-offline/internal/adapter/api/dto"
)

// Version é a versão informada no health check
const Version = "1.0.0"

// HealthController responde o health check do servidor
type HealthController struct {
	storageDriver string
}

// NewHealthController cria uma nova instância de HealthController
func NewHealthController(storageDriver string) *HealthController {
	return &HealthController{storageDriver: storageDriver}
}

// Check informa que o servidor está no ar
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (c *HealthController) Check(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "ok",
		Version: Version,
		Storage: c.storageDriver,
	})
}
