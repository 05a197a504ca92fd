package main

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/chat-offline/internal/adapter/api/controller"
	"github.com/hugohenrick/chat-offline/internal/adapter/api/route"
	"github.com/hugohenrick/chat-offline/internal/adapter/repository"
	"github.com/hugohenrick/chat-offline/internal/infrastructure/config"
	"github.com/hugohenrick/chat-offline/internal/infrastructure/storage"
	"github.com/hugohenrick/chat-offline/internal/mock"
	"github.com/hugohenrick/chat-offline/pkg/logger"
	"github.com/hugohenrick/chat-offline/pkg/middleware"

	_ "github.com/hugohenrick/chat-offline/docs"
)

// App representa a aplicação e suas dependências
type App struct {
	router            *gin.Engine
	store             storage.Store
	logger            logger.Logger
	mockRouter        *mock.Router
	healthController  *controller.HealthController
	gatewayController *controller.GatewayController
}

// NewApp cria uma nova instância do aplicativo
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logger.NewLogger()

	// Abrir armazenamento
	store, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		return nil, err
	}

	// Criar repositório e controllers
	chatRepo := repository.NewStoreChatRepository(store, cfg.Storage.Key, log)

	mockRouter := mock.NewRouter(log)
	route.SetupMockRoutes(mockRouter, route.MockControllers{
		Chat:       controller.NewChatController(chatRepo, log),
		User:       controller.NewUserController(),
		File:       controller.NewFileController(),
		Completion: controller.NewCompletionController(chatRepo, log),
	})

	gatewayController, err := controller.NewGatewayController(mockRouter, cfg.UpstreamURL, log)
	if err != nil {
		store.Close()
		return nil, err
	}

	// Configurar router com modo correto
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	return &App{
		router:            router,
		store:             store,
		logger:            log,
		mockRouter:        mockRouter,
		healthController:  controller.NewHealthController(cfg.Storage.Driver),
		gatewayController: gatewayController,
	}, nil
}

// SetupRoutes configura as rotas da aplicação
func (a *App) SetupRoutes() {
	route.SetupServerRoutes(a.router, a.healthController, a.gatewayController)
	a.logger.Debug("Regras da API simulada", "rules", a.mockRouter.Rules())
}

// GetRouter retorna o router da aplicação
func (a *App) GetRouter() *gin.Engine {
	return a.router
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Error("Erro ao fechar armazenamento", "error", err)
		}
	}
}
