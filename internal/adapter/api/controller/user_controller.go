package controller

import (
	"context"

	"github.com/hugohenrick/chat-offline/internal/adapter/api/dto"
	"github.com/hugohenrick/chat-offline/internal/mock"
)

// UserController responde as rotas do usuário offline com valores fixos
type UserController struct{}

// NewUserController cria uma nova instância de UserController
func NewUserController() *UserController {
	return &UserController{}
}

// Settings retorna as configurações do usuário
// @Summary Configurações do usuário
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserSettingsResponse
// @Router /users/settings [get]
func (c *UserController) Settings(ctx context.Context, req *mock.Request) (mock.Response, error) {
	return mock.OK(dto.UserSettingsResponse{
		Params:                 map[string]interface{}{},
		TemporaryChatByDefault: true,
	}), nil
}

// Location retorna a localização do usuário
// @Summary Localização do usuário
// @Tags users
// @Produce json
// @Success 200 {object} dto.LocationResponse
// @Router /users/location [get]
func (c *UserController) Location(ctx context.Context, req *mock.Request) (mock.Response, error) {
	return mock.OK(dto.LocationResponse{City: "Lokalnie", Country: "Offline"}), nil
}
