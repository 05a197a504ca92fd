package controller

import (
	"context"

	"github.com/hugohenrick/chat-offline/internal/mock"
)

// EmptyList responde [] (ferramentas e funções não existem no modo offline)
// @Summary Lista ferramentas ou funções
// @Tags catalog
// @Produce json
// @Success 200 {array} object
// @Router /tools [get]
// @Router /functions [get]
func EmptyList(ctx context.Context, req *mock.Request) (mock.Response, error) {
	return mock.OK([]interface{}{}), nil
}

// EmptyObject responde {} para qualquer outra rota da API
func EmptyObject(ctx context.Context, req *mock.Request) (mock.Response, error) {
	return mock.OK(map[string]interface{}{}), nil
}
