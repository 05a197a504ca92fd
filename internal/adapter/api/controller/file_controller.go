package controller

import (
	"context"

	"github.com/google/uuid"

	"github.com/hugohenrick/chat-offline/internal/mock"
)

// FileController simula o upload de arquivos
type FileController struct{}

// NewFileController cria uma nova instância de FileController
func NewFileController() *FileController {
	return &FileController{}
}

// Upload devolve o próprio corpo enviado com um ID gerado. Um "id" presente
// no corpo prevalece sobre o gerado.
// @Summary Upload de arquivo
// @Tags files
// @Accept json
// @Produce json
// @Success 200 {object} object
// @Router /files [post]
func (c *FileController) Upload(ctx context.Context, req *mock.Request) (mock.Response, error) {
	body := map[string]interface{}{}
	req.Bind(&body)

	result := map[string]interface{}{"id": uuid.New().String()}
	for k, v := range body {
		result[k] = v
	}
	return mock.OK(result), nil
}
