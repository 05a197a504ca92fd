package route

import (
	"net/http"

	"github.com/hugohenrick/chat-offline/internal/adapter/api/controller"
	"github.com/hugohenrick/chat-offline/internal/mock"
)

// MockControllers agrupa os controllers usados pela tabela de regras
type MockControllers struct {
	Chat       *controller.ChatController
	User       *controller.UserController
	File       *controller.FileController
	Completion *controller.CompletionController
}

// SetupMockRoutes registra a tabela de regras da API simulada. A ordem importa:
// a primeira regra que casa responde, então caminhos exatos vêm antes dos prefixos.
func SetupMockRoutes(router *mock.Router, c MockControllers) {
	// Chats
	router.Handle("chats.create", mock.On(http.MethodPost, mock.Exact("/api/v1/chats/new")), c.Chat.Create)
	router.Handle("chats.pinned", mock.On(http.MethodGet, mock.Exact("/api/v1/chats/pinned")), c.Chat.ListPinned)
	router.Handle("chats.tags", mock.On(http.MethodGet, mock.Exact("/api/v1/chats/all/tags")), c.Chat.ListTags)
	router.Handle("chats.get", mock.On(http.MethodGet, mock.Prefix("/api/v1/chats/")), c.Chat.GetByID)
	router.Handle("chats.list", mock.On(http.MethodGet, mock.Prefix("/api/v1/chats")), c.Chat.List)
	router.Handle("chats.by_tag", mock.On(http.MethodPost, mock.Exact("/api/v1/chats/tags")), c.Chat.ListByTag)
	router.Handle("chats.update", mock.On(http.MethodPost, mock.Contains("/api/v1/chats")), c.Chat.Update)

	// Usuário
	router.Handle("users.settings", mock.On(http.MethodGet, mock.Exact("/api/v1/users/settings")), c.User.Settings)
	router.Handle("users.location", mock.On(http.MethodGet, mock.Exact("/api/v1/users/location")), c.User.Location)

	// Catálogo vazio
	router.Handle("tools.list", mock.On(http.MethodGet, mock.Prefix("/api/v1/tools")), controller.EmptyList)
	router.Handle("functions.list", mock.On(http.MethodGet, mock.Prefix("/api/v1/functions")), controller.EmptyList)

	router.Handle("files.upload", mock.On(http.MethodPost, mock.Prefix("/api/v1/files")), c.File.Upload)
	router.Handle("chat.completions", mock.On(http.MethodPost, mock.Contains("/api/chat/completions")), c.Completion.Complete)

	// Qualquer outra rota da API v1
	router.Handle("v1.fallback", mock.Prefix("/api/v1"), controller.EmptyObject)
}
