package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/hugohenrick/chat-offline/internal/adapter/api/dto"
	"github.com/hugohenrick/chat-offline/internal/domain/chat"
	"github.com/hugohenrick/chat-offline/internal/mock"
	"github.com/hugohenrick/chat-offline/pkg/logger"
)

// ChatController responde as rotas de chats a partir do repositório local
type ChatController struct {
	chatRepository chat.Repository
	logger         logger.Logger
	now            func() time.Time
}

// NewChatController cria uma nova instância de ChatController
func NewChatController(chatRepository chat.Repository, log logger.Logger) *ChatController {
	return &ChatController{
		chatRepository: chatRepository,
		logger:         log,
		now:            time.Now,
	}
}

// Create cria um novo chat
// @Summary Cria um novo chat
// @Description Cria um chat a partir do chat de demonstração e o insere no início da lista
// @Tags chats
// @Accept json
// @Produce json
// @Param chat body dto.CreateChatRequest false "Dados do chat"
// @Success 201 {object} chat.Chat
// @Router /chats/new [post]
func (c *ChatController) Create(ctx context.Context, req *mock.Request) (mock.Response, error) {
	var request dto.CreateChatRequest
	req.Bind(&request)

	chats, err := c.chatRepository.Load(ctx)
	if err != nil {
		return mock.Response{}, err
	}

	newChat, err := chat.NewChatFromForm(c.now(), request.Chat)
	if err != nil {
		return mock.Response{}, err
	}

	if err := c.chatRepository.Save(ctx, chats.Prepend(newChat)); err != nil {
		return mock.Response{}, err
	}

	c.logger.Info("Chat criado", "id", newChat.ID, "title", newChat.Title)
	return mock.JSON(http.StatusCreated, newChat), nil
}

// GetByID busca um chat pelo ID
// @Summary Busca um chat pelo ID
// @Tags chats
// @Produce json
// @Param id path string true "ID do chat"
// @Success 200 {object} dto.ChatEnvelope
// @Failure 404 {object} dto.ErrorResponse
// @Router /chats/{id} [get]
func (c *ChatController) GetByID(ctx context.Context, req *mock.Request) (mock.Response, error) {
	chats, err := c.chatRepository.Load(ctx)
	if err != nil {
		return mock.Response{}, err
	}

	found, ok := chats.FindByID(req.LastSegment())
	if !ok {
		return mock.NotFound(), nil
	}
	return mock.OK(dto.ToChatEnvelope(found)), nil
}

// List lista os chats, do mais recente para o mais antigo
// @Summary Lista os chats
// @Tags chats
// @Produce json
// @Success 200 {array} dto.ChatListItem
// @Router /chats [get]
func (c *ChatController) List(ctx context.Context, req *mock.Request) (mock.Response, error) {
	chats, err := c.chatRepository.Load(ctx)
	if err != nil {
		return mock.Response{}, err
	}
	return mock.OK(dto.ToChatList(chats)), nil
}

// ListPinned lista os chats fixados
// @Summary Lista os chats fixados
// @Tags chats
// @Produce json
// @Success 200 {array} chat.Chat
// @Router /chats/pinned [get]
func (c *ChatController) ListPinned(ctx context.Context, req *mock.Request) (mock.Response, error) {
	chats, err := c.chatRepository.Load(ctx)
	if err != nil {
		return mock.Response{}, err
	}
	return mock.OK(chats.Pinned()), nil
}

// ListByTag lista os chats que possuem a tag informada
// @Summary Filtra chats por tag
// @Tags chats
// @Accept json
// @Produce json
// @Param tag body dto.TagFilterRequest true "Tag"
// @Success 200 {array} chat.Chat
// @Router /chats/tags [post]
func (c *ChatController) ListByTag(ctx context.Context, req *mock.Request) (mock.Response, error) {
	var request dto.TagFilterRequest
	req.Bind(&request)

	chats, err := c.chatRepository.Load(ctx)
	if err != nil {
		return mock.Response{}, err
	}
	if request.Name == nil {
		return mock.OK(chat.Chats{}), nil
	}
	return mock.OK(chats.WithTag(*request.Name)), nil
}

// ListTags lista as tags distintas de todos os chats
// @Summary Lista as tags
// @Tags chats
// @Produce json
// @Success 200 {array} dto.TagResponse
// @Router /chats/all/tags [get]
func (c *ChatController) ListTags(ctx context.Context, req *mock.Request) (mock.Response, error) {
	chats, err := c.chatRepository.Load(ctx)
	if err != nil {
		return mock.Response{}, err
	}
	return mock.OK(dto.ToTagList(chats.DistinctTags())), nil
}

// Update atualiza um chat existente
// @Summary Atualiza um chat
// @Description Os campos enviados substituem os atuais, sem validação de formato; o ID vem do corpo, da query "id" ou do caminho
// @Tags chats
// @Accept json
// @Produce json
// @Param id path string true "ID do chat"
// @Param chat body dto.UpdateChatRequest true "Campos a atualizar"
// @Success 200 {object} chat.Chat
// @Failure 404 {object} dto.ErrorResponse
// @Router /chats/{id} [post]
func (c *ChatController) Update(ctx context.Context, req *mock.Request) (mock.Response, error) {
	var request dto.UpdateChatRequest
	req.Bind(&request)

	chats, err := c.chatRepository.Load(ctx)
	if err != nil {
		return mock.Response{}, err
	}

	i := chats.IndexOf(resolveChatID(req, request))
	if i < 0 {
		return mock.NotFound(), nil
	}

	updated, err := chats[i].Merge(chat.Fields(request))
	if err != nil {
		return mock.Response{}, err
	}
	updated.Touch(c.now())
	chats[i] = updated

	if err := c.chatRepository.Save(ctx, chats); err != nil {
		return mock.Response{}, err
	}
	return mock.OK(updated), nil
}

// resolveChatID procura o ID no corpo, depois na query e por fim no caminho
func resolveChatID(req *mock.Request, request dto.UpdateChatRequest) string {
	if id := request.ChatID(); id != "" {
		return id
	}
	if id := req.Query.Get("id"); id != "" {
		return id
	}
	if segment := req.LastSegment(); segment != "chats" {
		return segment
	}
	return ""
}
