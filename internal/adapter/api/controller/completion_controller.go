package controller

import (
	"context"
	"encoding/json"
	"time"
	"unicode/utf16"

	"github.com/google/uuid"

	"github.com/hugohenrick/chat-offline/internal/adapter/api/dto"
	"github.com/hugohenrick/chat-offline/internal/domain/chat"
	"github.com/hugohenrick/chat-offline/internal/mock"
	"github.com/hugohenrick/chat-offline/pkg/logger"
)

const (
	// ReplyPrefix precede o eco da última mensagem do usuário
	ReplyPrefix = "Offline odpowiedź: "

	// FallbackPrompt é ecoado quando não há texto do usuário
	FallbackPrompt = "Dziękuję za wiadomość!"
)

// CompletionController simula o endpoint de chat completions ecoando o usuário
type CompletionController struct {
	chatRepository chat.Repository
	logger         logger.Logger
	now            func() time.Time
}

// NewCompletionController cria uma nova instância de CompletionController
func NewCompletionController(chatRepository chat.Repository, log logger.Logger) *CompletionController {
	return &CompletionController{
		chatRepository: chatRepository,
		logger:         log,
		now:            time.Now,
	}
}

// Complete responde com a última mensagem do usuário prefixada
// @Summary Chat completion offline
// @Description Ecoa a última mensagem do usuário. Com chat_id, grava a troca no histórico do chat.
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.CompletionRequest true "Mensagens"
// @Success 200 {object} dto.CompletionResponse
// @Router /chat/completions [post]
func (c *CompletionController) Complete(ctx context.Context, req *mock.Request) (mock.Response, error) {
	var request dto.CompletionRequest
	req.Bind(&request)

	prompt := LastUserPrompt(request.Messages)
	content := ReplyPrefix + prompt

	if request.ChatID != "" {
		if err := c.appendExchange(ctx, request, prompt, content); err != nil {
			return mock.Response{}, err
		}
	}

	// Contagem em unidades UTF-16, a mesma usada pelo cliente web
	tokens := len(utf16.Encode([]rune(content)))
	return mock.OK(dto.CompletionResponse{
		ID: uuid.New().String(),
		Choices: []dto.CompletionChoice{
			{
				Index:        0,
				Message:      dto.CompletionReplyMessage{Role: chat.RoleAssistant, Content: content},
				FinishReason: "stop",
			},
		},
		Usage: dto.CompletionUsage{
			PromptTokens:     0,
			CompletionTokens: tokens,
			TotalTokens:      tokens,
		},
	}), nil
}

// appendExchange grava a pergunta e a resposta no histórico do chat informado.
// Chats inexistentes ou com histórico inconsistente são ignorados.
func (c *CompletionController) appendExchange(ctx context.Context, request dto.CompletionRequest, prompt, reply string) error {
	chats, err := c.chatRepository.Load(ctx)
	if err != nil {
		return err
	}

	target, ok := chats.FindByID(request.ChatID)
	if !ok {
		c.logger.Warn("Chat da completion não encontrado", "chat_id", request.ChatID)
		return nil
	}

	history, err := target.MessageTree()
	if err != nil {
		c.logger.Warn("Histórico inválido, troca não gravada", "chat_id", request.ChatID, "error", err)
		return nil
	}

	now := c.now()
	if err := history.Append(&chat.Message{Role: chat.RoleUser, Content: prompt, Timestamp: now.Unix()}); err != nil {
		return err
	}
	if err := history.Append(&chat.Message{Role: chat.RoleAssistant, Content: reply, Timestamp: now.Unix(), Model: request.Model}); err != nil {
		return err
	}
	target.Touch(now)

	return c.chatRepository.Save(ctx, chats)
}

// LastUserPrompt extrai o texto da última mensagem com role "user". Conteúdo
// em partes usa a primeira parte com campo "text".
func LastUserPrompt(messages []dto.CompletionMessage) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role != chat.RoleUser {
			continue
		}
		return contentText(messages[i].Content)
	}
	return FallbackPrompt
}

func contentText(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return FallbackPrompt
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text
	}

	var parts []interface{}
	if err := json.Unmarshal(raw, &parts); err == nil {
		for _, part := range parts {
			fields, ok := part.(map[string]interface{})
			if !ok {
				continue
			}
			if s, ok := fields["text"].(string); ok {
				return s
			}
		}
	}
	return FallbackPrompt
}
