package dto

import "encoding/json"

// CompletionMessage é uma mensagem do corpo de chat completions. Content
// pode ser uma string ou uma lista de partes ({"type":"text","text":...}).
type CompletionMessage struct {
	Role    string          `json:"role"`
	Content json.RawMessage `json:"content"`
}

// CompletionRequest representa o corpo de POST /api/chat/completions
type CompletionRequest struct {
	Model    string              `json:"model"`
	Messages []CompletionMessage `json:"messages"`

	// ChatID, quando informado, grava a troca no histórico do chat
	ChatID string `json:"chat_id"`
}

// CompletionResponse segue o formato de resposta não-streaming da OpenAI
type CompletionResponse struct {
	ID      string             `json:"id"`
	Choices []CompletionChoice `json:"choices"`
	Usage   CompletionUsage    `json:"usage"`
}

// CompletionChoice é uma alternativa de resposta
type CompletionChoice struct {
	Index        int                    `json:"index"`
	Message      CompletionReplyMessage `json:"message"`
	FinishReason string                 `json:"finish_reason"`
}

// CompletionReplyMessage é a mensagem gerada
type CompletionReplyMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionUsage contabiliza tokens da resposta
type CompletionUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}
