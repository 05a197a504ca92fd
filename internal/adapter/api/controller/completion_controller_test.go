package controller

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hugohenrick/chat-offline/internal/adapter/api/dto"
)

func message(role, content string) dto.CompletionMessage {
	return dto.CompletionMessage{Role: role, Content: json.RawMessage(content)}
}

func TestLastUserPrompt(t *testing.T) {
	tests := []struct {
		name     string
		messages []dto.CompletionMessage
		want     string
	}{
		{
			name:     "sem mensagens",
			messages: nil,
			want:     FallbackPrompt,
		},
		{
			name:     "sem mensagem do usuário",
			messages: []dto.CompletionMessage{message("system", `"seja breve"`)},
			want:     FallbackPrompt,
		},
		{
			name: "última mensagem do usuário",
			messages: []dto.CompletionMessage{
				message("user", `"primeira"`),
				message("user", `"segunda"`),
				message("assistant", `"resposta"`),
			},
			want: "segunda",
		},
		{
			name: "conteúdo em partes",
			messages: []dto.CompletionMessage{
				message("user", `[{"type":"image_url","image_url":{"url":"x"}},{"type":"text","text":"opis"}]`),
			},
			want: "opis",
		},
		{
			name: "partes mistas",
			messages: []dto.CompletionMessage{
				message("user", `["solta",{"type":"text","text":42},{"type":"text","text":"ok"}]`),
			},
			want: "ok",
		},
		{
			name:     "partes sem texto",
			messages: []dto.CompletionMessage{message("user", `[{"type":"image_url"}]`)},
			want:     FallbackPrompt,
		},
		{
			name:     "conteúdo nulo",
			messages: []dto.CompletionMessage{message("user", `null`)},
			want:     FallbackPrompt,
		},
		{
			name:     "conteúdo ausente",
			messages: []dto.CompletionMessage{{Role: "user"}},
			want:     FallbackPrompt,
		},
		{
			name:     "string vazia",
			messages: []dto.CompletionMessage{message("user", `""`)},
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LastUserPrompt(tt.messages))
		})
	}
}
