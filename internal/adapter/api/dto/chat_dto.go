package dto

import (
	"encoding/json"

	"github.com/hugohenrick/chat-offline/internal/domain/chat"
)

// TimeRangeJustNow é o agrupamento informado para todos os chats listados
const TimeRangeJustNow = "just now"

// CreateChatRequest representa o corpo de POST /chats/new. Os campos de
// chat sobrepõem o chat de demonstração sem validação de formato.
type CreateChatRequest struct {
	Chat chat.Fields `json:"chat" swaggertype:"object"`
}

// UpdateChatRequest representa o corpo de atualização de um chat. Cada campo
// presente substitui o atual; ausentes mantêm o valor gravado.
type UpdateChatRequest chat.Fields

// ChatID retorna o campo "id" do corpo, quando for uma string
func (r UpdateChatRequest) ChatID() string {
	var id string
	if err := json.Unmarshal(r["id"], &id); err != nil {
		return ""
	}
	return id
}

// ChatEnvelope é a resposta de GET /chats/{id}
type ChatEnvelope struct {
	ID    string     `json:"id"`
	Chat  *chat.Chat `json:"chat"`
	Title string     `json:"title"`
}

// ChatListItem é um chat na listagem, acrescido do agrupamento por tempo
type ChatListItem struct {
	*chat.Chat
	TimeRange string `json:"time_range"`
}

// MarshalJSON grava o chat com o campo time_range acrescentado
func (i ChatListItem) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(i.Chat)
	if err != nil {
		return nil, err
	}
	var fields chat.Fields
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	fields["time_range"], _ = json.Marshal(i.TimeRange)
	return json.Marshal(fields)
}

// TagFilterRequest representa o corpo de POST /chats/tags
type TagFilterRequest struct {
	Name *string `json:"name"`
}

// TagResponse representa uma tag distinta
type TagResponse struct {
	Name string `json:"name"`
}

// ToChatEnvelope converte um chat na resposta de busca por ID
func ToChatEnvelope(c *chat.Chat) ChatEnvelope {
	return ChatEnvelope{ID: c.ID, Chat: c, Title: c.Title}
}

// ToChatList converte a coleção na resposta de listagem
func ToChatList(chats chat.Chats) []ChatListItem {
	items := make([]ChatListItem, len(chats))
	for i, c := range chats {
		items[i] = ChatListItem{Chat: c, TimeRange: TimeRangeJustNow}
	}
	return items
}

// ToTagList converte os nomes de tags na resposta de listagem
func ToTagList(tags []string) []TagResponse {
	items := make([]TagResponse, len(tags))
	for i, tag := range tags {
		items[i] = TagResponse{Name: tag}
	}
	return items
}
