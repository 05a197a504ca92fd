package chat

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultTitle é o título do chat de demonstração
	DefaultTitle = "Demo Chat"

	// NewChatTitle é usado quando a criação não informa título
	NewChatTitle = "Nowy czat"

	// WelcomeMessageID identifica a mensagem inicial do chat de demonstração
	WelcomeMessageID = "welcome"

	welcomeContent = "Witaj w trybie demonstracyjnym! Tutaj wszystko działa lokalnie bez backendu."
)

// Roles de mensagens
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Erros de validação da árvore de mensagens
var (
	ErrUnknownParent    = errors.New("mensagem referencia um pai inexistente")
	ErrUnknownChild     = errors.New("mensagem referencia um filho inexistente")
	ErrBrokenLink       = errors.New("ligação pai/filho inconsistente")
	ErrCycle            = errors.New("árvore de mensagens contém ciclo")
	ErrUnknownCurrent   = errors.New("currentId não aponta para uma mensagem existente")
	ErrDuplicateMessage = errors.New("mensagem já existe no histórico")
	ErrNilMessage       = errors.New("mensagem nula no histórico")
	ErrMalformedHistory = errors.New("histórico em formato inesperado")
)

// Chat representa um chat armazenado com metadados e a conversa embutida.
// Campos enviados pelo cliente fora deste formato ficam em Extra.
type Chat struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	FolderID  *string   `json:"folder_id"`
	Pinned    bool      `json:"pinned"`
	Tags      []string  `json:"tags"`
	Chat      Data      `json:"chat"`
	Extra     Fields    `json:"-"`
}

// Data é a conversa embutida em um chat
type Data struct {
	Title   string                 `json:"title"`
	Models  []string               `json:"models"`
	Params  map[string]interface{} `json:"params"`
	Files   []interface{}          `json:"files"`
	History History                `json:"history"`
	Extra   Fields                 `json:"-"`
}

// History é a árvore de mensagens de uma conversa
type History struct {
	Messages  map[string]*Message `json:"messages"`
	CurrentID *string             `json:"currentId"`
	Extra     Fields              `json:"-"`
}

// Message é um nó da árvore de mensagens
type Message struct {
	ID          string   `json:"id"`
	ParentID    *string  `json:"parentId"`
	ChildrenIDs []string `json:"childrenIds"`
	Role        string   `json:"role"`
	Content     string   `json:"content"`
	Timestamp   int64    `json:"timestamp"`
	Model       string   `json:"model,omitempty"`
	Extra       Fields   `json:"-"`
}

type (
	chatFields    Chat
	dataFields    Data
	historyFields History
	messageFields Message
)

// MarshalJSON grava os campos tipados junto com Extra
func (c Chat) MarshalJSON() ([]byte, error) { return encodeObject(chatFields(c), c.Extra) }

// UnmarshalJSON preserva em Extra o que não cabe nos campos tipados
func (c *Chat) UnmarshalJSON(data []byte) error {
	var f chatFields
	extra, err := decodeObject(data, &f)
	if err != nil {
		return err
	}
	*c = Chat(f)
	c.Extra = extra
	return nil
}

func (d Data) MarshalJSON() ([]byte, error) { return encodeObject(dataFields(d), d.Extra) }

func (d *Data) UnmarshalJSON(data []byte) error {
	var f dataFields
	extra, err := decodeObject(data, &f)
	if err != nil {
		return err
	}
	*d = Data(f)
	d.Extra = extra
	return nil
}

func (h History) MarshalJSON() ([]byte, error) { return encodeObject(historyFields(h), h.Extra) }

func (h *History) UnmarshalJSON(data []byte) error {
	var f historyFields
	extra, err := decodeObject(data, &f)
	if err != nil {
		return err
	}
	*h = History(f)
	h.Extra = extra
	return nil
}

func (m Message) MarshalJSON() ([]byte, error) { return encodeObject(messageFields(m), m.Extra) }

func (m *Message) UnmarshalJSON(data []byte) error {
	var f messageFields
	extra, err := decodeObject(data, &f)
	if err != nil {
		return err
	}
	*m = Message(f)
	m.Extra = extra
	return nil
}

// NewChat cria o chat de demonstração com a mensagem de boas-vindas
func NewChat(now time.Time) *Chat {
	return &Chat{
		ID:        uuid.New().String(),
		Title:     DefaultTitle,
		CreatedAt: now,
		UpdatedAt: now,
		Tags:      []string{},
		Chat:      NewData(now),
	}
}

// NewChatFromForm cria um chat a partir do formulário de criação. Os campos
// do formulário sobrepõem o chat de demonstração tanto no registro quanto na
// conversa embutida; id é sempre novo e o título padrão é NewChatTitle.
func NewChatFromForm(now time.Time, form Fields) (*Chat, error) {
	base := NewChat(now)
	record, err := toFields(base)
	if err != nil {
		return nil, err
	}
	conversation, err := toFields(base.Chat)
	if err != nil {
		return nil, err
	}
	baseHistory := conversation["history"]

	for k, v := range form {
		record[k] = v
		conversation[k] = v
	}
	if isNull(form["history"]) {
		conversation["history"] = baseHistory
	}

	title, _ := json.Marshal(NewChatTitle)
	if v := form["title"]; !isNull(v) {
		title = v
	}
	id, _ := json.Marshal(base.ID)
	record["title"] = title
	record["id"] = id
	if record["chat"], err = json.Marshal(conversation); err != nil {
		return nil, err
	}

	return decodeChat(record)
}

// Merge devolve uma cópia do chat com os campos informados substituídos.
// O id nunca muda.
func (c *Chat) Merge(fields Fields) (*Chat, error) {
	record, err := toFields(c)
	if err != nil {
		return nil, err
	}
	for k, v := range fields {
		if k == "id" {
			continue
		}
		record[k] = v
	}
	return decodeChat(record)
}

// Touch atualiza updated_at
func (c *Chat) Touch(now time.Time) {
	c.UpdatedAt = now
	delete(c.Extra, "updated_at")
}

// MessageTree retorna a árvore de mensagens validada
func (c *Chat) MessageTree() (*History, error) {
	if _, raw := c.Extra["chat"]; raw {
		return nil, fmt.Errorf("%w: chat", ErrMalformedHistory)
	}
	if _, raw := c.Chat.Extra["history"]; raw {
		return nil, fmt.Errorf("%w: history", ErrMalformedHistory)
	}
	if err := c.Chat.History.Validate(); err != nil {
		return nil, err
	}
	return &c.Chat.History, nil
}

func decodeChat(record Fields) (*Chat, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	var c Chat
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func isNull(v json.RawMessage) bool {
	return len(v) == 0 || bytes.Equal(bytes.TrimSpace(v), nullLiteral)
}

// NewData cria a conversa padrão
func NewData(now time.Time) Data {
	return Data{
		Title:   DefaultTitle,
		Models:  []string{"gpt-4"},
		Params:  map[string]interface{}{},
		Files:   []interface{}{},
		History: NewHistory(now),
	}
}

// NewHistory cria um histórico contendo apenas a mensagem de boas-vindas
func NewHistory(now time.Time) History {
	current := WelcomeMessageID
	return History{
		Messages: map[string]*Message{
			WelcomeMessageID: {
				ID:          WelcomeMessageID,
				ChildrenIDs: []string{},
				Role:        RoleAssistant,
				Content:     welcomeContent,
				Timestamp:   now.Unix(),
			},
		},
		CurrentID: &current,
	}
}

// HasTag verifica se o chat possui a tag
func (c *Chat) HasTag(tag string) bool {
	return slices.Contains(c.Tags, tag)
}

// Roots retorna os IDs das mensagens sem pai
func (h *History) Roots() []string {
	roots := make([]string, 0)
	for id, msg := range h.Messages {
		if msg != nil && msg.ParentID == nil {
			roots = append(roots, id)
		}
	}
	return roots
}

// Validate verifica se as mensagens formam uma floresta consistente
func (h *History) Validate() error {
	for _, name := range []string{"messages", "currentId"} {
		if _, raw := h.Extra[name]; raw {
			return fmt.Errorf("%w: %s", ErrMalformedHistory, name)
		}
	}
	for id, msg := range h.Messages {
		if msg == nil {
			return fmt.Errorf("%w: %s", ErrNilMessage, id)
		}
		for _, name := range []string{"parentId", "childrenIds"} {
			if _, raw := msg.Extra[name]; raw {
				return fmt.Errorf("%w: %s.%s", ErrMalformedHistory, id, name)
			}
		}
	}

	for id, msg := range h.Messages {
		if msg.ParentID != nil {
			parent, ok := h.Messages[*msg.ParentID]
			if !ok {
				return fmt.Errorf("%w: %s -> %s", ErrUnknownParent, id, *msg.ParentID)
			}
			if !slices.Contains(parent.ChildrenIDs, id) {
				return fmt.Errorf("%w: %s não está nos filhos de %s", ErrBrokenLink, id, *msg.ParentID)
			}
		}
		for _, childID := range msg.ChildrenIDs {
			child, ok := h.Messages[childID]
			if !ok {
				return fmt.Errorf("%w: %s -> %s", ErrUnknownChild, id, childID)
			}
			if child.ParentID == nil || *child.ParentID != id {
				return fmt.Errorf("%w: %s não é pai de %s", ErrBrokenLink, id, childID)
			}
		}
	}

	// Subir pelos pais a partir de cada nó deve terminar em uma raiz
	for id := range h.Messages {
		seen := map[string]bool{}
		for cur := id; ; {
			if seen[cur] {
				return fmt.Errorf("%w: %s", ErrCycle, id)
			}
			seen[cur] = true
			parentID := h.Messages[cur].ParentID
			if parentID == nil {
				break
			}
			cur = *parentID
		}
	}

	if h.CurrentID != nil {
		if _, ok := h.Messages[*h.CurrentID]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownCurrent, *h.CurrentID)
		}
	}
	return nil
}

// Append adiciona a mensagem como filha da mensagem atual e a torna a atual.
// Um ID vazio recebe um UUID novo.
func (h *History) Append(msg *Message) error {
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	if h.Messages == nil {
		h.Messages = map[string]*Message{}
	}
	if _, exists := h.Messages[msg.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateMessage, msg.ID)
	}

	msg.ParentID = nil
	if h.CurrentID != nil {
		parent := h.Messages[*h.CurrentID]
		if parent == nil {
			return fmt.Errorf("%w: %s", ErrUnknownCurrent, *h.CurrentID)
		}
		parentID := *h.CurrentID
		msg.ParentID = &parentID
		parent.ChildrenIDs = append(parent.ChildrenIDs, msg.ID)
	}
	if msg.ChildrenIDs == nil {
		msg.ChildrenIDs = []string{}
	}

	h.Messages[msg.ID] = msg
	current := msg.ID
	h.CurrentID = &current
	delete(h.Extra, "currentId")
	return nil
}
