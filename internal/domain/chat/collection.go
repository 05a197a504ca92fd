package chat

import (
	"errors"
	"fmt"

	"github.com/scylladb/go-set/strset"
)

// Erros de validação da coleção
var (
	ErrEmptyChatID     = errors.New("chat sem ID")
	ErrDuplicateChatID = errors.New("ID de chat repetido")
)

// Chats é a coleção armazenada, do mais recente para o mais antigo
type Chats []*Chat

// FindByID busca um chat pelo ID
func (cs Chats) FindByID(id string) (*Chat, bool) {
	if i := cs.IndexOf(id); i >= 0 {
		return cs[i], true
	}
	return nil, false
}

// IndexOf retorna a posição do chat na coleção ou -1
func (cs Chats) IndexOf(id string) int {
	for i, c := range cs {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// Compact remove entradas nulas
func (cs Chats) Compact() Chats {
	result := make(Chats, 0, len(cs))
	for _, c := range cs {
		if c != nil {
			result = append(result, c)
		}
	}
	return result
}

// Prepend insere o chat no início da coleção
func (cs Chats) Prepend(c *Chat) Chats {
	return append(Chats{c}, cs...)
}

// Pinned retorna os chats fixados
func (cs Chats) Pinned() Chats {
	result := make(Chats, 0)
	for _, c := range cs {
		if c.Pinned {
			result = append(result, c)
		}
	}
	return result
}

// WithTag retorna os chats que possuem a tag
func (cs Chats) WithTag(tag string) Chats {
	result := make(Chats, 0)
	for _, c := range cs {
		if c.HasTag(tag) {
			result = append(result, c)
		}
	}
	return result
}

// DistinctTags retorna as tags sem repetição, na ordem em que aparecem
func (cs Chats) DistinctTags() []string {
	seen := strset.New()
	tags := make([]string, 0)
	for _, c := range cs {
		for _, tag := range c.Tags {
			if seen.Has(tag) {
				continue
			}
			seen.Add(tag)
			tags = append(tags, tag)
		}
	}
	return tags
}

// Validate verifica se todos os chats têm ID único e árvore de mensagens consistente
func (cs Chats) Validate() error {
	seen := strset.New()
	for i, c := range cs {
		if c == nil || c.ID == "" {
			return fmt.Errorf("%w: posição %d", ErrEmptyChatID, i)
		}
		if seen.Has(c.ID) {
			return fmt.Errorf("%w: %s", ErrDuplicateChatID, c.ID)
		}
		seen.Add(c.ID)
		if _, err := c.MessageTree(); err != nil {
			return fmt.Errorf("chat %s: %w", c.ID, err)
		}
	}
	return nil
}
