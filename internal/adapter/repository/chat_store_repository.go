package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hugohenrick/chat-offline/internal/domain/chat"
	"github.com/hugohenrick/chat-offline/internal/infrastructure/storage"
	"github.com/hugohenrick/chat-offline/pkg/logger"
)

// DefaultChatsKey é a chave sob a qual a coleção é gravada
const DefaultChatsKey = "mock_chats"

// StoreChatRepository implementa chat.Repository gravando a coleção inteira,
// codificada em JSON, em uma única chave do Store
type StoreChatRepository struct {
	store  storage.Store
	key    string
	logger logger.Logger
	now    func() time.Time
}

// NewStoreChatRepository cria uma nova instância de StoreChatRepository
func NewStoreChatRepository(store storage.Store, key string, log logger.Logger) *StoreChatRepository {
	if key == "" {
		key = DefaultChatsKey
	}
	return &StoreChatRepository{
		store:  store,
		key:    key,
		logger: log,
		now:    time.Now,
	}
}

// Load implementa chat.Repository.Load. Uma coleção ausente ou corrompida é
// substituída pela coleção inicial com o chat de demonstração.
func (r *StoreChatRepository) Load(ctx context.Context) (chat.Chats, error) {
	data, err := r.store.Get(ctx, r.key)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return r.reset(ctx)
	case err != nil:
		return nil, fmt.Errorf("erro ao carregar chats: %w", err)
	}

	var chats chat.Chats
	if err := json.Unmarshal(data, &chats); err != nil {
		r.logger.Warn("Não foi possível ler os chats gravados, reiniciando", "key", r.key, "error", err)
		return r.reset(ctx)
	}
	if compact := chats.Compact(); len(compact) != len(chats) {
		r.logger.Warn("Chats nulos descartados", "key", r.key, "count", len(chats)-len(compact))
		chats = compact
	}
	return chats, nil
}

// Save implementa chat.Repository.Save
func (r *StoreChatRepository) Save(ctx context.Context, chats chat.Chats) error {
	if chats == nil {
		chats = chat.Chats{}
	}
	data, err := json.Marshal(chats)
	if err != nil {
		return fmt.Errorf("erro ao serializar chats: %w", err)
	}
	if err := r.store.Set(ctx, r.key, data); err != nil {
		return fmt.Errorf("erro ao salvar chats: %w", err)
	}
	return nil
}

// Reset grava a coleção inicial, descartando a atual
func (r *StoreChatRepository) Reset(ctx context.Context) (chat.Chats, error) {
	return r.reset(ctx)
}

func (r *StoreChatRepository) reset(ctx context.Context) (chat.Chats, error) {
	initial := chat.Chats{chat.NewChat(r.now())}
	if err := r.Save(ctx, initial); err != nil {
		return nil, err
	}
	return initial, nil
}
