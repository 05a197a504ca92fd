package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/chat-offline/internal/domain/chat"
	"github.com/hugohenrick/chat-offline/internal/infrastructure/storage"
	"github.com/hugohenrick/chat-offline/pkg/logger"
)

type failingStore struct {
	storage.Store
	err error
}

func (s failingStore) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, s.err
}

func TestStoreChatRepository_InitializesEmptyStore(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	repo := NewStoreChatRepository(store, "", logger.NewNopLogger())

	chats, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, chats, 1)
	assert.Equal(t, chat.DefaultTitle, chats[0].Title)

	// A coleção inicial também é gravada
	raw, err := store.Get(ctx, DefaultChatsKey)
	require.NoError(t, err)
	assert.Contains(t, string(raw), chats[0].ID)

	again, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, chats[0].ID, again[0].ID)
}

func TestStoreChatRepository_RecoversCorruptJSON(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "chats", []byte("{not json")))

	repo := NewStoreChatRepository(store, "chats", logger.NewNopLogger())
	chats, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, chats, 1)

	raw, err := store.Get(ctx, "chats")
	require.NoError(t, err)
	assert.NotEqual(t, "{not json", string(raw))
}

func TestStoreChatRepository_DropsNullEntries(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, DefaultChatsKey, []byte(`[null,{"id":"a","title":"A","extra":1},null]`)))

	repo := NewStoreChatRepository(store, "", logger.NewNopLogger())
	chats, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, chats, 1)
	assert.Equal(t, "a", chats[0].ID)
	assert.JSONEq(t, `1`, string(chats[0].Extra["extra"]))
}

func TestStoreChatRepository_SaveRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewStoreChatRepository(storage.NewMemoryStore(), "", logger.NewNopLogger())

	first, err := repo.Load(ctx)
	require.NoError(t, err)

	extra := chat.NewChat(first[0].CreatedAt)
	extra.Tags = []string{"work"}
	require.NoError(t, repo.Save(ctx, first.Prepend(extra)))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, extra.ID, loaded[0].ID)
	assert.Equal(t, []string{"work"}, loaded[0].Tags)
}

func TestStoreChatRepository_PropagatesStoreErrors(t *testing.T) {
	boom := errors.New("disk on fire")
	repo := NewStoreChatRepository(failingStore{err: boom}, "", logger.NewNopLogger())

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, boom)
}
