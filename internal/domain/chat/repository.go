package chat

import (
	"context"
)

// Repository define a interface de leitura e gravação da coleção de chats
type Repository interface {
	// Load retorna a coleção armazenada
	Load(ctx context.Context) (Chats, error)

	// Save substitui a coleção armazenada
	Save(ctx context.Context, chats Chats) error
}
