package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/hugohenrick/chat-offline/internal/adapter/repository"
	"github.com/hugohenrick/chat-offline/internal/cli"
	"github.com/hugohenrick/chat-offline/internal/infrastructure/config"
	"github.com/hugohenrick/chat-offline/internal/infrastructure/storage"
	"github.com/hugohenrick/chat-offline/pkg/logger"
)

func main() {
	// Carregar variáveis de ambiente
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.NewLogger()

	open := func(ctx context.Context) (cli.Repository, func() error, error) {
		store, err := storage.Open(ctx, cfg.Storage)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewStoreChatRepository(store, cfg.Storage.Key, log), store.Close, nil
	}

	if err := cli.NewRootCmd(open, config.DatabaseURL).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Erro:", err)
		os.Exit(1)
	}
}
