package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/hugohenrick/chat-offline/internal/infrastructure/config"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	cfg := config.Load()

	// Criar aplicação
	app, err := NewApp(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Erro ao iniciar aplicação: %v", err)
	}
	defer app.Close()

	app.SetupRoutes()

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           app.GetRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		app.logger.Info("Servidor iniciado", "port", cfg.Port, "storage", cfg.Storage.Driver, "upstream", cfg.UpstreamURL)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Erro no servidor: %v", err)
		}
	}()

	// Aguardar sinal de encerramento
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		app.logger.Error("Erro ao encerrar servidor", "error", err)
	}
}
