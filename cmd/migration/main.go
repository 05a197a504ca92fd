package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/hugohenrick/chat-offline/internal/infrastructure/config"
	"github.com/hugohenrick/chat-offline/internal/infrastructure/database"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	dbURL := config.DatabaseURL()

	// Executar as migrações
	if err := database.RunMigrations(dbURL); err != nil {
		log.Fatalf("Erro ao executar migrações: %v", err)
	}

	version, dirty, err := database.MigrationVersion(dbURL)
	if err != nil {
		log.Fatalf("Erro ao verificar versão das migrações: %v", err)
	}
	log.Printf("Migrações executadas com sucesso! Versão: %d (dirty=%t)", version, dirty)
}
