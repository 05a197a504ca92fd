package config

import (
	"fmt"
	"os"
	"strings"
)

// Config contém as configurações da aplicação lidas do ambiente
type Config struct {
	// Porta HTTP do servidor
	Port string

	// Modo do gin (debug, release, test)
	GinMode string

	// Origens permitidas pelo CORS
	CORSAllowedOrigins []string

	// URL para onde as requisições não simuladas são encaminhadas. Vazia desativa o proxy.
	UpstreamURL string

	Storage StorageConfig
}

// StorageConfig define onde a coleção de chats é persistida
type StorageConfig struct {
	// Driver: memory, file, sqlite ou postgres
	Driver string

	// Diretório (file) ou arquivo do banco (sqlite)
	Path string

	// Chave sob a qual a coleção é gravada
	Key string

	// Usado apenas pelo driver postgres
	DatabaseURL string
}

// Load lê a configuração das variáveis de ambiente, aplicando valores padrão
func Load() *Config {
	driver := strings.ToLower(getEnv("STORAGE_DRIVER", "file"))

	defaultPath := "./data"
	if driver == "sqlite" {
		defaultPath = "./data/mock.db"
	}

	return &Config{
		Port:               getEnv("SERVER_PORT", "8080"),
		GinMode:            getEnv("GIN_MODE", "debug"),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		UpstreamURL:        getEnvOrDefault("UPSTREAM_URL", ""),
		Storage: StorageConfig{
			Driver:      driver,
			Path:        getEnv("STORAGE_PATH", defaultPath),
			Key:         getEnv("STORAGE_KEY", "mock_chats"),
			DatabaseURL: DatabaseURL(),
		},
	}
}

// DatabaseURL retorna DATABASE_URL ou monta a URL a partir das variáveis DB_*
func DatabaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "chat_offline"),
		getEnv("DB_SSL_MODE", "disable"),
	)
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}

// getEnv retorna o valor de uma variável de ambiente ou um valor padrão
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvOrDefault retorna o valor de uma variável de ambiente ou um valor padrão
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
