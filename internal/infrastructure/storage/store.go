package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Drivers de armazenamento suportados
const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var (
	// ErrNotFound indica que a chave não possui valor gravado
	ErrNotFound = errors.New("chave não encontrada")

	// ErrInvalidKey indica uma chave vazia ou com caracteres não permitidos
	ErrInvalidKey = errors.New("chave inválida")

	// ErrUnknownDriver indica um driver de armazenamento não suportado
	ErrUnknownDriver = errors.New("driver de armazenamento desconhecido")
)

// Store é um armazenamento chave/valor durável, equivalente ao localStorage do navegador
type Store interface {
	// Get retorna o valor gravado na chave ou ErrNotFound
	Get(ctx context.Context, key string) ([]byte, error)

	// Set grava o valor na chave, substituindo o anterior
	Set(ctx context.Context, key string, value []byte) error

	// Close libera os recursos do armazenamento
	Close() error
}

// validateKey rejeita chaves que não podem ser usadas como nome de arquivo ou registro
func validateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("%w: vazia", ErrInvalidKey)
	}
	if strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
