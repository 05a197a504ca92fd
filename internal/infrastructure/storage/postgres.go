package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// querier é o subconjunto do pgxpool.Pool usado pelo PostgresStore
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStore implementa Store sobre a tabela mock_storage criada pelas migrações
type PostgresStore struct {
	db      querier
	closeFn func()
}

// NewPostgresStore cria o armazenamento sobre um pool já conectado.
// closeFn é chamado em Close e pode ser nil.
func NewPostgresStore(db querier, closeFn func()) *PostgresStore {
	return &PostgresStore{db: db, closeFn: closeFn}
}

// Get implementa Store.Get
func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	var value string
	err := s.db.QueryRow(ctx, "SELECT value FROM mock_storage WHERE key = $1", key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("erro ao ler chave %s: %w", key, err)
	}
	return []byte(value), nil
}

// Set implementa Store.Set
func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	_, err := s.db.Exec(ctx, `
		INSERT INTO mock_storage (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`, key, string(value))
	if err != nil {
		return fmt.Errorf("erro ao gravar chave %s: %w", key, err)
	}
	return nil
}

// Close implementa Store.Close
func (s *PostgresStore) Close() error {
	if s.closeFn != nil {
		s.closeFn()
	}
	return nil
}
