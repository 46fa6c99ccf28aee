// Package repository реализует хранилище данных на основе PostgreSQL
// для пользователей, статей и издателей. Предоставляет методы создания,
// чтения, обновления и удаления записей.
package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Storage инкапсулирует пул соединений с PostgreSQL
// и реализует методы работы с пользователями, статьями и издателями.
type Storage struct {
	DB *pgxpool.Pool
}

// New создаёт пул соединений к PostgreSQL и проверяет доступность базы.
func New(ctx context.Context, storageConnectionString string) (*Storage, error) {
	const op = "storage.repository.New"

	pool, err := pgxpool.New(ctx, storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{DB: pool}, nil
}

// Close закрывает пул соединений.
func (s *Storage) Close() {
	s.DB.Close()
}
