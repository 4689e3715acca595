package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pribylovaa/go-guestbook/internal/models"
	"github.com/pribylovaa/go-guestbook/internal/storage"
)

// InitSchema создаёт таблицу записей, если её ещё нет.
// Повторный вызов безопасен; содержимое совпадает с migrations/1_init_entries.up.sql.
func (s *Storage) InitSchema(ctx context.Context) error {
	const op = "storage/postgres/InitSchema"

	_, err := s.db.Exec(ctx, `
	CREATE TABLE IF NOT EXISTS entries (
		id         BIGSERIAL PRIMARY KEY,
		name       VARCHAR(64)  NOT NULL,
		message    VARCHAR(255) NOT NULL,
		created_at TIMESTAMPTZ  NOT NULL DEFAULT now()
	)`)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// CreateEntry добавляет запись одной командой INSERT ... RETURNING:
// id и created_at назначает БД, частичной записи быть не может.
// Уникальность и монотонность id обеспечивает последовательность BIGSERIAL,
// поэтому конкурентные вставки не требуют блокировок на нашей стороне.
func (s *Storage) CreateEntry(ctx context.Context, name, message string) (*models.Entry, error) {
	const op = "storage/postgres/CreateEntry"

	entry := models.Entry{
		Name:    name,
		Message: message,
	}

	err := s.db.QueryRow(ctx, `
	INSERT INTO entries (name, message)
	VALUES ($1, $2)
	RETURNING id, created_at
	`, name, message).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	entry.CreatedAt = entry.CreatedAt.UTC()

	return &entry, nil
}

// CountEntries возвращает общее число записей.
func (s *Storage) CountEntries(ctx context.Context) (int64, error) {
	const op = "storage/postgres/CountEntries"

	var count int64
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM entries`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

// ListEntries возвращает страницу записей в порядке id DESC.
// Сортировка по id эквивалентна «новые сверху»: id монотонно растёт.
// offset за концом набора даёт пустой результат без ошибки.
func (s *Storage) ListEntries(ctx context.Context, offset, limit int) ([]models.Entry, error) {
	const op = "storage/postgres/ListEntries"

	if limit <= 0 {
		return nil, nil
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := s.db.Query(ctx, `
	SELECT id, name, message, created_at
	FROM entries
	ORDER BY id DESC
	LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var entries []models.Entry
	for rows.Next() {
		var entry models.Entry
		if scanErr := rows.Scan(&entry.ID, &entry.Name, &entry.Message, &entry.CreatedAt); scanErr != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, scanErr)
		}

		// Нормализация в UTC.
		entry.CreatedAt = entry.CreatedAt.UTC()

		entries = append(entries, entry)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return entries, nil
}

// EntryByID возвращает запись по идентификатору.
// Если запись не найдена — storage.ErrNotFound.
func (s *Storage) EntryByID(ctx context.Context, id int64) (*models.Entry, error) {
	const op = "storage/postgres/EntryByID"

	var entry models.Entry
	err := s.db.QueryRow(ctx, `
	SELECT id, name, message, created_at
	FROM entries
	WHERE id = $1
	`, id).Scan(&entry.ID, &entry.Name, &entry.Message, &entry.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	entry.CreatedAt = entry.CreatedAt.UTC()

	return &entry, nil
}
