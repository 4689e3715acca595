// storage определяет контракты доступа к БД для guestbook-service.
package storage

import (
	"context"
	"errors"

	"github.com/pribylovaa/go-guestbook/internal/models"
)

// ErrNotFound — сущность отсутствует в хранилище.
// Для точечного чтения это штатный исход, а не сбой стораджа.
var ErrNotFound = errors.New("not found")

// EntriesStorage описывает операции над сущностью models.Entry.
//
// Записи неизменяемы: единственная мутация — CreateEntry; остальные операции
// читающие и могут выполняться конкурентно (изоляция read committed,
// устаревший счётчик относительно выборки страницы допустим).
type EntriesStorage interface {
	// InitSchema создаёт таблицу записей, если её ещё нет. Идемпотентна.
	InitSchema(ctx context.Context) error
	// CreateEntry атомарно добавляет запись; id и created_at назначает БД.
	CreateEntry(ctx context.Context, name, message string) (*models.Entry, error)
	// CountEntries возвращает общее число записей (0 для пустой книги).
	CountEntries(ctx context.Context) (int64, error)
	// ListEntries возвращает до limit записей в порядке id DESC, пропустив offset.
	// Смещение за концом набора — не ошибка: возвращается пустой срез.
	ListEntries(ctx context.Context, offset, limit int) ([]models.Entry, error)
	// EntryByID возвращает запись по идентификатору.
	// Если запись не найдена — ErrNotFound.
	EntryByID(ctx context.Context, id int64) (*models.Entry, error)
}

// Storage задаёт контракт доступа к хранилищу для guestbook-сервиса.
type Storage interface {
	EntriesStorage
	Close()
}
