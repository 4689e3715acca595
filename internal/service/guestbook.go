package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pribylovaa/go-guestbook/internal/models"
	"github.com/pribylovaa/go-guestbook/internal/pagination"
	"github.com/pribylovaa/go-guestbook/internal/storage"
	"github.com/pribylovaa/go-guestbook/pkg/log"
)

// Request — уже типизированные поля входящего запроса.
// Привязка к HTTP (значения по умолчанию при отсутствии/мусоре:
// Page -> 1, EntryID -> 0) — обязанность транспортного слоя.
type Request struct {
	// Page — запрошенная страница списка.
	Page int
	// EntryID — идентификатор записи для точечного просмотра; 0 — не запрошен.
	EntryID int64
	// Name, Message — поля формы; присутствуют только при отправке записи.
	Name    string
	Message string
}

// ResultKind — дискриминатор результата обработки запроса.
type ResultKind int

const (
	// KindListing — страница списка записей (в том числе после отправки формы).
	KindListing ResultKind = iota
	// KindEntry — точечный просмотр одной записи.
	KindEntry
	// KindEntryNotFound — запись с запрошенным id отсутствует.
	KindEntryNotFound
)

// Listing — данные страницы списка для рендеринга.
type Listing struct {
	Entries    []models.Entry
	Page       int
	TotalCount int64
	TotalPages int
	Window     []pagination.Item
	// Submitted — в этом запросе была принята новая запись.
	Submitted bool
	// WriteFailed — вставка не удалась; список всё равно отрисовывается,
	// транспорт показывает встроенный индикатор ошибки.
	WriteFailed bool
}

// Result — помеченный результат обработки: ровно один из вариантов заполнен.
type Result struct {
	Kind    ResultKind
	Listing *Listing
	Entry   *models.Entry
	// EntryID — запрошенный id для варианта KindEntryNotFound.
	EntryID int64
}

// HandleRequest классифицирует запрос и выполняет ровно один из сценариев:
// отправка формы с последующим списком, точечный просмотр или список.
//
// Порядок решения фиксирован:
//  1. нормализация страницы: page < 1 -> 1;
//  2. отправка формы — если оба поля непусты после TrimSpace; успех
//     принудительно возвращает на страницу 1, неуспех помечается
//     WriteFailed и не прерывает обработку (список запрошенной страницы);
//  3. EntryID > 0 — точечный просмотр; окно пагинации не вычисляется,
//     отсутствие записи — отдельный результат, а не ошибка;
//  4. иначе — список: счётчик, смещение, страница записей, окно пейджера.
//
// На запрос приходится не более одной вставки. Ошибки читающего пути
// оборачиваются в ErrInternal и дальше сервиса не распространяются.
func (s *Service) HandleRequest(ctx context.Context, req Request) (*Result, error) {
	const op = "service/guestbook/HandleRequest"

	lg := log.From(ctx).With(slog.String("op", op))

	page := req.Page
	if page < 1 {
		page = 1
	}

	var (
		submitted   bool
		writeFailed bool
	)

	name := strings.TrimSpace(req.Name)
	message := strings.TrimSpace(req.Message)
	if name != "" && message != "" {
		// Привязка формы ограничивает длину полей, но на границы
		// maxlength со стороны клиента полагаться нельзя.
		name = truncate(name, models.MaxNameLen)
		message = truncate(message, models.MaxMessageLen)

		entry, err := s.storage.CreateEntry(ctx, name, message)
		if err != nil {
			lg.Error("create_entry_failed", slog.String("err", err.Error()))

			writeFailed = true
		} else {
			lg.Info("entry_created", slog.Int64("id", entry.ID))

			submitted = true
			// После успешной отправки всегда показываем свежайшую страницу.
			page = 1
		}

		return s.listing(ctx, page, submitted, writeFailed)
	}

	if req.EntryID > 0 {
		return s.singleEntry(ctx, req.EntryID)
	}

	return s.listing(ctx, page, false, false)
}

// singleEntry — точечный просмотр записи по id.
func (s *Service) singleEntry(ctx context.Context, id int64) (*Result, error) {
	const op = "service/guestbook/singleEntry"

	lg := log.From(ctx).With(slog.String("op", op), slog.Int64("id", id))

	entry, err := s.storage.EntryByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Info("entry_not_found")

			return &Result{Kind: KindEntryNotFound, EntryID: id}, nil
		}

		lg.Error("entry_by_id_storage_error", slog.String("err", err.Error()))

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return &Result{Kind: KindEntry, Entry: entry}, nil
}

// listing — сборка страницы списка: счётчик, выборка, окно пейджера.
// Счётчик может устареть к моменту выборки при конкурентной вставке;
// это допустимо и ошибкой не считается.
func (s *Service) listing(ctx context.Context, page int, submitted, writeFailed bool) (*Result, error) {
	const op = "service/guestbook/listing"

	lg := log.From(ctx).With(slog.String("op", op), slog.Int("page", page))

	totalCount, err := s.storage.CountEntries(ctx)
	if err != nil {
		lg.Error("count_entries_storage_error", slog.String("err", err.Error()))

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	pageSize := s.pageSize()
	totalPages := pagination.TotalPages(totalCount, pageSize)

	entries, err := s.storage.ListEntries(ctx, pagination.Offset(page, pageSize), pageSize)
	if err != nil {
		lg.Error("list_entries_storage_error", slog.String("err", err.Error()))

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	lg.Info("listing_ok",
		slog.Int("items", len(entries)),
		slog.Int64("total", totalCount),
		slog.Bool("submitted", submitted),
		slog.Bool("write_failed", writeFailed),
	)

	return &Result{
		Kind: KindListing,
		Listing: &Listing{
			Entries:     entries,
			Page:        page,
			TotalCount:  totalCount,
			TotalPages:  totalPages,
			Window:      pagination.Window(page, totalPages),
			Submitted:   submitted,
			WriteFailed: writeFailed,
		},
	}, nil
}

// truncate обрезает строку до max символов (рун), не ломая кодировку.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}

	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	return string(runes[:max])
}
