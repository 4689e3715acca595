// service содержит бизнес-логику guestbook-service.
package service

import (
	"errors"

	"github.com/pribylovaa/go-guestbook/internal/config"
	"github.com/pribylovaa/go-guestbook/internal/storage"
)

var (
	// ErrNotFound — сущность отсутствует.
	// Транспорт: страница «запись не найдена», HTTP 404.
	ErrNotFound = errors.New("not found")
	// ErrInternal — ошибка стораджа на читающем пути.
	// Транспорт: страница «сервис недоступен», HTTP 503.
	ErrInternal = errors.New("internal error")
)

// Service — описывает бизнес-логику guestbook-service.
type Service struct {
	storage storage.Storage
	cfg     config.Config
}

// New создает новый экземпляр Service.
func New(storage storage.Storage, cfg config.Config) *Service {
	return &Service{
		storage: storage,
		cfg:     cfg,
	}
}

// pageSize возвращает настроенный размер страницы с защитой от нуля.
func (s *Service) pageSize() int {
	if s.cfg.Guestbook.PageSize > 0 {
		return s.cfg.Guestbook.PageSize
	}

	return config.DefaultPageSize
}
