// models содержит доменные сущности guestbook-service.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import "time"

// Ограничения на пользовательские поля записи.
// Совпадают с maxlength полей формы и с шириной колонок в схеме БД.
const (
	MaxNameLen    = 64
	MaxMessageLen = 255
)

// Entry — доменная сущность записи гостевой книги.
//
// Особенности:
//   - ID назначается БД (BIGSERIAL), монотонно растёт и никогда не переиспользуется;
//   - запись неизменяема после создания: операций update/delete в системе нет;
//   - CreatedAt выставляется БД в момент вставки (UTC), клиентское время не принимается.
type Entry struct {
	// ID — уникальный идентификатор записи.
	ID int64
	// Name — имя автора (непустое, не длиннее MaxNameLen).
	Name string
	// Message — текст записи (непустой, не длиннее MaxMessageLen).
	Message string
	// CreatedAt — время создания записи (UTC).
	CreatedAt time.Time
}
