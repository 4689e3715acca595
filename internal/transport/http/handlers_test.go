package http

// Тесты презентационного слоя (handlers.go, router.go).
// Подход как в сервисных тестах:
//  - gomock для слоя storage ниже сервиса;
//  - конструируем реальный service.Service поверх моков;
//  - проверяем привязку query/form-полей с документированными дефолтами,
//    маппинг результатов контроллера в статусы/страницы и экранирование
//    пользовательского текста в разметке.

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-guestbook/internal/config"
	"github.com/pribylovaa/go-guestbook/internal/models"
	"github.com/pribylovaa/go-guestbook/internal/service"
	"github.com/pribylovaa/go-guestbook/internal/storage"
	"github.com/pribylovaa/go-guestbook/mocks"
)

// newHandlerWithMocks — хелпер сборки роутера с реальным сервисом поверх мок-хранилища.
func newHandlerWithMocks(t *testing.T) (http.Handler, *mocks.MockStorage, *gomock.Controller) {
	t.Helper()

	ctrl := gomock.NewController(t)
	ms := mocks.NewMockStorage(ctrl)

	cfg := config.Config{Guestbook: config.GuestbookConfig{PageSize: 10}}
	svc := service.New(ms, cfg)

	silent := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewRouter(svc, Options{Logger: silent, Timeout: 5 * time.Second})

	return h, ms, ctrl
}

// mustEntry — быстрый хелпер доменной модели.
func mustEntry(id int64, name, message string) models.Entry {
	return models.Entry{
		ID:        id,
		Name:      name,
		Message:   message,
		CreatedAt: time.Unix(1710000000, 0).UTC(),
	}
}

// Пустая книга: страница без записей, без пейджера, с приглашением.
func TestHTTP_Listing_EmptyStore(t *testing.T) {
	h, ms, ctrl := newHandlerWithMocks(t)
	defer ctrl.Finish()

	ms.EXPECT().CountEntries(gomock.Any()).Return(int64(0), nil)
	ms.EXPECT().ListEntries(gomock.Any(), 0, 10).Return(nil, nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "No entries yet. Be the first!")
	require.NotContains(t, body, "class=\"pager\"")
}

// Мусор в page не является ошибкой HTTP: применяется дефолт 1.
func TestHTTP_Listing_MalformedPageDefaultsToOne(t *testing.T) {
	h, ms, ctrl := newHandlerWithMocks(t)
	defer ctrl.Finish()

	ms.EXPECT().CountEntries(gomock.Any()).Return(int64(3), nil)
	ms.EXPECT().ListEntries(gomock.Any(), 0, 10).Return([]models.Entry{mustEntry(3, "a", "b")}, nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?page=abc", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Guestbook (Page 1)")
}

// 25 записей, вторая страница: пейджер с окном {1,2,3} и сводкой.
func TestHTTP_Listing_SecondPage(t *testing.T) {
	h, ms, ctrl := newHandlerWithMocks(t)
	defer ctrl.Finish()

	ms.EXPECT().CountEntries(gomock.Any()).Return(int64(25), nil)
	ms.EXPECT().ListEntries(gomock.Any(), 10, 10).Return([]models.Entry{mustEntry(15, "u", "m")}, nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?page=2", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "Page 2 of 3 (Total: 25 entries)")
	require.Contains(t, body, `<a href="?page=1">1</a>`)
	require.Contains(t, body, `<span class="current">2</span>`)
	require.Contains(t, body, `<a href="?page=3">3</a>`)
	require.Contains(t, body, "Prev")
	require.Contains(t, body, "Next")
}

// Точечный просмотр существующей записи.
func TestHTTP_SingleEntry_OK(t *testing.T) {
	h, ms, ctrl := newHandlerWithMocks(t)
	defer ctrl.Finish()

	entry := mustEntry(5, "Carol", "Hey there")
	ms.EXPECT().EntryByID(gomock.Any(), int64(5)).Return(&entry, nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?id=5", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "Entry #5")
	require.Contains(t, body, "Carol")
	require.Contains(t, body, "Hey there")
}

// Отсутствующая запись — отдельная страница и 404.
func TestHTTP_SingleEntry_NotFound(t *testing.T) {
	h, ms, ctrl := newHandlerWithMocks(t)
	defer ctrl.Finish()

	ms.EXPECT().EntryByID(gomock.Any(), int64(7)).Return(nil, storage.ErrNotFound)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?id=7", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "Entry #7 not found")
}

// postForm — собирает POST-запрос с form-urlencoded телом.
func postForm(target, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// Успешная отправка формы: вставка с обрезанными пробелами,
// ответ — список страницы 1 со свежей записью сверху.
func TestHTTP_Submission_OK(t *testing.T) {
	h, ms, ctrl := newHandlerWithMocks(t)
	defer ctrl.Finish()

	created := mustEntry(26, "Alice", "Hi")
	ms.EXPECT().CreateEntry(gomock.Any(), "Alice", "Hi").Return(&created, nil)
	ms.EXPECT().CountEntries(gomock.Any()).Return(int64(26), nil)
	ms.EXPECT().ListEntries(gomock.Any(), 0, 10).Return([]models.Entry{created}, nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, postForm("/?page=7", "name=+Alice+&message=+Hi+"))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "Guestbook (Page 1)")
	require.Contains(t, body, "#26 Alice")
}

// Сбой вставки: список запрошенной страницы с встроенным индикатором ошибки.
func TestHTTP_Submission_WriteFailedBanner(t *testing.T) {
	h, ms, ctrl := newHandlerWithMocks(t)
	defer ctrl.Finish()

	ms.EXPECT().CreateEntry(gomock.Any(), "Bob", "Hello").Return(nil, errors.New("db down"))
	ms.EXPECT().CountEntries(gomock.Any()).Return(int64(25), nil)
	ms.EXPECT().ListEntries(gomock.Any(), 20, 10).Return(nil, nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, postForm("/?page=3", "name=Bob&message=Hello"))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "could not be saved")
	require.Contains(t, body, "Guestbook (Page 3)")
}

// Неполная форма: вставки нет, список запрошенной страницы без индикатора.
func TestHTTP_Submission_EmptyNameIsNotSubmission(t *testing.T) {
	h, ms, ctrl := newHandlerWithMocks(t)
	defer ctrl.Finish()

	ms.EXPECT().CountEntries(gomock.Any()).Return(int64(0), nil)
	ms.EXPECT().ListEntries(gomock.Any(), 0, 10).Return(nil, nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, postForm("/", "name=&message=Hi"))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotContains(t, rec.Body.String(), "could not be saved")
}

// Пользовательский текст экранируется при рендеринге: разметка из name/message
// не попадает в страницу как есть.
func TestHTTP_Listing_EscapesUserContent(t *testing.T) {
	h, ms, ctrl := newHandlerWithMocks(t)
	defer ctrl.Finish()

	evil := mustEntry(1, `<script>alert("x")</script>`, `<b onmouseover="y">hover</b>`)
	ms.EXPECT().CountEntries(gomock.Any()).Return(int64(1), nil)
	ms.EXPECT().ListEntries(gomock.Any(), 0, 10).Return([]models.Entry{evil}, nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.NotContains(t, body, "<script>alert")
	require.NotContains(t, body, `<b onmouseover=`)
	require.Contains(t, body, "&lt;script&gt;")
}

// Ошибка читающего пути — страница «сервис недоступен» и 503.
func TestHTTP_Listing_StorageErrorUnavailable(t *testing.T) {
	h, ms, ctrl := newHandlerWithMocks(t)
	defer ctrl.Finish()

	ms.EXPECT().CountEntries(gomock.Any()).Return(int64(0), errors.New("db down"))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Contains(t, rec.Body.String(), "Service temporarily unavailable")
}
