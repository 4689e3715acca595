// Презентационный слой guestbook-service: привязка HTTP-запроса к типизированным
// полям контроллера и рендеринг его помеченного результата в HTML.
//
// Экранирование пользовательских name/message происходит только здесь —
// контекстным автоэкранированием html/template. Ядро разметку не строит.
package http

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/pribylovaa/go-guestbook/internal/models"
	"github.com/pribylovaa/go-guestbook/internal/pagination"
	"github.com/pribylovaa/go-guestbook/internal/service"
	logctx "github.com/pribylovaa/go-guestbook/pkg/log"
)

//go:embed templates/*.gohtml
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.gohtml"))

// Service — контракт контроллера, который потребляет транспорт.
type Service interface {
	HandleRequest(ctx context.Context, req service.Request) (*service.Result, error)
}

// Handlers агрегирует зависимости HTTP-слоя.
type Handlers struct {
	svc Service
}

func NewHandlers(svc Service) *Handlers {
	return &Handlers{svc: svc}
}

// listingData — модель представления страницы списка.
type listingData struct {
	Entries       []models.Entry
	Page          int
	TotalCount    int64
	TotalPages    int
	Window        []pagination.Item
	Submitted     bool
	WriteFailed   bool
	HasPrev       bool
	HasNext       bool
	PrevPage      int
	NextPage      int
	MaxNameLen    int
	MaxMessageLen int
}

// entryData — модель представления точечного просмотра.
type entryData struct {
	Entry models.Entry
}

// notFoundData — модель представления страницы «запись не найдена».
type notFoundData struct {
	EntryID int64
}

// Guestbook — единственный пользовательский эндпойнт (GET и POST «/»).
//
// Привязка полей с документированными значениями по умолчанию:
// page — целое из query, мусор/отсутствие -> 1; id — целое из query,
// мусор/отсутствие -> 0; name/message — поля формы, только на POST.
// Некорректные значения не являются ошибками уровня HTTP.
func (h *Handlers) Guestbook(w http.ResponseWriter, r *http.Request) {
	req := service.Request{Page: 1}

	if v := strings.TrimSpace(r.URL.Query().Get("page")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			req.Page = n
		}
	}

	if v := strings.TrimSpace(r.URL.Query().Get("id")); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			req.EntryID = n
		}
	}

	if r.Method == http.MethodPost {
		req.Name = r.PostFormValue("name")
		req.Message = r.PostFormValue("message")
	}

	res, err := h.svc.HandleRequest(r.Context(), req)
	if err != nil {
		logctx.From(r.Context()).Error("handle_request_failed", slog.String("err", err.Error()))
		h.render(w, http.StatusServiceUnavailable, "unavailable.gohtml", nil)
		return
	}

	switch res.Kind {
	case service.KindEntry:
		h.render(w, http.StatusOK, "entry.gohtml", entryData{Entry: *res.Entry})
	case service.KindEntryNotFound:
		h.render(w, http.StatusNotFound, "not_found.gohtml", notFoundData{EntryID: res.EntryID})
	default:
		h.render(w, http.StatusOK, "guestbook.gohtml", newListingData(res.Listing))
	}
}

// newListingData дополняет данные контроллера ссылками Prev/Next и границами формы.
func newListingData(l *service.Listing) listingData {
	return listingData{
		Entries:       l.Entries,
		Page:          l.Page,
		TotalCount:    l.TotalCount,
		TotalPages:    l.TotalPages,
		Window:        l.Window,
		Submitted:     l.Submitted,
		WriteFailed:   l.WriteFailed,
		HasPrev:       l.Page > 1,
		HasNext:       l.Page < l.TotalPages,
		PrevPage:      l.Page - 1,
		NextPage:      l.Page + 1,
		MaxNameLen:    models.MaxNameLen,
		MaxMessageLen: models.MaxMessageLen,
	}
}

// render исполняет шаблон в буфер, чтобы не отдать клиенту половину страницы
// при ошибке исполнения.
func (h *Handlers) render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
