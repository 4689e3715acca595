// pagination — чистые вычисления постраничной навигации.
// Пакет не делает I/O и не зависит от хранилища: на входе счётчики,
// на выходе смещения и «окно» номеров страниц для пейджера.
package pagination

// Item — элемент окна пагинации: либо номер страницы, либо маркер разрыва.
// Транспорт рендерит Gap как «...», не перевычисляя логику пропусков.
type Item struct {
	// Page — номер страницы; 0, если элемент является разрывом.
	Page int
	// Gap — true для маркера разрыва между несмежными страницами.
	Gap bool
}

// Offset возвращает смещение выборки для страницы page при размере pageSize.
// Ожидает page >= 1: нормализация значения — обязанность вызывающего слоя.
func Offset(page, pageSize int) int {
	return (page - 1) * pageSize
}

// TotalPages возвращает количество страниц: ceil(totalCount/pageSize),
// но не меньше 1 — пустая книга концептуально имеет первую страницу без записей.
func TotalPages(totalCount int64, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}

	pages := int((totalCount + int64(pageSize) - 1) / int64(pageSize))
	if pages < 1 {
		pages = 1
	}

	return pages
}

// Window возвращает компактное окно номеров страниц вокруг current:
// всегда страница 1 и последняя, до двух страниц с каждой стороны от current,
// маркеры Gap на местах разрывов. При total <= 1 окно пустое (пейджер не нужен).
//
// Выход current за границы не считается ошибкой: значение прижимается
// к ближайшей валидной странице, паник нет.
func Window(current, total int) []Item {
	if total <= 1 {
		return nil
	}

	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	lo := current - 2
	if lo < 1 {
		lo = 1
	}
	hi := current + 2
	if hi > total {
		hi = total
	}

	var win []Item

	if lo > 1 {
		win = append(win, Item{Page: 1})
		if lo > 2 {
			win = append(win, Item{Gap: true})
		}
	}

	for p := lo; p <= hi; p++ {
		win = append(win, Item{Page: p})
	}

	if hi < total {
		if hi < total-1 {
			win = append(win, Item{Gap: true})
		}
		win = append(win, Item{Page: total})
	}

	return win
}
