package pagination

// Тесты чистых вычислений пагинации (pagination.go):
//  - Offset: арифметика смещения для page >= 1;
//  - TotalPages: ceil с минимумом 1 (пустая книга — одна концептуальная страница);
//  - Window: страницы 1 и последняя всегда в окне при total > 1, пустое окно
//    при total <= 1, маркеры разрывов на местах несмежности, деградация
//    без паники при current вне диапазона.

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOffset(t *testing.T) {
	require.Equal(t, 0, Offset(1, 10))
	require.Equal(t, 10, Offset(2, 10))
	require.Equal(t, 90, Offset(10, 10))
	require.Equal(t, 14, Offset(3, 7))
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		name       string
		totalCount int64
		pageSize   int
		want       int
	}{
		{"empty store still has page 1", 0, 10, 1},
		{"exact multiple", 20, 10, 2},
		{"remainder rounds up", 25, 10, 3},
		{"single entry", 1, 10, 1},
		{"page size one", 7, 1, 7},
		{"degenerate page size", 100, 0, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, TotalPages(tc.totalCount, tc.pageSize))
		})
	}
}

// pages — вспомогалка: раскладывает окно в срез номеров, -1 на месте разрыва.
func pages(items []Item) []int {
	var out []int
	for _, it := range items {
		if it.Gap {
			out = append(out, -1)
			continue
		}
		out = append(out, it.Page)
	}
	return out
}

func TestWindow_Empty(t *testing.T) {
	require.Nil(t, Window(1, 0))
	require.Nil(t, Window(1, 1))
	require.Nil(t, Window(5, 1))
}

func TestWindow_SmallSets(t *testing.T) {
	// Все страницы смежны — разрывы не нужны.
	require.Equal(t, []int{1, 2}, pages(Window(1, 2)))
	require.Equal(t, []int{1, 2, 3}, pages(Window(2, 3)))
	require.Equal(t, []int{1, 2, 3, 4, 5}, pages(Window(3, 5)))
}

func TestWindow_GapOnRightOnly(t *testing.T) {
	// current у левого края: окно растёт вправо, разрыв перед последней.
	require.Equal(t, []int{1, 2, 3, -1, 10}, pages(Window(1, 10)))
	require.Equal(t, []int{1, 2, 3, 4, 5, -1, 10}, pages(Window(3, 10)))
}

func TestWindow_GapOnLeftOnly(t *testing.T) {
	// current у правого края: разрыв после первой.
	require.Equal(t, []int{1, -1, 8, 9, 10}, pages(Window(10, 10)))
	require.Equal(t, []int{1, -1, 6, 7, 8, 9, 10}, pages(Window(8, 10)))
}

func TestWindow_GapsOnBothSides(t *testing.T) {
	require.Equal(t, []int{1, -1, 3, 4, 5, 6, 7, -1, 10}, pages(Window(5, 10)))
	require.Equal(t, []int{1, -1, 48, 49, 50, 51, 52, -1, 100}, pages(Window(50, 100)))
}

func TestWindow_AdjacentWithoutGap(t *testing.T) {
	// Несмежности нет — маркер разрыва не вставляется.
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, pages(Window(4, 6)))
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, pages(Window(4, 7)))
}

func TestWindow_FirstAndLastAlwaysPresent(t *testing.T) {
	for total := 2; total <= 30; total++ {
		for current := 1; current <= total; current++ {
			got := pages(Window(current, total))
			require.Equal(t, 1, got[0], "total=%d current=%d", total, current)
			require.Equal(t, total, got[len(got)-1], "total=%d current=%d", total, current)
		}
	}
}

func TestWindow_OutOfRangeCurrentClamps(t *testing.T) {
	// current вне диапазона деградирует до ближайшего валидного окна.
	require.Equal(t, pages(Window(1, 10)), pages(Window(0, 10)))
	require.Equal(t, pages(Window(1, 10)), pages(Window(-5, 10)))
	require.Equal(t, pages(Window(10, 10)), pages(Window(11, 10)))
	require.Equal(t, pages(Window(10, 10)), pages(Window(1000, 10)))
}
