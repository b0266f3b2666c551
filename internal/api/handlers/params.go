package handlers

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/m04kA/ShareIt-RentalService/internal/domain"
)

// ParseID извлекает положительный числовой идентификатор из path-параметров
func ParseID(vars map[string]string, name string) (int64, error) {
	raw, ok := vars[name]
	if !ok {
		return 0, fmt.Errorf("missing path parameter %q", name)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid path parameter %q: %q", name, raw)
	}
	return id, nil
}

// ParsePagination разбирает query-параметры from и size и переводит их
// в индекс страницы. from - смещение от начала выборки, кратность
// размеру страницы не требуется: индекс страницы считается как from/size.
func ParsePagination(query url.Values) (page, size int, err error) {
	from := domain.DefaultPageFrom
	size = domain.DefaultPageSize

	if raw := query.Get("from"); raw != "" {
		from, err = strconv.Atoi(raw)
		if err != nil || from < 0 {
			return 0, 0, fmt.Errorf("invalid query parameter from: %q", raw)
		}
	}

	if raw := query.Get("size"); raw != "" {
		size, err = strconv.Atoi(raw)
		if err != nil || size < 1 {
			return 0, 0, fmt.Errorf("invalid query parameter size: %q", raw)
		}
	}

	return from / size, size, nil
}
