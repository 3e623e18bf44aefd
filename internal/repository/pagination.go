package repository

import (
	"time"

	"health-tracker-server/internal/apperror"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// parseCursor : пустой курсор это первая страница (nil), иначе RFC3339Nano created_at последнего элемента
func parseCursor(cursor string) (*time.Time, error) {
	if cursor == "" {
		return nil, nil
	}
	cursorTime, err := time.Parse(time.RFC3339Nano, cursor)
	if err != nil {
		return nil, apperror.NewValidation("invalid cursor format")
	}
	return &cursorTime, nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultPageSize
	}
	if limit > MaxPageSize {
		return MaxPageSize
	}
	return limit
}

// page : запрос выбирает limit+1 строк, лишняя означает наличие следующей страницы
func page[T any](items []T, limit int, createdAt func(T) time.Time) ([]T, string) {
	if len(items) <= limit {
		return items, ""
	}
	items = items[:limit]
	return items, createdAt(items[len(items)-1]).Format(time.RFC3339Nano)
}
