package api

import (
	"sort"
	"strings"
)

// APIError — нормализованная ошибка сервера.
// Пограничный слой сводит ответ об ошибке к одной человекочитаемой строке:
// пофилдовые сообщения валидации склеиваются, бизнес-сообщения
// передаются дословно.
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
}

// Error — пофилдовые сообщения в детерминированном порядке ключей;
// при их отсутствии — сообщение сервера.
func (e *APIError) Error() string {
	if len(e.Fields) > 0 {
		keys := make([]string, 0, len(e.Fields))
		for k := range e.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, e.Fields[k])
		}
		return strings.Join(parts, "; ")
	}
	if e.Message != "" {
		return e.Message
	}
	return "request rejected by server"
}
