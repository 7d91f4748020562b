package ports

import (
	"context"

	"github.com/Bandhan203/Practicum-RMS-sub000/internal/domain"
)

// MenuService — сервис данных меню, как его видит транспортный слой.
// Чтения — чистые функции над текущим снимком коллекции, без сети.
type MenuService interface {
	// EnsureLoaded — идемпотентный триггер первой загрузки коллекции.
	EnsureLoaded(ctx context.Context) error

	// Snapshot — копия коллекции и флаг загрузки.
	Snapshot() ([]domain.MenuItem, bool)

	// GetByID — позиция по идентификатору из локальной коллекции.
	GetByID(id string) (domain.MenuItem, bool)

	// Categories — отсортированные уникальные категории с сентинелом "all".
	Categories() []string

	// FilterByCategory — позиции категории; "all" и "" — вся коллекция.
	FilterByCategory(category string) []domain.MenuItem

	// Search — регистронезависимый поиск подстроки по имени и описанию.
	Search(query string) []domain.MenuItem

	// Available — только доступные позиции.
	Available() []domain.MenuItem

	Create(ctx context.Context, p Payload) (domain.MenuItem, error)
	Update(ctx context.Context, id string, p Payload) (domain.MenuItem, error)
	Delete(ctx context.Context, id string) error

	// Subscribe — подписка на изменения; возвращает идемпотентную отписку.
	Subscribe(fn func(items []domain.MenuItem, loading bool)) (unsubscribe func())
}
