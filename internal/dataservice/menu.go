package dataservice

import (
	"sort"
	"strings"

	"github.com/Bandhan203/Practicum-RMS-sub000/internal/domain"
	"github.com/Bandhan203/Practicum-RMS-sub000/internal/ports"
)

// AllSentinel — значение «все» для производных списков категорий/статусов.
const AllSentinel = "all"

// Проверка, что MenuService удовлетворяет порту транспортного слоя.
var _ ports.MenuService = (*MenuService)(nil)

// MenuService — кэш позиций меню плюс производные представления.
// Производные чтения — чистые функции над текущим снимком, без сети.
type MenuService struct {
	*Store[domain.MenuItem]
}

// NewMenuService — конструктор; remote обычно *api.MenuClient.
func NewMenuService(remote Remote[domain.MenuItem], log ports.Logger) *MenuService {
	return &MenuService{Store: NewStore[domain.MenuItem]("menu", remote, log)}
}

// Categories — отсортированные уникальные категории коллекции
// с сентинелом "all" в начале.
func (m *MenuService) Categories() []string {
	items, _ := m.Snapshot()

	seen := make(map[string]struct{}, len(items))
	categories := make([]string, 0, len(items)+1)
	for _, it := range items {
		if it.Category == "" {
			continue
		}
		if _, ok := seen[it.Category]; ok {
			continue
		}
		seen[it.Category] = struct{}{}
		categories = append(categories, it.Category)
	}
	sort.Strings(categories)

	return append([]string{AllSentinel}, categories...)
}

// FilterByCategory — позиции категории; "all" и пустая строка — вся коллекция.
func (m *MenuService) FilterByCategory(category string) []domain.MenuItem {
	items, _ := m.Snapshot()
	if category == "" || category == AllSentinel {
		return items
	}
	filtered := items[:0:0]
	for _, it := range items {
		if it.Category == category {
			filtered = append(filtered, it)
		}
	}
	return filtered
}

// Search — регистронезависимый поиск подстроки по имени и описанию.
func (m *MenuService) Search(query string) []domain.MenuItem {
	items, _ := m.Snapshot()
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return items
	}
	found := items[:0:0]
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Name), query) ||
			strings.Contains(strings.ToLower(it.Description), query) {
			found = append(found, it)
		}
	}
	return found
}

// Available — только доступные к заказу позиции.
func (m *MenuService) Available() []domain.MenuItem {
	items, _ := m.Snapshot()
	available := items[:0:0]
	for _, it := range items {
		if it.Available {
			available = append(available, it)
		}
	}
	return available
}
