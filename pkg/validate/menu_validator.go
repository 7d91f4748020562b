package validate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Bandhan203/Practicum-RMS-sub000/internal/domain"
	"github.com/Bandhan203/Practicum-RMS-sub000/internal/ports"
)

// Проверка, что MenuItemValidator удовлетворяет порту MenuValidator.
var _ ports.MenuValidator = (*MenuItemValidator)(nil)

// ErrInvalidMenuItem — базовая (sentinel error) ошибка валидации позиции меню.
var ErrInvalidMenuItem = errors.New("menu item validation failed")

// knownCategories — категории, допустимые при импорте.
var knownCategories = map[string]struct{}{
	"appetizer": {},
	"main":      {},
	"dessert":   {},
	"beverage":  {},
	"side":      {},
}

// MenuItemValidator — валидация позиций меню перед импортом.
// Возвращает ErrInvalidMenuItem (с обёрнутой причиной) при любой проблеме.
type MenuItemValidator struct{}

// NewMenuItemValidator — конструктор.
func NewMenuItemValidator() *MenuItemValidator { return &MenuItemValidator{} }

// Validate — проверяет обязательные поля и границы значений.
// ID не требуется: его назначит сервер при создании.
func (v *MenuItemValidator) Validate(_ context.Context, item *domain.MenuItem) error {
	if item == nil {
		return fmt.Errorf("%w: item is nil", ErrInvalidMenuItem)
	}
	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidMenuItem)
	}
	if item.Price < 0 {
		return fmt.Errorf("%w: price must be non-negative", ErrInvalidMenuItem)
	}
	category := strings.ToLower(strings.TrimSpace(item.Category))
	if category == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidMenuItem)
	}
	if _, ok := knownCategories[category]; !ok {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidMenuItem, item.Category)
	}
	return nil
}
