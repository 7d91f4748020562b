package ports

import (
	"context"

	"github.com/Bandhan203/Practicum-RMS-sub000/internal/domain"
)

// MenuValidator — проверка позиций меню перед импортом.
type MenuValidator interface {
	Validate(ctx context.Context, item *domain.MenuItem) error
}
