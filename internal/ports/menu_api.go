package ports

import (
	"context"

	"github.com/Bandhan203/Practicum-RMS-sub000/internal/domain"
)

// MenuAPI — удалённый REST-контракт позиций меню.
// Реализация не хранит состояния: источник истины — сервер.
type MenuAPI interface {
	// List — полная коллекция позиций меню.
	List(ctx context.Context) ([]domain.MenuItem, error)

	// Create — создать позицию; сервер назначает id и таймстемпы.
	Create(ctx context.Context, p Payload) (domain.MenuItem, error)

	// Update — заменить позицию id представлением из ответа сервера.
	Update(ctx context.Context, id string, p Payload) (domain.MenuItem, error)

	// Delete — удалить позицию id.
	Delete(ctx context.Context, id string) error
}
