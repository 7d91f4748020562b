package ports

import (
	"context"

	"github.com/Bandhan203/Practicum-RMS-sub000/internal/domain"
)

// OrderService — сервис данных заказов, как его видит транспортный слой.
type OrderService interface {
	EnsureLoaded(ctx context.Context) error
	Snapshot() ([]domain.Order, bool)
	GetByID(id string) (domain.Order, bool)

	// Statuses — уникальные статусы текущей коллекции с сентинелом "all".
	Statuses() []string

	// ByStatus — заказы в статусе; "all" и "" — вся коллекция.
	ByStatus(status string) []domain.Order

	// Today — заказы, созданные в текущую календарную дату (на момент вызова).
	Today() []domain.Order

	Create(ctx context.Context, p Payload) (domain.Order, error)

	// ChangeStatus — обычный update с payload {status}; граф переходов
	// кэш не проверяет, это делает вызывающая сторона.
	ChangeStatus(ctx context.Context, id, status string) (domain.Order, error)

	Delete(ctx context.Context, id string) error

	Subscribe(fn func(orders []domain.Order, loading bool)) (unsubscribe func())
}
