package ports

import (
	"context"

	"github.com/Bandhan203/Practicum-RMS-sub000/internal/domain"
)

// OrderAPI — удалённый REST-контракт заказов.
type OrderAPI interface {
	List(ctx context.Context) ([]domain.Order, error)
	Create(ctx context.Context, p Payload) (domain.Order, error)
	Update(ctx context.Context, id string, p Payload) (domain.Order, error)
	Delete(ctx context.Context, id string) error
}
