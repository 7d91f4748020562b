package dataservice

import (
	"context"
	"sort"
	"time"

	"github.com/Bandhan203/Practicum-RMS-sub000/internal/api"
	"github.com/Bandhan203/Practicum-RMS-sub000/internal/domain"
	"github.com/Bandhan203/Practicum-RMS-sub000/internal/ports"
)

var _ ports.OrderService = (*OrderService)(nil)

// OrderService — кэш заказов плюс производные представления по статусу и дате.
type OrderService struct {
	*Store[domain.Order]
}

// NewOrderService — конструктор; remote обычно *api.OrderClient.
func NewOrderService(remote Remote[domain.Order], log ports.Logger) *OrderService {
	return &OrderService{Store: NewStore[domain.Order]("order", remote, log)}
}

// Statuses — уникальные статусы текущей коллекции с сентинелом "all".
func (o *OrderService) Statuses() []string {
	orders, _ := o.Snapshot()

	seen := make(map[string]struct{}, len(orders))
	statuses := make([]string, 0, len(orders)+1)
	for _, ord := range orders {
		if ord.Status == "" {
			continue
		}
		if _, ok := seen[ord.Status]; ok {
			continue
		}
		seen[ord.Status] = struct{}{}
		statuses = append(statuses, ord.Status)
	}
	sort.Strings(statuses)

	return append([]string{AllSentinel}, statuses...)
}

// ByStatus — заказы в статусе; "all" и пустая строка — вся коллекция.
func (o *OrderService) ByStatus(status string) []domain.Order {
	orders, _ := o.Snapshot()
	if status == "" || status == AllSentinel {
		return orders
	}
	filtered := orders[:0:0]
	for _, ord := range orders {
		if ord.Status == status {
			filtered = append(filtered, ord)
		}
	}
	return filtered
}

// Today — заказы с календарной датой создания, равной текущей дате
// на момент вызова. Представление не реактивно: вычисляется заново
// при каждом обращении.
func (o *OrderService) Today() []domain.Order {
	orders, _ := o.Snapshot()
	now := time.Now()

	today := orders[:0:0]
	for _, ord := range orders {
		y1, m1, d1 := ord.CreatedAt.Date()
		y2, m2, d2 := now.Date()
		if y1 == y2 && m1 == m2 && d1 == d2 {
			today = append(today, ord)
		}
	}
	return today
}

// statusPayload — тело мутации смены статуса.
type statusPayload struct {
	Status string `json:"status"`
}

// ChangeStatus — обычный update с payload {status}. Граф переходов кэш
// не проверяет: допустимость смены — забота вызывающей стороны,
// сервер остаётся последней инстанцией.
func (o *OrderService) ChangeStatus(ctx context.Context, id, status string) (domain.Order, error) {
	return o.Update(ctx, id, api.JSONPayload{Value: statusPayload{Status: status}})
}
