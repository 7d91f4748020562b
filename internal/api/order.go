package api

import (
	"context"
	"net/http"

	"github.com/Bandhan203/Practicum-RMS-sub000/internal/domain"
	"github.com/Bandhan203/Practicum-RMS-sub000/internal/ports"
)

var _ ports.OrderAPI = (*OrderClient)(nil)

const ordersPath = "/api/orders"

// OrderClient — REST-клиент заказов.
type OrderClient struct {
	c *Client
}

func NewOrderClient(c *Client) *OrderClient { return &OrderClient{c: c} }

func (o *OrderClient) List(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := o.c.do(ctx, "order", "list", http.MethodGet, ordersPath, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (o *OrderClient) Create(ctx context.Context, p ports.Payload) (domain.Order, error) {
	var created domain.Order
	if err := o.c.do(ctx, "order", "create", http.MethodPost, ordersPath, p, &created); err != nil {
		return domain.Order{}, err
	}
	return created, nil
}

func (o *OrderClient) Update(ctx context.Context, id string, p ports.Payload) (domain.Order, error) {
	var updated domain.Order
	if err := o.c.do(ctx, "order", "update", http.MethodPut, ordersPath+"/"+id, p, &updated); err != nil {
		return domain.Order{}, err
	}
	return updated, nil
}

func (o *OrderClient) Delete(ctx context.Context, id string) error {
	return o.c.do(ctx, "order", "delete", http.MethodDelete, ordersPath+"/"+id, nil, nil)
}
