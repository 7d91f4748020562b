package api

import (
	"context"
	"net/http"

	"github.com/Bandhan203/Practicum-RMS-sub000/internal/domain"
	"github.com/Bandhan203/Practicum-RMS-sub000/internal/ports"
)

// Проверка, что MenuClient удовлетворяет порту MenuAPI.
var _ ports.MenuAPI = (*MenuClient)(nil)

const menuPath = "/api/menu"

// MenuClient — REST-клиент позиций меню.
type MenuClient struct {
	c *Client
}

// NewMenuClient — конструктор.
func NewMenuClient(c *Client) *MenuClient { return &MenuClient{c: c} }

// List — вся коллекция; отсутствие данных на сервере — пустая коллекция, не ошибка.
func (m *MenuClient) List(ctx context.Context) ([]domain.MenuItem, error) {
	var items []domain.MenuItem
	if err := m.c.do(ctx, "menu", "list", http.MethodGet, menuPath, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Create — payload (JSON или multipart с изображением) уходит без интерпретации.
func (m *MenuClient) Create(ctx context.Context, p ports.Payload) (domain.MenuItem, error) {
	var created domain.MenuItem
	if err := m.c.do(ctx, "menu", "create", http.MethodPost, menuPath, p, &created); err != nil {
		return domain.MenuItem{}, err
	}
	return created, nil
}

func (m *MenuClient) Update(ctx context.Context, id string, p ports.Payload) (domain.MenuItem, error) {
	var updated domain.MenuItem
	if err := m.c.do(ctx, "menu", "update", http.MethodPut, menuPath+"/"+id, p, &updated); err != nil {
		return domain.MenuItem{}, err
	}
	return updated, nil
}

func (m *MenuClient) Delete(ctx context.Context, id string) error {
	return m.c.do(ctx, "menu", "delete", http.MethodDelete, menuPath+"/"+id, nil, nil)
}
