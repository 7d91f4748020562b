package api

import (
	"context"
	"net/http"

	"github.com/Bandhan203/Practicum-RMS-sub000/internal/domain"
	"github.com/Bandhan203/Practicum-RMS-sub000/internal/ports"
)

var _ ports.SettingsAPI = (*SettingsClient)(nil)

const settingsPath = "/api/settings"

// SettingsClient — REST-клиент настроек заведения.
type SettingsClient struct {
	c *Client
}

func NewSettingsClient(c *Client) *SettingsClient { return &SettingsClient{c: c} }

func (s *SettingsClient) Get(ctx context.Context) (domain.Settings, error) {
	var cfg domain.Settings
	if err := s.c.do(ctx, "settings", "get", http.MethodGet, settingsPath, nil, &cfg); err != nil {
		return domain.Settings{}, err
	}
	return cfg, nil
}

// Save — запись всех настроек одним запросом; сервер возвращает итоговое состояние.
func (s *SettingsClient) Save(ctx context.Context, cfg domain.Settings) (domain.Settings, error) {
	var saved domain.Settings
	if err := s.c.do(ctx, "settings", "save", http.MethodPut, settingsPath, JSONPayload{Value: cfg}, &saved); err != nil {
		return domain.Settings{}, err
	}
	return saved, nil
}
