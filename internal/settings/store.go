package settings

import (
	"context"
	"sync"

	"github.com/Bandhan203/Practicum-RMS-sub000/internal/domain"
	"github.com/Bandhan203/Practicum-RMS-sub000/internal/ports"
)

// Проверка соответствия порту.
var _ ports.SettingsStore = (*Store)(nil)

// Store — локальное зеркало настроек заведения: загружается один раз
// при старте, читается снимками, сохраняется целиком. Подписчиков нет —
// настройки распространяются прямым чтением, а не fan-out'ом.
type Store struct {
	remote ports.SettingsAPI
	log    ports.Logger

	mu      sync.RWMutex
	current domain.Settings
	loaded  bool
}

// NewStore — DI-конструктор.
func NewStore(remote ports.SettingsAPI, log ports.Logger) *Store {
	return &Store{remote: remote, log: log}
}

// EnsureLoaded — однократная загрузка; повторные вызовы после успеха — no-op.
// Ошибка оставляет нулевые настройки и возвращается вызывающему.
func (s *Store) EnsureLoaded(ctx context.Context) error {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()
	if loaded {
		return nil
	}

	cfg, err := s.remote.Get(ctx)
	if err != nil {
		s.log.Errorf(ctx, "settings load failed: %v", err)
		return err
	}

	s.mu.Lock()
	s.current = cfg
	s.loaded = true
	s.mu.Unlock()

	s.log.Infof(ctx, "settings loaded restaurant=%q currency=%s", cfg.RestaurantName, cfg.Currency)
	return nil
}

// Current — снимок последних подтверждённых сервером настроек.
func (s *Store) Current() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Save — batch-запись всех настроек. Локальный снимок заменяется только
// представлением из ответа сервера; при ошибке остаётся прежним.
func (s *Store) Save(ctx context.Context, cfg domain.Settings) (domain.Settings, error) {
	saved, err := s.remote.Save(ctx, cfg)
	if err != nil {
		s.log.Errorf(ctx, "settings save failed: %v", err)
		return domain.Settings{}, err
	}

	s.mu.Lock()
	s.current = saved
	s.loaded = true
	s.mu.Unlock()
	return saved, nil
}
