package ports

import (
	"context"

	"github.com/Bandhan203/Practicum-RMS-sub000/internal/domain"
)

// SettingsStore — локальное зеркало настроек заведения.
// Тот же принцип единственного писателя, что и у кэшей сущностей,
// но без fan-out подписчикам.
type SettingsStore interface {
	// EnsureLoaded — однократная загрузка настроек при старте.
	EnsureLoaded(ctx context.Context) error

	// Current — снимок последних подтверждённых сервером настроек.
	Current() domain.Settings

	// Save — batch-запись всех настроек; при ошибке локальный снимок не меняется.
	Save(ctx context.Context, s domain.Settings) (domain.Settings, error)
}
