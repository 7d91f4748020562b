package ports

import (
	"context"

	"github.com/Bandhan203/Practicum-RMS-sub000/internal/domain"
)

// SettingsAPI — удалённый контракт настроек заведения.
// Настройки читаются и сохраняются целиком (batch write).
type SettingsAPI interface {
	Get(ctx context.Context) (domain.Settings, error)
	Save(ctx context.Context, s domain.Settings) (domain.Settings, error)
}
