package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Bandhan203/Practicum-RMS-sub000/internal/domain"
	"github.com/Bandhan203/Practicum-RMS-sub000/internal/ports"
)

// ValidateMenuItemFromJSON — строгий парсинг и валидация одной позиции меню.
func ValidateMenuItemFromJSON(ctx context.Context, validator ports.MenuValidator, raw []byte) (*domain.MenuItem, error) {
	var item domain.MenuItem
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&item); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	// гарантируем отсутствие данных после объекта
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("invalid json: trailing data")
	}
	if err := validator.Validate(ctx, &item); err != nil {
		return nil, err
	}
	return &item, nil
}
