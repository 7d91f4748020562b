package domain

import "time"

// MenuItem — позиция меню (последнее подтверждённое сервером состояние).
// Идентификатор назначает сервер; локально он не изменяется.
type MenuItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Available   bool      `json:"available"`
	ImageURL    string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// EntityID — ключ позиции в коллекции кэша.
func (m MenuItem) EntityID() string { return m.ID }
