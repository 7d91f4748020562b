package domain

import "time"

// Статусы заказа. Граф переходов:
// pending → preparing → ready → completed; cancelled достижим из pending/preparing.
// completed и cancelled — терминальные.
const (
	StatusPending   = "pending"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// OrderStatuses — все известные статусы в порядке жизненного цикла.
var OrderStatuses = []string{
	StatusPending, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled,
}

// OrderItem — строка заказа (снимок позиции меню на момент заказа).
type OrderItem struct {
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

// Order — заказ (последнее подтверждённое сервером состояние).
type Order struct {
	ID           string      `json:"id"`
	Number       string      `json:"orderNumber"`
	CustomerName string      `json:"customerName"`
	TableNumber  string      `json:"tableNumber,omitempty"`
	Items        []OrderItem `json:"items"`
	Status       string      `json:"status"`
	Subtotal     float64     `json:"subtotal"`
	Tax          float64     `json:"tax"`
	Total        float64     `json:"total"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// EntityID — ключ заказа в коллекции кэша.
func (o Order) EntityID() string { return o.ID }

// allowedTransitions — разрешённые переходы статуса заказа.
// Кэш переходы не проверяет: это правило интерфейсного уровня,
// которое применяет шлюз перед отправкой мутации.
var allowedTransitions = map[string][]string{
	StatusPending:   {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusReady, StatusCancelled},
	StatusReady:     {StatusCompleted},
}

// CanTransition — допустим ли переход from → to.
func CanTransition(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminalStatus — true для статусов, из которых нет переходов.
func IsTerminalStatus(s string) bool {
	return len(allowedTransitions[s]) == 0
}

// KnownStatus — true, если статус входит в список известных.
func KnownStatus(s string) bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}
