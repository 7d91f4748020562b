package rest

import (
	"io"

	"github.com/Bandhan203/Practicum-RMS-sub000/internal/domain"
	"github.com/gin-gonic/gin"
)

// SSE-трансляция изменений кэшей: каждое подключение — отдельный подписчик,
// отписка при разрыве соединения. Событие несёт полный снимок коллекции —
// тот же контракт (collection, loading), что и у внутренних подписчиков.

// streamEvent — полезная нагрузка SSE-события.
type streamEvent[T any] struct {
	Items   []T  `json:"items"`
	Loading bool `json:"loading"`
}

// stream — общий цикл для одного SSE-подключения.
// Медленный потребитель события теряет (буфер фиксированный, без блокировки
// уведомляющей стороны): следующее событие всё равно несёт полный снимок.
func stream[T any](c *gin.Context, event string, subscribe func(fn func([]T, bool)) func(), snapshot func() ([]T, bool)) {
	ch := make(chan streamEvent[T], 8)

	unsubscribe := subscribe(func(items []T, loading bool) {
		select {
		case ch <- streamEvent[T]{Items: items, Loading: loading}:
		default:
		}
	})
	defer unsubscribe()

	// Начальное состояние — сразу при подключении.
	items, loading := snapshot()
	c.SSEvent(event, streamEvent[T]{Items: items, Loading: loading})
	c.Writer.Flush()

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case ev := <-ch:
			c.SSEvent(event, ev)
			return true
		case <-ctx.Done():
			return false
		}
	})
}

func (h *Handler) streamMenu(c *gin.Context) {
	if err := h.menu.EnsureLoaded(c.Request.Context()); err != nil {
		h.log.Warnf(c.Request.Context(), "menu stream: initial load failed: %v", err)
	}
	stream[domain.MenuItem](c, "menu", h.menu.Subscribe, h.menu.Snapshot)
}

func (h *Handler) streamOrders(c *gin.Context) {
	if err := h.orders.EnsureLoaded(c.Request.Context()); err != nil {
		h.log.Warnf(c.Request.Context(), "orders stream: initial load failed: %v", err)
	}
	stream[domain.Order](c, "orders", h.orders.Subscribe, h.orders.Snapshot)
}
