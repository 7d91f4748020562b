package dataservice

import (
	"context"
	"sync"
)

// Binding — адаптер подписки для одного потребителя: зеркалит состояние
// кэша в локально читаемый снимок и отписывается при Close.
// Подписка и триггер первой загрузки разделены: Bind подписывает,
// EnsureLoaded вызывается явно (идемпотентно).
type Binding[T Entity] struct {
	store *Store[T]

	mu      sync.Mutex
	items   []T
	loading bool

	unsubscribe func()
	closeOnce   sync.Once
}

// Bind — подписывает на store, заполняет начальный снимок и запускает
// первую загрузку, если коллекция ещё не загружалась.
func Bind[T Entity](ctx context.Context, store *Store[T]) (*Binding[T], error) {
	b := &Binding[T]{store: store}

	b.unsubscribe = store.Subscribe(func(items []T, loading bool) {
		b.mu.Lock()
		b.items = items
		b.loading = loading
		b.mu.Unlock()
	})

	items, loading := store.Snapshot()
	b.mu.Lock()
	b.items = items
	b.loading = loading
	b.mu.Unlock()

	// Ошибка первой загрузки не рвёт подписку: потребитель остаётся
	// на последнем известном состоянии и узнаёт об ошибке из возврата.
	if err := store.EnsureLoaded(ctx); err != nil {
		return b, err
	}
	return b, nil
}

// State — последнее наблюдаемое состояние (коллекция, флаг загрузки).
func (b *Binding[T]) State() ([]T, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.items, b.loading
}

// Close — отписка; идемпотентна. После Close события store
// это зеркало больше не обновляют.
func (b *Binding[T]) Close() {
	b.closeOnce.Do(func() {
		if b.unsubscribe != nil {
			b.unsubscribe()
		}
	})
}
