package dataservice

import (
	"context"
	"errors"
	"sync"

	"github.com/Bandhan203/Practicum-RMS-sub000/internal/ports"
	"github.com/Bandhan203/Practicum-RMS-sub000/pkg/metrics"
)

// ErrLoadInProgress — guard повторного Load: конкурирующий вызов
// возвращается сразу, не выполняя сетевого запроса.
var ErrLoadInProgress = errors.New("collection load already in progress")

// Entity — сущность с серверным идентификатором, уникальным в коллекции.
type Entity interface {
	EntityID() string
}

// Remote — удалённый REST-контракт коллекции; ports.MenuAPI и ports.OrderAPI
// совпадают с ним по набору методов.
type Remote[T Entity] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, p ports.Payload) (T, error)
	Update(ctx context.Context, id string, p ports.Payload) (T, error)
	Delete(ctx context.Context, id string) error
}

// subscriber — зарегистрированный callback с ключом для отписки.
type subscriber[T Entity] struct {
	id int
	fn func(items []T, loading bool)
}

// Store — кэш коллекции одного типа сущностей: единственный источник истины
// для потребителей, синхронизированный с удалённым API.
//
// Инварианты:
//   - items всегда отражает последний успешный ответ сервера; спекулятивных
//     локальных мутаций нет — коллекция меняется только после подтверждения;
//   - подписчики уведомляются синхронно после каждой применённой мутации
//     и после завершения загрузки, ровно один раз на событие;
//   - одновременно выполняется не более одной загрузки (ErrLoadInProgress).
//
// Create/Update/Delete взаимного исключения не имеют: конкурирующие мутации
// применяются в порядке ответов сервера, а не в порядке запросов. Вызывающие,
// которым важен порядок, сериализуются сами.
type Store[T Entity] struct {
	entity string // метка сущности для логов и метрик
	remote Remote[T]
	log    ports.Logger

	mu      sync.Mutex
	items   []T
	loading bool
	loaded  bool
	nextSub int
	subs    []subscriber[T]
}

// NewStore — DI-конструктор; коллекция стартует пустой,
// наполняется первой успешной загрузкой.
func NewStore[T Entity](entity string, remote Remote[T], log ports.Logger) *Store[T] {
	return &Store[T]{
		entity: entity,
		remote: remote,
		log:    log,
	}
}

// Load — полная загрузка коллекции с сервера.
// При уже идущей загрузке возвращает ErrLoadInProgress без сетевого вызова.
// Ошибка сети/сервера оставляет последнее известное состояние нетронутым.
func (s *Store[T]) Load(ctx context.Context) error {
	if !s.beginLoad(false) {
		return ErrLoadInProgress
	}
	return s.finishLoad(ctx)
}

// EnsureLoaded — идемпотентный триггер первой загрузки: выполняет Load,
// только если коллекция ещё ни разу не загружалась и загрузка не идёт.
// Повторные вызовы (в том числе конкурентные) сетевых запросов не порождают.
func (s *Store[T]) EnsureLoaded(ctx context.Context) error {
	if !s.beginLoad(true) {
		return nil
	}
	return s.finishLoad(ctx)
}

// beginLoad — атомарный захват флага загрузки.
// onlyIfUnloaded=true дополнительно требует, чтобы загрузки ещё не было.
func (s *Store[T]) beginLoad(onlyIfUnloaded bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loading {
		return false
	}
	if onlyIfUnloaded && s.loaded {
		return false
	}
	s.loading = true
	return true
}

// finishLoad — сетевой вызов вне мьютекса и применение результата.
// Уведомление уходит и при успехе, и при ошибке: коллекция в последнем случае
// не изменилась, но подписчикам нужен переход loading → false.
func (s *Store[T]) finishLoad(ctx context.Context) error {
	fetched, err := s.remote.List(ctx)

	s.mu.Lock()
	s.loading = false
	if err == nil {
		if fetched == nil {
			fetched = []T{}
		}
		s.items = fetched
		s.loaded = true
		metrics.CacheSize.WithLabelValues(s.entity).Set(float64(len(s.items)))
	}
	snap, subs := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap, false, subs)

	if err != nil {
		s.log.Errorf(ctx, "%s load failed: %v", s.entity, err)
		return err
	}
	s.log.Infof(ctx, "%s collection loaded items=%d", s.entity, len(snap))
	return nil
}

// Create — создание через сервер; подтверждённая сущность добавляется
// в начало коллекции. При ошибке коллекция не меняется и уведомления нет.
func (s *Store[T]) Create(ctx context.Context, p ports.Payload) (T, error) {
	created, err := s.remote.Create(ctx, p)
	if err != nil {
		s.log.Errorf(ctx, "%s create failed: %v", s.entity, err)
		var zero T
		return zero, err
	}

	s.mu.Lock()
	s.items = append([]T{created}, s.items...)
	metrics.CacheSize.WithLabelValues(s.entity).Set(float64(len(s.items)))
	snap, subs := s.snapshotLocked()
	s.mu.Unlock()

	metrics.CacheMutations.WithLabelValues(s.entity, "create").Inc()
	s.notify(snap, false, subs)
	return created, nil
}

// Update — замена сущности id представлением из ответа сервера (не merge).
// Если сущности с таким id в локальной коллекции нет, вставка не синтезируется:
// удалённый вызов всё равно выполняется, его результат определяет ошибку.
func (s *Store[T]) Update(ctx context.Context, id string, p ports.Payload) (T, error) {
	updated, err := s.remote.Update(ctx, id, p)
	if err != nil {
		s.log.Errorf(ctx, "%s update failed id=%s: %v", s.entity, id, err)
		var zero T
		return zero, err
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].EntityID() == id {
			s.items[i] = updated
			break
		}
	}
	snap, subs := s.snapshotLocked()
	s.mu.Unlock()

	metrics.CacheMutations.WithLabelValues(s.entity, "update").Inc()
	s.notify(snap, false, subs)
	return updated, nil
}

// Delete — удаление на сервере; локально сущность убирается, если была
// (отсутствие — не ошибка кэша).
func (s *Store[T]) Delete(ctx context.Context, id string) error {
	if err := s.remote.Delete(ctx, id); err != nil {
		s.log.Errorf(ctx, "%s delete failed id=%s: %v", s.entity, id, err)
		return err
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].EntityID() == id {
			s.items = append(s.items[:i:i], s.items[i+1:]...)
			break
		}
	}
	metrics.CacheSize.WithLabelValues(s.entity).Set(float64(len(s.items)))
	snap, subs := s.snapshotLocked()
	s.mu.Unlock()

	metrics.CacheMutations.WithLabelValues(s.entity, "delete").Inc()
	s.notify(snap, false, subs)
	return nil
}

// Subscribe — регистрирует callback на каждое будущее изменение состояния.
// Возвращённая отписка идемпотентна: повторный вызов безопасен.
func (s *Store[T]) Subscribe(fn func(items []T, loading bool)) func() {
	s.mu.Lock()
	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, subscriber[T]{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i := range s.subs {
			if s.subs[i].id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Snapshot — копия коллекции верхнего уровня и текущий флаг загрузки.
func (s *Store[T]) Snapshot() ([]T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]T(nil), s.items...), s.loading
}

// GetByID — сущность по идентификатору из локальной коллекции.
func (s *Store[T]) GetByID(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].EntityID() == id {
			return s.items[i], true
		}
	}
	var zero T
	return zero, false
}

// snapshotLocked — копия состояния под мьютексом: снимок коллекции
// и срез подписчиков на момент события.
func (s *Store[T]) snapshotLocked() ([]T, []subscriber[T]) {
	return append([]T(nil), s.items...), append([]subscriber[T](nil), s.subs...)
}

// notify — синхронный fan-out в порядке подписки, без удержания мьютекса:
// callback может свободно читать Snapshot или мутировать через действия.
func (s *Store[T]) notify(snap []T, loading bool, subs []subscriber[T]) {
	if len(subs) == 0 {
		return
	}
	metrics.Notifications.WithLabelValues(s.entity).Add(float64(len(subs)))
	for _, sub := range subs {
		sub.fn(snap, loading)
	}
}
