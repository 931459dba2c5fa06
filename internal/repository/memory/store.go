// Package memory хранит данные сервиса в памяти процесса. Транзакции
// накапливают изменения заявок и применяют их атомарно при фиксации;
// блокировка события удерживается до конца транзакции.
package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/stpnv0/ExploreWithMe/internal/domain"
)

var errNoTx = errors.New("row lock requires a transaction")

type Store struct {
	mu       sync.RWMutex
	users    map[string]domain.User
	emails   map[string]string
	events   map[string]domain.Event
	requests map[string]domain.ParticipationRequest
	order    []string
	hits     []domain.Hit

	lockMu     sync.Mutex
	eventLocks map[string]*sync.Mutex
}

func New() *Store {
	return &Store{
		users:      make(map[string]domain.User),
		emails:     make(map[string]string),
		events:     make(map[string]domain.Event),
		requests:   make(map[string]domain.ParticipationRequest),
		eventLocks: make(map[string]*sync.Mutex),
	}
}

type txKey struct{}

type tx struct {
	staged map[string]domain.ParticipationRequest
	added  []string
	held   map[string]*sync.Mutex
}

func txFrom(ctx context.Context) (*tx, bool) {
	t, ok := ctx.Value(txKey{}).(*tx)
	return t, ok
}

func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := txFrom(ctx); ok {
		return fn(ctx)
	}

	t := &tx{
		staged: make(map[string]domain.ParticipationRequest),
		held:   make(map[string]*sync.Mutex),
	}
	defer s.release(t)

	if err := fn(context.WithValue(ctx, txKey{}, t)); err != nil {
		return err
	}

	s.commit(t)
	return nil
}

func (s *Store) commit(t *tx) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.order = append(s.order, t.added...)
	for id, r := range t.staged {
		s.requests[id] = r
	}
}

func (s *Store) release(t *tx) {
	for _, m := range t.held {
		m.Unlock()
	}
}

func (s *Store) lockEvent(ctx context.Context, id string) error {
	t, ok := txFrom(ctx)
	if !ok {
		return errNoTx
	}
	if _, held := t.held[id]; held {
		return nil
	}

	s.mu.RLock()
	_, exists := s.events[id]
	s.mu.RUnlock()
	if !exists {
		return domain.ErrEventNotFound
	}

	s.lockMu.Lock()
	m, ok := s.eventLocks[id]
	if !ok {
		m = &sync.Mutex{}
		s.eventLocks[id] = m
	}
	s.lockMu.Unlock()

	m.Lock()
	t.held[id] = m
	return nil
}

func (s *Store) Requests() *RequestRepo {
	return &RequestRepo{s: s}
}

func (s *Store) Events() *EventRepo {
	return &EventRepo{s: s}
}

func (s *Store) Users() *UserRepo {
	return &UserRepo{s: s}
}

func (s *Store) Hits() *HitRepo {
	return &HitRepo{s: s}
}
