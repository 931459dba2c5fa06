// Package stats накапливает хиты в памяти до периодической записи в хранилище.
package stats

import (
	"sync"

	"github.com/stpnv0/ExploreWithMe/internal/domain"
)

type Buffer struct {
	mu    sync.Mutex
	hits  []domain.Hit
	limit int
}

// NewBuffer создаёт буфер; при limit <= 0 размер не ограничен.
func NewBuffer(limit int) *Buffer {
	return &Buffer{limit: limit}
}

// Add возвращает false, если буфер заполнен и хит отброшен.
func (b *Buffer) Add(hit domain.Hit) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.limit > 0 && len(b.hits) >= b.limit {
		return false
	}
	b.hits = append(b.hits, hit)
	return true
}

func (b *Buffer) Drain() []domain.Hit {
	b.mu.Lock()
	defer b.mu.Unlock()

	hits := b.hits
	b.hits = nil
	return hits
}

// Requeue возвращает хиты в начало буфера после неудачной записи.
// Хиты сверх лимита отбрасываются; возвращается их число.
func (b *Buffer) Requeue(hits []domain.Hit) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	merged := make([]domain.Hit, 0, len(hits)+len(b.hits))
	merged = append(merged, hits...)
	merged = append(merged, b.hits...)

	dropped := 0
	if b.limit > 0 && len(merged) > b.limit {
		dropped = len(merged) - b.limit
		merged = merged[dropped:]
	}
	b.hits = merged
	return dropped
}

func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.hits)
}
