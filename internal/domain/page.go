package domain

import "fmt"

const (
	DefaultPageSize = 10
	MaxPageSize     = 1000
)

// Page задаёт окно выборки: пропустить From записей и вернуть не больше Size.
type Page struct {
	From int
	Size int
}

func NewPage(from, size int) (Page, error) {
	if from < 0 {
		return Page{}, fmt.Errorf("%w: from must not be negative", ErrValidation)
	}
	if size < 1 || size > MaxPageSize {
		return Page{}, fmt.Errorf("%w: size must be 1..%d", ErrValidation, MaxPageSize)
	}
	return Page{From: from, Size: size}, nil
}

func DefaultPage() Page {
	return Page{Size: DefaultPageSize}
}

// Bounds возвращает границы окна в срезе длины n.
func (p Page) Bounds(n int) (int, int) {
	start := min(p.From, n)
	end := min(start+p.Size, n)
	return start, end
}
