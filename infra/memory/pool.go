package memory

import "sync"

// Pool is a typed object pool.
type Pool[T any] struct {
	p *sync.Pool
}

func NewPool[T any](ctor func() *T) *Pool[T] {
	return &Pool[T]{
		p: &sync.Pool{
			New: func() any { return ctor() },
		},
	}
}

func (p *Pool[T]) Get() *T {
	return p.p.Get().(*T)
}

func (p *Pool[T]) Put(v *T) {
	p.p.Put(v)
}

// Release zeroes *v before pooling it. Plaintext-bearing objects must go
// back through Release, never Put.
func (p *Pool[T]) Release(v *T) {
	var zero T
	*v = zero
	p.Put(v)
}
