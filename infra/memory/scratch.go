package memory

import "sync"

// Scratch pools fixed-size byte buffers and wipes each one on return.
// The engine encodes plaintext book state through these.
type Scratch struct {
	size int
	p    *sync.Pool
}

func NewScratch(size int) *Scratch {
	return &Scratch{
		size: size,
		p: &sync.Pool{
			New: func() any {
				b := make([]byte, size)
				return &b
			},
		},
	}
}

// Get returns a zeroed buffer of the pool's fixed size.
func (s *Scratch) Get() []byte {
	return *s.p.Get().(*[]byte)
}

// Put wipes the buffer and pools it. Buffers of the wrong size are wiped
// and dropped.
func (s *Scratch) Put(b []byte) {
	for i := range b {
		b[i] = 0
	}
	if len(b) != s.size {
		return
	}
	s.p.Put(&b)
}
