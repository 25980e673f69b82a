package render

import (
	"slices"
	"sync"
	"sync/atomic"

	"lava-lamp/internal/lava"
)

// FieldBuilder rebuilds fields on a background goroutine so a slow rebuild
// never blocks a simulation tick. Requests made while a build is running
// replace each other; only the newest one is built next.
type FieldBuilder struct {
	w, h int

	mu      sync.Mutex
	cond    *sync.Cond
	view    View
	balls   []lava.RenderData
	pending bool
	closed  bool

	latest atomic.Pointer[Field]
	builds atomic.Uint64
	done   chan struct{}
}

// NewFieldBuilder starts a builder for w×h fields.
func NewFieldBuilder(w, h int) *FieldBuilder {
	b := &FieldBuilder{w: w, h: h, done: make(chan struct{})}
	b.cond = sync.NewCond(&b.mu)
	go b.loop()
	return b
}

// Request schedules a rebuild from balls. The slice is copied, so the caller
// may keep mutating its own data.
func (b *FieldBuilder) Request(v View, balls []lava.RenderData) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.view = v
	b.balls = append(b.balls[:0], balls...)
	b.pending = true
	b.cond.Signal()
}

// Latest returns the most recently completed field, or nil before the first
// build. The returned field is never written to again.
func (b *FieldBuilder) Latest() *Field { return b.latest.Load() }

// Builds returns the number of completed builds.
func (b *FieldBuilder) Builds() uint64 { return b.builds.Load() }

// Close stops the background goroutine and waits for it to exit.
func (b *FieldBuilder) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	b.cond.Broadcast()
	b.mu.Unlock()
	<-b.done
}

func (b *FieldBuilder) loop() {
	defer close(b.done)
	for {
		b.mu.Lock()
		for !b.pending && !b.closed {
			b.cond.Wait()
		}
		if b.closed {
			b.mu.Unlock()
			return
		}
		view := b.view
		balls := slices.Clone(b.balls)
		b.pending = false
		b.mu.Unlock()

		f := NewField(b.w, b.h)
		f.Build(view, balls)
		b.latest.Store(f)
		b.builds.Add(1)
	}
}
