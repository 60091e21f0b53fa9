package nxcube

// Batch collects cells whose value changed since the last Flush.
//
// A Batch is not safe for concurrent use. Cells are meant to be written by
// the rotation operators and flushed by the presentation layer from the same
// goroutine.
type Batch struct {
	pending []notifier
}

type notifier interface {
	notify()
}

// NewBatch creates an empty batch.
func NewBatch() *Batch {
	return &Batch{}
}

// Pending returns the number of cells waiting for the next Flush.
func (b *Batch) Pending() int {
	return len(b.pending)
}

// Flush delivers the current value of every changed cell to its
// subscribers, once per cell, and returns how many cells were notified.
// Cells changed by a subscriber during Flush are delivered on the next Flush.
func (b *Batch) Flush() int {
	current := b.pending
	b.pending = nil
	for _, n := range current {
		n.notify()
	}
	return len(current)
}

func (b *Batch) mark(n notifier) {
	b.pending = append(b.pending, n)
}

// Cell holds a single observable value. Writes that do not change the value
// are ignored; changed cells are queued on their Batch at most once per
// flush.
type Cell[T comparable] struct {
	batch     *Batch
	value     T
	dirty     bool
	listeners []func(T)
}

// NewCell creates a cell owned by batch.
func NewCell[T comparable](batch *Batch, value T) *Cell[T] {
	return &Cell[T]{batch: batch, value: value}
}

// Value returns the current value.
func (c *Cell[T]) Value() T {
	return c.value
}

// Set stores v. Nothing is scheduled when v equals the current value.
func (c *Cell[T]) Set(v T) {
	if c.value == v {
		return
	}
	c.value = v
	if c.dirty {
		return
	}
	c.dirty = true
	c.batch.mark(c)
}

// Dirty reports whether the cell is waiting for a flush.
func (c *Cell[T]) Dirty() bool {
	return c.dirty
}

// Subscribe registers fn for future flushes and returns the current value.
// fn is not invoked for the current value; use Bind for that.
func (c *Cell[T]) Subscribe(fn func(T)) T {
	c.listeners = append(c.listeners, fn)
	return c.value
}

// Bind registers fn and immediately invokes it with the current value.
func (c *Cell[T]) Bind(fn func(T)) {
	fn(c.Subscribe(fn))
}

func (c *Cell[T]) notify() {
	c.dirty = false
	v := c.value
	for _, fn := range c.listeners {
		fn(v)
	}
}
