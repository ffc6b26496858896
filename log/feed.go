package log

import (
	"strings"
	"sync"
	"sync/atomic"
)

const defaultBacklog = 64

// Feed is an [io.Writer] that fans out written log records to subscribers
// as individual lines. Point a handler at a Feed to surface warnings inside
// a TUI without corrupting its alternate screen with raw stderr writes.
//
// Each call to [Feed.Write] splits the record into lines and delivers them
// to every active [Tail] via a buffered channel with ring-buffer semantics:
// when a tail's channel is full the oldest line is dropped so Write never
// blocks. Safe for concurrent use.
//
// Create instances with [NewFeed].
type Feed struct {
	tails   []*Tail
	backlog int
	mu      sync.Mutex
	closed  bool
}

// NewFeed creates a [Feed] with the given options.
// The default backlog is 64 lines per tail.
func NewFeed(opts ...FeedOption) *Feed {
	f := &Feed{
		backlog: defaultBacklog,
	}
	for _, opt := range opts {
		opt(f)
	}

	return f
}

// FeedOption configures a [Feed].
type FeedOption func(*Feed)

// WithBacklog sets the channel buffer size for new tails.
// Values less than 1 are clamped to 1.
func WithBacklog(n int) FeedOption {
	return func(f *Feed) {
		if n < 1 {
			n = 1
		}

		f.backlog = n
	}
}

// Write splits b into lines and sends them to all active tails. When a
// tail's channel is full the oldest line is dropped to make room. Closed
// tails are compacted out of the tail list. Write always returns
// len(b), nil.
func (f *Feed) Write(b []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return len(b), nil
	}

	lines := strings.Split(strings.TrimSuffix(string(b), "\n"), "\n")

	// Compact closed tails and deliver in one pass.
	alive := f.tails[:0]
	for _, tail := range f.tails {
		if tail.closed.Load() {
			close(tail.ch)
			continue
		}

		for _, line := range lines {
			// Ring-buffer: drop oldest if full.
			select {
			case tail.ch <- line:
			default:
				<-tail.ch

				tail.ch <- line
			}
		}

		alive = append(alive, tail)
	}
	// Clear trailing references for GC.
	for i := len(alive); i < len(f.tails); i++ {
		f.tails[i] = nil
	}

	f.tails = alive

	return len(b), nil
}

// Tail creates and registers a new [Tail]. If the Feed is already closed
// the returned tail's channel is immediately closed.
func (f *Feed) Tail() *Tail {
	f.mu.Lock()
	defer f.mu.Unlock()

	tail := &Tail{
		ch: make(chan string, f.backlog),
	}

	if f.closed {
		close(tail.ch)
		return tail
	}

	f.tails = append(f.tails, tail)

	return tail
}

// Close marks the Feed as closed, closes all tail channels, and releases
// the tail list. Idempotent.
func (f *Feed) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil
	}

	f.closed = true
	for _, tail := range f.tails {
		close(tail.ch)
	}

	f.tails = nil

	return nil
}

// Tail receives log lines from a [Feed].
type Tail struct {
	ch     chan string
	closed atomic.Bool
}

// C returns the read-only channel that delivers log lines.
func (t *Tail) C() <-chan string {
	return t.ch
}

// Close marks the tail as closed. The Feed will close the underlying
// channel on its next Write or Close call. Idempotent.
func (t *Tail) Close() {
	t.closed.Store(true)
}
