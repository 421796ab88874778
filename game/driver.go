package game

import (
	"context"
	"sync"
	"sync/atomic"

	"gesture-snake/log"
)

// FrameHandler receives every frame right after its tick. Handlers run on
// the driver goroutine and must not block.
type FrameHandler func(Frame)

// Driver fires AdvanceOneTick at the engine's current delay. It is the only
// goroutine that touches the engine once Run has started.
type Driver struct {
	engine   *Engine
	clock    Clock
	handlers []FrameHandler
	paused   atomic.Bool
	latest   *FrameBuffer
}

// NewDriverOptions contains options for creating a new Driver.
type NewDriverOptions struct {
	Engine   *Engine
	Clock    Clock
	Handlers []FrameHandler
}

func NewDriver(opts NewDriverOptions) *Driver {
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	d := &Driver{
		engine:   opts.Engine,
		clock:    opts.Clock,
		handlers: opts.Handlers,
		latest:   NewFrameBuffer(opts.Engine.Snapshot()),
	}
	return d
}

// Frames returns the buffer holding the most recent frame
func (d *Driver) Frames() *FrameBuffer {
	return d.latest
}

// TogglePause stops or resumes ticking and returns the new paused state
func (d *Driver) TogglePause() bool {
	for {
		old := d.paused.Load()
		if d.paused.CompareAndSwap(old, !old) {
			if old {
				log.Info("Game resumed")
			} else {
				log.Info("Game paused")
			}
			return !old
		}
	}
}

func (d *Driver) Paused() bool {
	return d.paused.Load()
}

// Run ticks until ctx is cancelled. Cancellation is only observed between
// ticks.
func (d *Driver) Run(ctx context.Context) error {
	for {
		wait := d.engine.NextWait()
		select {
		case <-ctx.Done():
			return nil
		case <-d.clock.After(wait):
		}
		if d.paused.Load() {
			continue
		}
		d.Step()
	}
}

// Step advances exactly one tick and dispatches the frame
func (d *Driver) Step() Frame {
	frame := d.engine.AdvanceOneTick()
	d.latest.Store(frame)
	for _, h := range d.handlers {
		h(frame)
	}
	return frame
}

// FrameBuffer holds the latest published frame for readers on other
// goroutines.
type FrameBuffer struct {
	mu    sync.RWMutex
	frame Frame
	seq   uint64
}

func NewFrameBuffer(initial Frame) *FrameBuffer {
	return &FrameBuffer{frame: initial}
}

func (b *FrameBuffer) Store(f Frame) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.frame = f
	b.seq++
}

// Load returns the latest frame and a sequence number that increases with
// every Store.
func (b *FrameBuffer) Load() (Frame, uint64) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.frame, b.seq
}
