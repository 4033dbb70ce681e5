package progress

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/alexanderramin/learnhub/internal/domain"
)

// Persister writes store snapshots to a Saver in the background.
//
// Each change event replaces the single pending snapshot, so a burst of
// mutations collapses into one write of the latest state. Save failures are
// logged and dropped; the in-memory store stays authoritative and the next
// mutation writes the full map again.
//
// Listeners may deliver events out of order when mutations race, so an
// event no newer than one already taken for writing is ignored.
type Persister struct {
	saver       Saver
	logger      *zap.Logger
	saveTimeout time.Duration

	mu       sync.Mutex
	pending  *ChangeEvent
	inFlight bool
	taken    uint64 // seq of the newest snapshot handed to the writer
	closed   bool
	idle     *sync.Cond

	wake        chan struct{}
	done        chan struct{}
	unsubscribe func()
	closeOnce   sync.Once
}

// DefaultSaveTimeout bounds a single Save call.
const DefaultSaveTimeout = 5 * time.Second

// PersisterOption configures a Persister.
type PersisterOption func(*Persister)

// WithSaveTimeout sets the deadline given to each Save. Zero or negative
// keeps DefaultSaveTimeout.
func WithSaveTimeout(d time.Duration) PersisterOption {
	return func(p *Persister) {
		if d > 0 {
			p.saveTimeout = d
		}
	}
}

// NewPersister subscribes to store and starts the write loop. A nil logger
// discards log output.
func NewPersister(store *Store, saver Saver, logger *zap.Logger, opts ...PersisterOption) *Persister {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Persister{
		saver:       saver,
		logger:      logger.Named("persister"),
		saveTimeout: DefaultSaveTimeout,
		wake:        make(chan struct{}, 1),
		done:        make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.idle = sync.NewCond(&p.mu)
	p.unsubscribe = store.Subscribe(p.enqueue)
	go p.run()
	return p
}

func (p *Persister) enqueue(ev ChangeEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || ev.Seq <= p.taken {
		return
	}
	if p.pending == nil || ev.Seq > p.pending.Seq {
		p.pending = &ev
	}
	select {
	case p.wake <- struct{}{}:
	default:
	}
}

func (p *Persister) run() {
	defer close(p.done)
	for range p.wake {
		p.drain()
	}
	p.drain()
}

func (p *Persister) drain() {
	for {
		p.mu.Lock()
		ev := p.pending
		if ev == nil {
			p.mu.Unlock()
			return
		}
		p.pending = nil
		p.taken = ev.Seq
		p.inFlight = true
		p.mu.Unlock()

		p.write(ev.Seq, ev.Snapshot)

		p.mu.Lock()
		p.inFlight = false
		p.idle.Broadcast()
		p.mu.Unlock()
	}
}

func (p *Persister) write(seq uint64, snapshot domain.CompletionMap) {
	data, err := Encode(snapshot)
	if err != nil {
		p.logger.Warn("encoding progress snapshot", zap.Uint64("seq", seq), zap.Error(err))
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), p.saveTimeout)
	defer cancel()
	if err := p.saver.Save(ctx, data); err != nil {
		p.logger.Warn("saving progress snapshot dropped", zap.Uint64("seq", seq), zap.Error(err))
		return
	}
	p.logger.Debug("progress saved", zap.Uint64("seq", seq), zap.Int("bytes", len(data)))
}

// Flush blocks until every event enqueued before the call has been
// attempted, or ctx is done.
func (p *Persister) Flush(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		p.mu.Lock()
		p.idle.Broadcast()
		p.mu.Unlock()
	})
	defer stop()

	p.mu.Lock()
	defer p.mu.Unlock()
	for p.pending != nil || p.inFlight {
		if err := ctx.Err(); err != nil {
			return err
		}
		p.idle.Wait()
	}
	return nil
}

// Close stops listening to the store, writes any pending snapshot and stops
// the write loop. It returns ctx.Err() if the final write does not finish in
// time; the loop still exits once that write returns.
func (p *Persister) Close(ctx context.Context) error {
	p.closeOnce.Do(func() {
		p.unsubscribe()
		p.mu.Lock()
		p.closed = true
		close(p.wake)
		p.mu.Unlock()
	})
	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
