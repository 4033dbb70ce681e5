package progress

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/alexanderramin/learnhub/internal/domain"
)

// recordingSaver keeps every payload it is given. When gate is non-nil each
// Save signals started and then waits for gate before returning.
type recordingSaver struct {
	mu      sync.Mutex
	saves   [][]byte
	err     error
	started chan struct{}
	gate    chan struct{}
}

func (r *recordingSaver) Save(_ context.Context, data []byte) error {
	if r.gate != nil {
		r.started <- struct{}{}
		<-r.gate
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves = append(r.saves, append([]byte(nil), data...))
	return r.err
}

func (r *recordingSaver) snapshot() [][]byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]byte(nil), r.saves...)
}

func decodeLast(t *testing.T, saves [][]byte) domain.CompletionMap {
	t.Helper()
	require.NotEmpty(t, saves)
	m, err := Decode(saves[len(saves)-1])
	require.NoError(t, err)
	return m
}

func flush(t *testing.T, p *Persister) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, p.Flush(ctx))
}

// takenSeq is the seq of the newest snapshot handed to the saver.
func takenSeq(p *Persister) uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.taken
}

func TestPersister_SavesFullMapAfterMutation(t *testing.T) {
	store := NewStore()
	saver := &recordingSaver{}
	p := NewPersister(store, saver, nil)
	defer p.Close(context.Background())

	store.Toggle("c1", "a")
	flush(t, p)

	assert.Equal(t, domain.CompletionMap{"c1": {"a": true}}, decodeLast(t, saver.snapshot()))
	assert.Equal(t, uint64(1), takenSeq(p))
}

func TestPersister_InMemoryUpdateDoesNotWaitForWrite(t *testing.T) {
	store := NewStore()
	saver := &recordingSaver{started: make(chan struct{}, 1), gate: make(chan struct{})}
	p := NewPersister(store, saver, nil)

	store.Toggle("c1", "a")
	<-saver.started

	// The write is still blocked; state is already visible.
	assert.True(t, store.IsCompleted("c1", "a"))
	assert.Empty(t, saver.snapshot())

	close(saver.gate)
	require.NoError(t, p.Close(context.Background()))
	assert.Len(t, saver.snapshot(), 1)
}

func TestPersister_CoalescesBurstsLastWriteWins(t *testing.T) {
	store := NewStore()
	saver := &recordingSaver{started: make(chan struct{}, 4), gate: make(chan struct{})}
	p := NewPersister(store, saver, nil)

	store.Toggle("c1", "a")
	<-saver.started // first write in flight

	store.Toggle("c1", "b")
	store.Toggle("c1", "c")
	store.Toggle("c1", "a")

	close(saver.gate)
	require.NoError(t, p.Close(context.Background()))

	saves := saver.snapshot()
	assert.Len(t, saves, 2, "queued events collapse into one write")
	assert.Equal(t, domain.CompletionMap{"c1": {"a": false, "b": true, "c": true}}, decodeLast(t, saves))
	assert.Equal(t, uint64(4), takenSeq(p))
}

func TestPersister_SaveFailureKeepsMemoryState(t *testing.T) {
	store := NewStore()
	saver := &recordingSaver{err: errors.New("disk full")}
	p := NewPersister(store, saver, nil)
	defer p.Close(context.Background())

	store.Toggle("c1", "a")
	flush(t, p)

	assert.True(t, store.IsCompleted("c1", "a"))

	saver.mu.Lock()
	saver.err = nil
	saver.mu.Unlock()

	store.Toggle("c1", "b")
	flush(t, p)
	assert.Equal(t, domain.CompletionMap{"c1": {"a": true, "b": true}}, decodeLast(t, saver.snapshot()))
}

func TestPersister_ResetPersistsEmptyState(t *testing.T) {
	store := NewStore()
	saver := &recordingSaver{}
	p := NewPersister(store, saver, nil)
	defer p.Close(context.Background())

	store.Toggle("c1", "a")
	store.Reset()
	flush(t, p)

	assert.Empty(t, decodeLast(t, saver.snapshot()))
}

func TestPersister_CloseStopsListening(t *testing.T) {
	store := NewStore()
	saver := &recordingSaver{}
	p := NewPersister(store, saver, nil)

	store.Toggle("c1", "a")
	require.NoError(t, p.Close(context.Background()))
	require.NoError(t, p.Close(context.Background()))
	before := len(saver.snapshot())

	store.Toggle("c1", "b")
	assert.Len(t, saver.snapshot(), before)
}

func TestPersister_FlushHonoursContext(t *testing.T) {
	store := NewStore()
	saver := &recordingSaver{started: make(chan struct{}, 1), gate: make(chan struct{})}
	p := NewPersister(store, saver, nil)

	store.Toggle("c1", "a")
	<-saver.started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, p.Flush(ctx), context.DeadlineExceeded)

	close(saver.gate)
	require.NoError(t, p.Close(context.Background()))
}

func TestPersister_LateOlderEventDoesNotOverwriteNewer(t *testing.T) {
	store := NewStore()

	// A subscriber registered ahead of the persister stalls the first
	// toggle's notification, so its event reaches the persister last.
	held := make(chan struct{})
	release := make(chan struct{})
	store.Subscribe(func(ev ChangeEvent) {
		if ev.Seq == 1 {
			close(held)
			<-release
		}
	})

	saver := &recordingSaver{}
	p := NewPersister(store, saver, nil)
	defer p.Close(context.Background())

	firstDone := make(chan struct{})
	go func() {
		store.Toggle("c1", "a")
		close(firstDone)
	}()
	<-held

	store.Toggle("c1", "b")
	flush(t, p)

	close(release)
	<-firstDone
	flush(t, p)

	want := domain.CompletionMap{"c1": {"a": true, "b": true}}
	assert.Equal(t, want, store.Snapshot())
	assert.Equal(t, want, decodeLast(t, saver.snapshot()))
	assert.Len(t, saver.snapshot(), 1, "the stale event is not written")
	assert.Equal(t, uint64(2), takenSeq(p))
}

// stuckSaver blocks until its context ends.
type stuckSaver struct {
	mu       sync.Mutex
	deadline bool
}

func (s *stuckSaver) Save(ctx context.Context, _ []byte) error {
	_, ok := ctx.Deadline()
	s.mu.Lock()
	s.deadline = ok
	s.mu.Unlock()
	<-ctx.Done()
	return ctx.Err()
}

func TestPersister_SaveIsBoundedByTimeout(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	store := NewStore()
	saver := &stuckSaver{}
	p := NewPersister(store, saver, zap.New(core), WithSaveTimeout(20*time.Millisecond))

	store.Toggle("c1", "a")
	flush(t, p)
	require.NoError(t, p.Close(context.Background()))

	saver.mu.Lock()
	assert.True(t, saver.deadline)
	saver.mu.Unlock()

	entries := logs.FilterMessage("saving progress snapshot dropped").All()
	require.Len(t, entries, 1)
	assert.Equal(t, context.DeadlineExceeded.Error(), entries[0].ContextMap()["error"])
}

func TestPersister_FlushWaiterReleasedOnCancel(t *testing.T) {
	store := NewStore()
	saver := &recordingSaver{started: make(chan struct{}, 1), gate: make(chan struct{})}
	p := NewPersister(store, saver, nil)

	store.Toggle("c1", "a")
	<-saver.started

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- p.Flush(ctx) }()
	cancel()

	select {
	case err := <-errc:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Flush did not return after cancel")
	}

	close(saver.gate)
	require.NoError(t, p.Close(context.Background()))
}
