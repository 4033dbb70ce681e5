package progress

import (
	"context"
	"sync"

	"github.com/alexanderramin/learnhub/internal/domain"
)

type LoadOutcome string

const (
	LoadEmpty     LoadOutcome = "empty"
	LoadRestored  LoadOutcome = "restored"
	LoadDiscarded LoadOutcome = "discarded"
)

// LoadResult reports what Init found. Err is set only for LoadDiscarded.
type LoadResult struct {
	Outcome LoadOutcome
	Err     error
}

// Store is the completion state container. Construct one per application
// and pass it to consumers; there is no package-level instance.
type Store struct {
	mu        sync.RWMutex
	progress  domain.CompletionMap
	ready     bool
	seq       uint64
	listeners []subscription
	nextSubID int
}

type subscription struct {
	id int
	fn Listener
}

// NewStore returns an empty store. Queries answer as if nothing is
// completed until Init has run.
func NewStore() *Store {
	return &Store{progress: make(domain.CompletionMap)}
}

// Init loads persisted state once. It never fails the caller: unreadable,
// corrupt or unsupported payloads fall back to an empty map and are reported
// in the result. Subscribers are not notified.
func (s *Store) Init(ctx context.Context, src Loader) LoadResult {
	loaded, res := load(ctx, src)

	s.mu.Lock()
	s.progress = loaded
	s.ready = true
	s.mu.Unlock()

	return res
}

func load(ctx context.Context, src Loader) (domain.CompletionMap, LoadResult) {
	if src == nil {
		return make(domain.CompletionMap), LoadResult{Outcome: LoadEmpty}
	}
	data, found, err := src.Load(ctx)
	if err != nil {
		return make(domain.CompletionMap), LoadResult{Outcome: LoadDiscarded, Err: err}
	}
	if !found {
		return make(domain.CompletionMap), LoadResult{Outcome: LoadEmpty}
	}
	m, err := Decode(data)
	if err != nil {
		return make(domain.CompletionMap), LoadResult{Outcome: LoadDiscarded, Err: err}
	}
	return m, LoadResult{Outcome: LoadRestored}
}

// Ready reports whether Init has completed.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

func (s *Store) IsCompleted(courseID, lessonID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.progress.IsCompleted(courseID, lessonID)
}

func (s *Store) CompletedCount(courseID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.progress.CompletedCount(courseID)
}

// TotalCompleted counts completed lessons across all courses, including
// courses the current catalog no longer lists.
func (s *Store) TotalCompleted() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.progress.TotalCompleted()
}

// CourseProgressPercent divides the completed count under courseID by the
// caller-supplied total. The store does not know catalog shapes, so the
// total must come from the same catalog the lesson IDs came from.
func (s *Store) CourseProgressPercent(courseID string, totalLessons int) int {
	if totalLessons <= 0 {
		return 0
	}
	return domain.Percent(s.CompletedCount(courseID), totalLessons)
}

// OverallProgressPercent counts only lessons present in courses, so stale
// entries for removed lessons do not inflate the result.
func (s *Store) OverallProgressPercent(courses []domain.Course) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total, completed := 0, 0
	for i := range courses {
		c := &courses[i]
		for _, lessonID := range c.LessonIDs() {
			total++
			if s.progress.IsCompleted(c.ID, lessonID) {
				completed++
			}
		}
	}
	return domain.Percent(completed, total)
}

// Snapshot returns a deep copy of the completion map.
func (s *Store) Snapshot() domain.CompletionMap {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.progress.Clone()
}

// Toggle flips the pair: absent or false becomes true, true becomes false.
func (s *Store) Toggle(courseID, lessonID string) ChangeEvent {
	s.mu.Lock()
	done := !s.progress.IsCompleted(courseID, lessonID)
	s.progress.Set(courseID, lessonID, done)
	ev := s.eventLocked(ChangeToggle, courseID, lessonID, done)
	listeners := s.listenersLocked()
	s.mu.Unlock()

	notify(listeners, ev)
	return ev
}

// SetCompleted stores done for the pair. It publishes an event only when the
// effective value changes and reports whether it did.
func (s *Store) SetCompleted(courseID, lessonID string, done bool) (ChangeEvent, bool) {
	s.mu.Lock()
	if s.progress.IsCompleted(courseID, lessonID) == done {
		s.mu.Unlock()
		return ChangeEvent{}, false
	}
	s.progress.Set(courseID, lessonID, done)
	ev := s.eventLocked(ChangeSet, courseID, lessonID, done)
	listeners := s.listenersLocked()
	s.mu.Unlock()

	notify(listeners, ev)
	return ev, true
}

// Reset clears every entry. The event snapshot is empty, so persisting it
// stores the empty state.
func (s *Store) Reset() ChangeEvent {
	s.mu.Lock()
	s.progress = make(domain.CompletionMap)
	ev := s.eventLocked(ChangeReset, "", "", false)
	listeners := s.listenersLocked()
	s.mu.Unlock()

	notify(listeners, ev)
	return ev
}

// Subscribe registers fn for every subsequent mutation. The returned func
// removes it; calling it more than once is harmless.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	s.nextSubID++
	id := s.nextSubID
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.listeners {
				if sub.id == id {
					s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

func (s *Store) eventLocked(kind ChangeKind, courseID, lessonID string, done bool) ChangeEvent {
	s.seq++
	return ChangeEvent{
		Seq:       s.seq,
		Kind:      kind,
		CourseID:  courseID,
		LessonID:  lessonID,
		Completed: done,
		Snapshot:  s.progress.Clone(),
	}
}

func (s *Store) listenersLocked() []Listener {
	out := make([]Listener, len(s.listeners))
	for i, sub := range s.listeners {
		out[i] = sub.fn
	}
	return out
}

func notify(listeners []Listener, ev ChangeEvent) {
	for _, fn := range listeners {
		fn(ev)
	}
}
