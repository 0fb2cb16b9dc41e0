package feed

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskflow/catalog-backoffice/internal/app/catalog/contracts"
)

// Record is anything the feed can materialize: it has a stable identity and
// a position under the configured order key.
type Record interface {
	RecordID() string
	OrderedAt() time.Time
}

// DecodeFunc turns one stored document into a record. A decode failure skips
// the document; it never fails the snapshot.
type DecodeFunc[T Record] func(contracts.Document) (T, error)

// Synchronizer subscribes to the store's ordered stream for one collection
// and maintains a materialized sequence reflecting the latest known state.
// Every delivered snapshot replaces the sequence wholesale (last snapshot
// wins), so a gap in the stream needs no reconciliation. Snapshot application
// and observer dispatch are serialized on a single goroutine; the sequence
// itself is a read-through cache, never authoritative.
type Synchronizer[T Record] struct {
	store      contracts.DocumentStore
	collection string
	orderKey   string
	dir        contracts.Direction
	decode     DecodeFunc[T]
	log        zerolog.Logger

	mu        sync.RWMutex
	current   []T
	ready     bool
	observers []func([]T)

	sub      contracts.Subscription
	done     chan struct{}
	stopOnce sync.Once
}

// New creates a Synchronizer for one collection. Call Start to subscribe.
func New[T Record](store contracts.DocumentStore, collection, orderKey string, dir contracts.Direction, decode DecodeFunc[T], log zerolog.Logger) *Synchronizer[T] {
	return &Synchronizer[T]{
		store:      store,
		collection: collection,
		orderKey:   orderKey,
		dir:        dir,
		decode:     decode,
		log:        log.With().Str("component", "feed").Str("collection", collection).Logger(),
	}
}

// Start opens the subscription and begins applying snapshots. A stopped
// synchronizer is not restartable; create a new one to resubscribe.
func (s *Synchronizer[T]) Start(ctx context.Context) error {
	sub, err := s.store.Subscribe(ctx, s.collection, s.orderKey, s.dir)
	if err != nil {
		return err
	}
	s.sub = sub
	s.done = make(chan struct{})
	go s.applyLoop()
	return nil
}

func (s *Synchronizer[T]) applyLoop() {
	defer close(s.done)
	for snapshot := range s.sub.Snapshots() {
		s.apply(snapshot)
	}
}

func (s *Synchronizer[T]) apply(docs []contracts.Document) {
	records := make([]T, 0, len(docs))
	for _, doc := range docs {
		rec, err := s.decode(doc)
		if err != nil {
			s.log.Warn().Err(err).Str("doc", doc.ID).Msg("skipping undecodable document")
			continue
		}
		records = append(records, rec)
	}
	sortRecords(records, s.dir)

	s.mu.Lock()
	s.current = records
	s.ready = true
	observers := make([]func([]T), len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()

	// Observers receive the full replacement sequence, never a delta.
	for _, fn := range observers {
		fn(append([]T(nil), records...))
	}
}

// Snapshot returns a copy of the current materialized sequence.
func (s *Synchronizer[T]) Snapshot() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]T(nil), s.current...)
}

// Find looks a record up by id in the current sequence.
func (s *Synchronizer[T]) Find(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.current {
		if rec.RecordID() == id {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// Ready reports whether a first snapshot has been materialized.
func (s *Synchronizer[T]) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// OnReplace registers an observer invoked with the full replacement sequence
// after each applied snapshot. Observers run serialized on the apply
// goroutine and must not block for long.
func (s *Synchronizer[T]) OnReplace(fn func([]T)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

// Stop releases the subscription and waits for the apply loop to drain.
// Calling Stop more than once has the same observable effect as calling it
// once.
func (s *Synchronizer[T]) Stop() {
	s.stopOnce.Do(func() {
		if s.sub != nil {
			s.sub.Stop()
		}
	})
	if s.done != nil {
		<-s.done
	}
}

// sortRecords enforces a deterministic total order regardless of how the
// store delivered the snapshot: the configured key, ties broken by record id.
func sortRecords[T Record](records []T, dir contracts.Direction) {
	sort.SliceStable(records, func(i, j int) bool {
		ti, tj := records[i].OrderedAt(), records[j].OrderedAt()
		if !ti.Equal(tj) {
			if dir == contracts.Descending {
				return ti.After(tj)
			}
			return ti.Before(tj)
		}
		return records[i].RecordID() < records[j].RecordID()
	})
}
