// Package firestoredb implements the DocumentStore contract on Cloud
// Firestore. Subscriptions are the client's snapshot listeners: each
// delivered query snapshot is a full, consistent view of the collection, and
// stream interruptions are recovered here without surfacing to the core.
package firestoredb

import (
	"context"
	"sync"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"

	"github.com/taskflow/catalog-backoffice/internal/app/catalog/contracts"
)

// resubscribeDelay spaces out listener re-creation after a stream error.
const resubscribeDelay = 2 * time.Second

// NewClient builds a Firestore client. credentialsFile may be empty to fall
// back to application-default credentials.
func NewClient(ctx context.Context, projectID, credentialsFile string) (*firestore.Client, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	return firestore.NewClient(ctx, projectID, opts...)
}

// Store is the Firestore-backed DocumentStore.
type Store struct {
	client *firestore.Client
	log    zerolog.Logger
}

func New(client *firestore.Client, log zerolog.Logger) *Store {
	return &Store{
		client: client,
		log:    log.With().Str("component", "firestoredb").Logger(),
	}
}

// Subscribe opens an ordered snapshot listener on a collection. Ties on the
// order key are broken by document id so delivery order is deterministic.
func (s *Store) Subscribe(ctx context.Context, collection, orderKey string, dir contracts.Direction) (contracts.Subscription, error) {
	ctx, cancel := context.WithCancel(ctx)
	sub := &subscription{
		cancel: cancel,
		ch:     make(chan []contracts.Document),
	}
	go s.listen(ctx, collection, orderKey, dir, sub.ch)
	return sub, nil
}

func (s *Store) listen(ctx context.Context, collection, orderKey string, dir contracts.Direction, ch chan<- []contracts.Document) {
	defer close(ch)

	fsDir := firestore.Asc
	if dir == contracts.Descending {
		fsDir = firestore.Desc
	}

	for {
		query := s.client.Collection(collection).
			OrderBy(orderKey, fsDir).
			OrderBy(firestore.DocumentID, firestore.Asc)
		snaps := query.Snapshots(ctx)

		for {
			qs, err := snaps.Next()
			if err != nil {
				snaps.Stop()
				if ctx.Err() != nil {
					return
				}
				// Transient stream error: resubscribe quietly, the core
				// treats the next snapshot as a wholesale replacement.
				s.log.Warn().Err(err).Str("collection", collection).Msg("snapshot stream interrupted, resubscribing")
				break
			}

			docs, err := qs.Documents.GetAll()
			if err != nil {
				s.log.Warn().Err(err).Str("collection", collection).Msg("reading snapshot documents failed")
				continue
			}

			out := make([]contracts.Document, 0, len(docs))
			for _, d := range docs {
				out = append(out, contracts.Document{ID: d.Ref.ID, Data: d.Data()})
			}

			select {
			case ch <- out:
			case <-ctx.Done():
				snaps.Stop()
				return
			}
		}

		select {
		case <-time.After(resubscribeDelay):
		case <-ctx.Done():
			return
		}
	}
}

// Create writes a new document with a generated id and returns it. The
// ServerTimestamp sentinel is translated to Firestore's own.
func (s *Store) Create(ctx context.Context, collection string, data map[string]interface{}) (string, error) {
	ref := s.client.Collection(collection).NewDoc()
	if _, err := ref.Create(ctx, translateSentinels(data)); err != nil {
		return "", err
	}
	return ref.ID, nil
}

// Merge applies the given fields to one document atomically, keyed by id.
func (s *Store) Merge(ctx context.Context, collection, id string, data map[string]interface{}) error {
	_, err := s.client.Collection(collection).Doc(id).Set(ctx, translateSentinels(data), firestore.MergeAll)
	return err
}

// Delete removes a document permanently.
func (s *Store) Delete(ctx context.Context, collection, id string) error {
	_, err := s.client.Collection(collection).Doc(id).Delete(ctx)
	return err
}

func translateSentinels(data map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(data))
	for k, v := range data {
		if v == contracts.ServerTimestamp {
			out[k] = firestore.ServerTimestamp
			continue
		}
		out[k] = v
	}
	return out
}

type subscription struct {
	cancel context.CancelFunc
	ch     chan []contracts.Document
	once   sync.Once
}

func (s *subscription) Snapshots() <-chan []contracts.Document {
	return s.ch
}

// Stop releases the listener. Safe to call multiple times.
func (s *subscription) Stop() {
	s.once.Do(s.cancel)
}
