package contracts

import "context"

// Collection names in the backing document store.
const (
	ProductsCollection  = "products"
	InquiriesCollection = "inquiries"
)

// Direction is the sort direction of an ordered subscription.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// serverTimestamp is the sentinel type for server-assigned timestamps.
type serverTimestamp struct{}

// ServerTimestamp marks a document field whose value the store assigns at
// write time. Adapters translate it to their provider's sentinel.
var ServerTimestamp = serverTimestamp{}

// Document is one schema-less record as delivered by the store.
type Document struct {
	ID   string
	Data map[string]interface{}
}

// Subscription is a live, ordered subscription to one collection. Each value
// on Snapshots is a full, self-consistent snapshot of the collection in the
// configured order; no partial updates are ever observable. The channel is
// closed when the subscription stops. Connection drops are recovered inside
// the adapter and never surface here.
type Subscription interface {
	Snapshots() <-chan []Document

	// Stop releases the subscription. Safe to call multiple times.
	Stop()
}

// DocumentStore is the boundary to the backing document store. All four
// primitives are network-fallible and asynchronous; retries and reconnects
// are the adapter's responsibility.
type DocumentStore interface {
	// Subscribe opens an ordered live subscription to a collection.
	// A subscription is restartable by subscribing again, not resumable
	// mid-stream.
	Subscribe(ctx context.Context, collection, orderKey string, dir Direction) (Subscription, error)

	// Create writes a new document and returns its server-assigned id.
	// Values equal to ServerTimestamp are replaced by the store's own clock.
	Create(ctx context.Context, collection string, data map[string]interface{}) (string, error)

	// Merge applies the given fields to an existing document in one atomic
	// write, keyed by id. Fields not present in data are left untouched.
	Merge(ctx context.Context, collection, id string, data map[string]interface{}) error

	// Delete removes a document permanently. There is no soft delete.
	Delete(ctx context.Context, collection, id string) error
}
