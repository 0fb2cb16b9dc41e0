// Package draft implements the edit protocol: an operator mutates an isolated
// working copy of a record while the live feed keeps replacing the underlying
// collection, then commits the whole draft back in one atomic merge.
package draft

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/taskflow/catalog-backoffice/internal/app/catalog/domain"
)

var (
	// ErrCommitInFlight indicates a second commit was requested while one is
	// already pending on the same draft.
	ErrCommitInFlight = errors.New("draft commit already in flight")

	// ErrDraftClosed indicates an operation on a draft that was already
	// committed or discarded.
	ErrDraftClosed = errors.New("draft is closed")
)

// ProductDraft is an isolated, locally-owned working copy of a product.
// It is opened on a deep clone, so feed updates never mutate it in place,
// and it is exclusively owned by the editing session until commit or discard.
type ProductDraft struct {
	mu         sync.Mutex
	record     *domain.Product
	committing bool
	closed     bool
}

// Open deep-clones the selected record into a new draft.
func Open(p *domain.Product) *ProductDraft {
	return &ProductDraft{record: p.Clone()}
}

// ID returns the identifier of the record being edited.
func (d *ProductDraft) ID() string {
	return d.record.ID()
}

// Record returns a deep copy of the draft's current state.
func (d *ProductDraft) Record() *domain.Product {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.record.Clone()
}

// Changed reports whether any field was modified since the draft opened.
func (d *ProductDraft) Changed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.record.Changes().HasChanges()
}

// DirtyFields lists the fields modified since the draft opened.
func (d *ProductDraft) DirtyFields() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.record.Changes().DirtyFields()
}

// mutate runs fn against the working copy unless the draft is closed.
func (d *ProductDraft) mutate(fn func(p *domain.Product) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return ErrDraftClosed
	}
	return fn(d.record)
}

// Scalar mutators, local and synchronous.

func (d *ProductDraft) Rename(name string) error {
	return d.mutate(func(p *domain.Product) error { return p.Rename(name) })
}

func (d *ProductDraft) SetSKU(sku string) error {
	return d.mutate(func(p *domain.Product) error { p.SetSKU(sku); return nil })
}

func (d *ProductDraft) SetRegularPrice(price float64) error {
	return d.mutate(func(p *domain.Product) error { return p.SetRegularPrice(price) })
}

func (d *ProductDraft) SetSalePrice(price float64) error {
	return d.mutate(func(p *domain.Product) error { return p.SetSalePrice(price) })
}

func (d *ProductDraft) SetMainImage(url string) error {
	return d.mutate(func(p *domain.Product) error { return p.SetMainImage(url) })
}

func (d *ProductDraft) SetGalleryImage(url string) error {
	return d.mutate(func(p *domain.Product) error { p.SetGalleryImage(url); return nil })
}

// Classification mutators.

func (d *ProductDraft) ChangeWebsite(reg *domain.Registry, website string) error {
	return d.mutate(func(p *domain.Product) error { return p.ChangeWebsite(reg, website) })
}

func (d *ProductDraft) SetCategories(reg *domain.Registry, categories []string) error {
	return d.mutate(func(p *domain.Product) error { return p.SetCategories(reg, categories) })
}

func (d *ProductDraft) SetBrands(reg *domain.Registry, brands []string) error {
	return d.mutate(func(p *domain.Product) error { return p.SetBrands(reg, brands) })
}

func (d *ProductDraft) ToggleCategory(reg *domain.Registry, category string) error {
	return d.mutate(func(p *domain.Product) error { return p.ToggleCategory(reg, category) })
}

func (d *ProductDraft) ToggleBrand(reg *domain.Registry, brand string) error {
	return d.mutate(func(p *domain.Product) error { return p.ToggleBrand(reg, brand) })
}

// Block mutators.

// AppendBlock adds an empty block with a freshly generated identifier and
// returns the identifier. Identifiers of removed blocks are never reissued.
func (d *ProductDraft) AppendBlock(label string) (string, error) {
	id := uuid.NewString()
	err := d.mutate(func(p *domain.Product) error {
		return p.AddBlock(domain.SpecBlock{ID: id, Label: label})
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

func (d *ProductDraft) RemoveBlock(id string) error {
	return d.mutate(func(p *domain.Product) error { return p.RemoveBlock(id) })
}

func (d *ProductDraft) SetBlockValue(id, value string) error {
	return d.mutate(func(p *domain.Product) error { return p.SetBlockValue(id, value) })
}

func (d *ProductDraft) SetBlockLabel(id, label string) error {
	return d.mutate(func(p *domain.Product) error { return p.SetBlockLabel(id, label) })
}

// Commit lifecycle. The interactor drives it: BeginCommit reserves the single
// in-flight slot and returns the state to write, FinishCommit releases the
// slot and closes the draft on success.

// BeginCommit marks a commit in flight and returns a deep copy of the draft
// to be written. Only one commit may be in flight per draft; a concurrent
// request fails with ErrCommitInFlight.
func (d *ProductDraft) BeginCommit() (*domain.Product, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil, ErrDraftClosed
	}
	if d.committing {
		return nil, ErrCommitInFlight
	}
	d.committing = true
	return d.record.Clone(), nil
}

// FinishCommit releases the in-flight slot. On success the draft is closed
// and any further mutation or commit fails with ErrDraftClosed; on failure
// the draft stays open, unchanged, for a manual retry.
func (d *ProductDraft) FinishCommit(success bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.committing = false
	if success {
		d.closed = true
	}
}

// Discard closes the draft without writing. Idempotent.
func (d *ProductDraft) Discard() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
}

// Closed reports whether the draft was committed or discarded.
func (d *ProductDraft) Closed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}
