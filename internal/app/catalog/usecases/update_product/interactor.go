package update_product

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/taskflow/catalog-backoffice/internal/app/catalog/contracts"
	"github.com/taskflow/catalog-backoffice/internal/app/catalog/domain"
	"github.com/taskflow/catalog-backoffice/internal/app/catalog/draft"
	"github.com/taskflow/catalog-backoffice/internal/models/m_product"
)

// BlockEdit addresses one existing specification block by identifier.
// Nil fields are left untouched.
type BlockEdit struct {
	ID    string
	Label *string
	Value *string
}

// Request is a partial update: nil fields are left untouched. Block edits are
// applied before appends and removals, in that order. Changing Website resets
// the brand/category selection to the new website's default, so explicit
// Categories/Brands in the same request are applied after the reset.
type Request struct {
	ProductID    string
	Name         *string
	SKU          *string
	RegularPrice *float64
	SalePrice    *float64
	MainImage    *string
	GalleryImage *string
	Website      *string
	Categories   *[]string
	Brands       *[]string
	BlockEdits   []BlockEdit
	AppendBlocks []string
	RemoveBlocks []string
}

// Interactor commits operator edits through the draft protocol: the current
// record is cloned into a draft, mutated locally, and written back as one
// atomic whole-document merge keyed by the original id. The materialized feed
// is never updated optimistically; the change becomes visible only through
// the synchronizer's next snapshot.
type Interactor struct {
	Store     contracts.DocumentStore
	ReadModel contracts.ProductReadModel
	Registry  *domain.Registry
	Log       zerolog.Logger
}

func NewInteractor(store contracts.DocumentStore, rm contracts.ProductReadModel, reg *domain.Registry, log zerolog.Logger) *Interactor {
	return &Interactor{
		Store:     store,
		ReadModel: rm,
		Registry:  reg,
		Log:       log.With().Str("component", "update_product").Logger(),
	}
}

func (it *Interactor) Execute(ctx context.Context, req Request) error {
	current, ok := it.ReadModel.Product(req.ProductID)
	if !ok {
		return domain.ErrProductNotFound
	}

	d := draft.Open(current)
	if err := it.applyEdits(d, req); err != nil {
		return err
	}

	return it.Commit(ctx, d)
}

// Commit writes an open draft back to the store. Only one commit may be in
// flight per draft; a concurrent request fails with draft.ErrCommitInFlight
// instead of interleaving.
func (it *Interactor) Commit(ctx context.Context, d *draft.ProductDraft) error {
	snapshot, err := d.BeginCommit()
	if err != nil {
		return err
	}

	err = it.Store.Merge(ctx, contracts.ProductsCollection, d.ID(), m_product.BuildMergeMap(snapshot))
	d.FinishCommit(err == nil)
	if err != nil {
		return fmt.Errorf("commit product %s: %w", d.ID(), err)
	}

	it.Log.Info().Str("product_id", d.ID()).Strs("fields", snapshot.Changes().DirtyFields()).Msg("product updated")
	return nil
}

func (it *Interactor) applyEdits(d *draft.ProductDraft, req Request) error {
	if req.Website != nil {
		if err := d.ChangeWebsite(it.Registry, *req.Website); err != nil {
			return err
		}
	}
	if req.Categories != nil {
		if err := d.SetCategories(it.Registry, *req.Categories); err != nil {
			return err
		}
	}
	if req.Brands != nil {
		if err := d.SetBrands(it.Registry, *req.Brands); err != nil {
			return err
		}
	}
	if req.Name != nil {
		if err := d.Rename(*req.Name); err != nil {
			return err
		}
	}
	if req.SKU != nil {
		if err := d.SetSKU(*req.SKU); err != nil {
			return err
		}
	}
	if req.RegularPrice != nil {
		if err := d.SetRegularPrice(*req.RegularPrice); err != nil {
			return err
		}
	}
	if req.SalePrice != nil {
		if err := d.SetSalePrice(*req.SalePrice); err != nil {
			return err
		}
	}
	if req.MainImage != nil {
		if err := d.SetMainImage(*req.MainImage); err != nil {
			return err
		}
	}
	if req.GalleryImage != nil {
		if err := d.SetGalleryImage(*req.GalleryImage); err != nil {
			return err
		}
	}
	for _, edit := range req.BlockEdits {
		if edit.Label != nil {
			if err := d.SetBlockLabel(edit.ID, *edit.Label); err != nil {
				return err
			}
		}
		if edit.Value != nil {
			if err := d.SetBlockValue(edit.ID, *edit.Value); err != nil {
				return err
			}
		}
	}
	for _, label := range req.AppendBlocks {
		if _, err := d.AppendBlock(label); err != nil {
			return err
		}
	}
	for _, id := range req.RemoveBlocks {
		if err := d.RemoveBlock(id); err != nil {
			return err
		}
	}
	return nil
}
