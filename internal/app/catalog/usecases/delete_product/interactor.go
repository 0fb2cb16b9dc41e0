package delete_product

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/taskflow/catalog-backoffice/internal/app/catalog/contracts"
	"github.com/taskflow/catalog-backoffice/internal/app/catalog/domain"
)

// Interactor deletes a product record. Deletion is irreversible; there is no
// soft delete. A store failure leaves local state unchanged and may be
// retried manually.
type Interactor struct {
	Store     contracts.DocumentStore
	ReadModel contracts.ProductReadModel
	Log       zerolog.Logger
}

func NewInteractor(store contracts.DocumentStore, rm contracts.ProductReadModel, log zerolog.Logger) *Interactor {
	return &Interactor{
		Store:     store,
		ReadModel: rm,
		Log:       log.With().Str("component", "delete_product").Logger(),
	}
}

func (it *Interactor) Execute(ctx context.Context, productID string) error {
	if _, ok := it.ReadModel.Product(productID); !ok {
		return domain.ErrProductNotFound
	}
	if err := it.Store.Delete(ctx, contracts.ProductsCollection, productID); err != nil {
		return fmt.Errorf("delete product %s: %w", productID, err)
	}
	it.Log.Info().Str("product_id", productID).Msg("product deleted")
	return nil
}
