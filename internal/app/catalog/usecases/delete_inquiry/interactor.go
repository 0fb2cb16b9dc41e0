package delete_inquiry

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/taskflow/catalog-backoffice/internal/app/catalog/contracts"
	"github.com/taskflow/catalog-backoffice/internal/app/catalog/domain"
)

// Interactor deletes an inquiry record permanently.
type Interactor struct {
	Store     contracts.DocumentStore
	ReadModel contracts.InquiryReadModel
	Log       zerolog.Logger
}

func NewInteractor(store contracts.DocumentStore, rm contracts.InquiryReadModel, log zerolog.Logger) *Interactor {
	return &Interactor{
		Store:     store,
		ReadModel: rm,
		Log:       log.With().Str("component", "delete_inquiry").Logger(),
	}
}

func (it *Interactor) Execute(ctx context.Context, inquiryID string) error {
	if _, ok := it.ReadModel.Inquiry(inquiryID); !ok {
		return domain.ErrInquiryNotFound
	}
	if err := it.Store.Delete(ctx, contracts.InquiriesCollection, inquiryID); err != nil {
		return fmt.Errorf("delete inquiry %s: %w", inquiryID, err)
	}
	it.Log.Info().Str("inquiry_id", inquiryID).Msg("inquiry deleted")
	return nil
}
