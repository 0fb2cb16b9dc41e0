package toggle_inquiry

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/taskflow/catalog-backoffice/internal/app/catalog/contracts"
	"github.com/taskflow/catalog-backoffice/internal/app/catalog/domain"
	"github.com/taskflow/catalog-backoffice/internal/models/m_inquiry"
)

// Interactor flips an inquiry between pending and reviewed. Status is the
// only mutable inquiry field; the merge touches nothing else. The new status
// becomes visible through the feed's next snapshot, not optimistically.
type Interactor struct {
	Store     contracts.DocumentStore
	ReadModel contracts.InquiryReadModel
	Log       zerolog.Logger
}

func NewInteractor(store contracts.DocumentStore, rm contracts.InquiryReadModel, log zerolog.Logger) *Interactor {
	return &Interactor{
		Store:     store,
		ReadModel: rm,
		Log:       log.With().Str("component", "toggle_inquiry").Logger(),
	}
}

// Execute toggles the inquiry's status and returns the status that was
// written.
func (it *Interactor) Execute(ctx context.Context, inquiryID string) (domain.InquiryStatus, error) {
	inq, ok := it.ReadModel.Inquiry(inquiryID)
	if !ok {
		return "", domain.ErrInquiryNotFound
	}

	next := domain.NextStatus(inq.Status())
	if err := it.Store.Merge(ctx, contracts.InquiriesCollection, inquiryID, m_inquiry.BuildStatusMap(next)); err != nil {
		return "", fmt.Errorf("toggle inquiry %s: %w", inquiryID, err)
	}

	it.Log.Info().Str("inquiry_id", inquiryID).Str("status", string(next)).Msg("inquiry status toggled")
	return next, nil
}
