package toggle_inquiry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskflow/catalog-backoffice/internal/app/catalog/contracts"
	"github.com/taskflow/catalog-backoffice/internal/app/catalog/domain"
	"github.com/taskflow/catalog-backoffice/internal/models/m_inquiry"
)

type fakeStore struct {
	mergedCollection string
	mergedID         string
	mergedData       map[string]interface{}
	mergeErr         error
}

func (f *fakeStore) Subscribe(ctx context.Context, collection, orderKey string, dir contracts.Direction) (contracts.Subscription, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeStore) Create(ctx context.Context, collection string, data map[string]interface{}) (string, error) {
	return "", errors.New("not implemented")
}

func (f *fakeStore) Merge(ctx context.Context, collection, id string, data map[string]interface{}) error {
	if f.mergeErr != nil {
		return f.mergeErr
	}
	f.mergedCollection = collection
	f.mergedID = id
	f.mergedData = data
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, collection, id string) error {
	return errors.New("not implemented")
}

type fakeReadModel struct {
	inquiries map[string]*domain.Inquiry
}

func (f *fakeReadModel) Inquiries() []*domain.Inquiry {
	out := make([]*domain.Inquiry, 0, len(f.inquiries))
	for _, inq := range f.inquiries {
		out = append(out, inq)
	}
	return out
}

func (f *fakeReadModel) Inquiry(id string) (*domain.Inquiry, bool) {
	inq, ok := f.inquiries[id]
	return inq, ok
}

func (f *fakeReadModel) Ready() bool { return true }

func seedInquiry(status domain.InquiryStatus) *domain.Inquiry {
	return domain.ReconstructInquiry("inq-1", domain.CustomerDetails{}, nil, "Ecoshift", status, time.Now().UTC())
}

// TestExecute_TogglesPendingToReviewed verifies the toggle writes only the
// status field to the inquiries collection.
func TestExecute_TogglesPendingToReviewed(t *testing.T) {
	store := &fakeStore{}
	rm := &fakeReadModel{inquiries: map[string]*domain.Inquiry{"inq-1": seedInquiry(domain.InquiryStatusPending)}}
	it := NewInteractor(store, rm, zerolog.Nop())

	next, err := it.Execute(context.Background(), "inq-1")
	require.NoError(t, err)
	assert.Equal(t, domain.InquiryStatusReviewed, next)

	assert.Equal(t, contracts.InquiriesCollection, store.mergedCollection)
	assert.Equal(t, "inq-1", store.mergedID)
	assert.Equal(t, map[string]interface{}{m_inquiry.ColStatus: "reviewed"}, store.mergedData)
}

// TestExecute_TogglesReviewedBack verifies the other direction of the toggle.
func TestExecute_TogglesReviewedBack(t *testing.T) {
	store := &fakeStore{}
	rm := &fakeReadModel{inquiries: map[string]*domain.Inquiry{"inq-1": seedInquiry(domain.InquiryStatusReviewed)}}
	it := NewInteractor(store, rm, zerolog.Nop())

	next, err := it.Execute(context.Background(), "inq-1")
	require.NoError(t, err)
	assert.Equal(t, domain.InquiryStatusPending, next)
}

// TestExecute_NotFound verifies toggling an unknown inquiry fails before any
// store interaction.
func TestExecute_NotFound(t *testing.T) {
	store := &fakeStore{}
	it := NewInteractor(store, &fakeReadModel{}, zerolog.Nop())

	_, err := it.Execute(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrInquiryNotFound)
	assert.Empty(t, store.mergedID)
}

// TestExecute_MergeFailure verifies a store failure surfaces with the wrapped
// cause and the in-memory inquiry is left untouched.
func TestExecute_MergeFailure(t *testing.T) {
	store := &fakeStore{mergeErr: errors.New("unavailable")}
	inq := seedInquiry(domain.InquiryStatusPending)
	rm := &fakeReadModel{inquiries: map[string]*domain.Inquiry{"inq-1": inq}}
	it := NewInteractor(store, rm, zerolog.Nop())

	_, err := it.Execute(context.Background(), "inq-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "toggle inquiry inq-1")
	assert.Equal(t, domain.InquiryStatusPending, inq.Status())
}
