package m_inquiry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskflow/catalog-backoffice/internal/app/catalog/contracts"
	"github.com/taskflow/catalog-backoffice/internal/app/catalog/domain"
)

// TestDecode_FullDocument verifies a well-formed inquiry document decodes with
// customer, items and status intact.
func TestDecode_FullDocument(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	doc := contracts.Document{
		ID: "inq-1",
		Data: map[string]interface{}{
			ColCustomerDetails: map[string]interface{}{
				CustColFirstName: "Alex",
				CustColLastName:  "Reyes",
				CustColEmail:     "alex@example.com",
			},
			ColItems: []interface{}{
				map[string]interface{}{
					ItemColName:     "LED Strip 5m",
					ItemColSKU:      "SKU-001",
					ItemColQuantity: int64(3),
				},
				map[string]interface{}{
					ItemColName:     "Wall Lamp",
					ItemColQuantity: 2.0,
				},
			},
			ColWebsite:   "Ecoshift",
			ColStatus:    "reviewed",
			ColCreatedAt: created,
		},
	}

	inq, err := Decode(doc)
	require.NoError(t, err)

	assert.Equal(t, "inq-1", inq.ID())
	assert.Equal(t, "Alex Reyes", inq.Customer().FullName())
	assert.Equal(t, domain.InquiryStatusReviewed, inq.Status())
	assert.Equal(t, created, inq.CreatedAt())

	items := inq.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 2, items[1].Quantity)
}

// TestDecode_SparseDocument verifies absent fields decode to zero values and
// the status normalizes to pending.
func TestDecode_SparseDocument(t *testing.T) {
	inq, err := Decode(contracts.Document{ID: "legacy", Data: map[string]interface{}{}})
	require.NoError(t, err)

	assert.Equal(t, domain.InquiryStatusPending, inq.Status())
	assert.Empty(t, inq.Items())
	assert.Empty(t, inq.Customer().Email)
}

// TestDecode_EmptyDocument verifies a document with no data is rejected.
func TestDecode_EmptyDocument(t *testing.T) {
	_, err := Decode(contracts.Document{ID: "broken"})
	require.Error(t, err)
}

// TestBuildStatusMap verifies the toggle merge contains the status field only.
func TestBuildStatusMap(t *testing.T) {
	data := BuildStatusMap(domain.InquiryStatusReviewed)
	assert.Equal(t, map[string]interface{}{ColStatus: "reviewed"}, data)
}
