package m_inquiry

import (
	"fmt"
	"time"

	"github.com/taskflow/catalog-backoffice/internal/app/catalog/contracts"
	"github.com/taskflow/catalog-backoffice/internal/app/catalog/domain"
)

// BuildStatusMap prepares the merge applied by the status toggle. Status is
// the only mutable inquiry field, so the merge never touches anything else.
func BuildStatusMap(status domain.InquiryStatus) map[string]interface{} {
	return map[string]interface{}{
		ColStatus: string(status),
	}
}

// Decode rebuilds an Inquiry from a stored document. Decoding is tolerant of
// absent optional fields; unknown statuses normalize to pending.
func Decode(doc contracts.Document) (*domain.Inquiry, error) {
	if doc.Data == nil {
		return nil, fmt.Errorf("inquiry %s: empty document", doc.ID)
	}
	m := doc.Data
	return domain.ReconstructInquiry(
		doc.ID,
		decodeCustomer(m[ColCustomerDetails]),
		decodeItems(m[ColItems]),
		asString(m[ColWebsite]),
		domain.InquiryStatus(asString(m[ColStatus])),
		asTime(m[ColCreatedAt]),
	), nil
}

func decodeCustomer(v interface{}) domain.CustomerDetails {
	raw, ok := v.(map[string]interface{})
	if !ok {
		return domain.CustomerDetails{}
	}
	return domain.CustomerDetails{
		FirstName:     asString(raw[CustColFirstName]),
		LastName:      asString(raw[CustColLastName]),
		Email:         asString(raw[CustColEmail]),
		Phone:         asString(raw[CustColPhone]),
		StreetAddress: asString(raw[CustColStreetAddress]),
		Apartment:     asString(raw[CustColApartment]),
	}
}

func decodeItems(v interface{}) []domain.InquiryItem {
	list, ok := v.([]interface{})
	if !ok {
		return nil
	}
	items := make([]domain.InquiryItem, 0, len(list))
	for _, item := range list {
		raw, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		items = append(items, domain.InquiryItem{
			Name:     asString(raw[ItemColName]),
			SKU:      asString(raw[ItemColSKU]),
			Image:    asString(raw[ItemColImage]),
			Quantity: asInt(raw[ItemColQuantity]),
		})
	}
	return items
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asInt(v interface{}) int {
	switch n := v.(type) {
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}

func asTime(v interface{}) time.Time {
	t, _ := v.(time.Time)
	return t
}
