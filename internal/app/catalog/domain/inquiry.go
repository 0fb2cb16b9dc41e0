package domain

import "time"

// InquiryStatus is the two-state review lifecycle of a customer inquiry.
type InquiryStatus string

const (
	// InquiryStatusPending indicates an inquiry no operator has looked at yet.
	InquiryStatusPending InquiryStatus = "pending"

	// InquiryStatusReviewed indicates an inquiry an operator has handled.
	InquiryStatusReviewed InquiryStatus = "reviewed"
)

// NextStatus returns the other side of the pending/reviewed toggle.
// Anything unrecognized normalizes to pending; no other state is reachable.
func NextStatus(s InquiryStatus) InquiryStatus {
	if s == InquiryStatusPending {
		return InquiryStatusReviewed
	}
	return InquiryStatusPending
}

// CustomerDetails identifies the customer behind an inquiry.
// Phone and Apartment are optional free text.
type CustomerDetails struct {
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	StreetAddress string
	Apartment     string
}

// FullName joins first and last name for display and search.
func (c CustomerDetails) FullName() string {
	return c.FirstName + " " + c.LastName
}

// InquiryItem is one requested catalog item.
type InquiryItem struct {
	Name     string
	SKU      string
	Image    string
	Quantity int
}

// Inquiry is a customer-submitted request for catalog items, raised from one
// of the storefront websites. Status is the only mutable field besides
// deletion.
type Inquiry struct {
	id        string
	customer  CustomerDetails
	items     []InquiryItem
	website   string
	status    InquiryStatus
	createdAt time.Time
}

// ReconstructInquiry rebuilds an Inquiry from a stored document. Unknown or
// absent statuses normalize to pending.
func ReconstructInquiry(id string, customer CustomerDetails, items []InquiryItem, website string, status InquiryStatus, createdAt time.Time) *Inquiry {
	if status != InquiryStatusReviewed {
		status = InquiryStatusPending
	}
	return &Inquiry{
		id:        id,
		customer:  customer,
		items:     append([]InquiryItem(nil), items...),
		website:   website,
		status:    status,
		createdAt: createdAt,
	}
}

func (i *Inquiry) ID() string {
	return i.id
}

func (i *Inquiry) Customer() CustomerDetails {
	return i.customer
}

// Items returns a copy of the ordered requested items.
func (i *Inquiry) Items() []InquiryItem {
	return append([]InquiryItem(nil), i.items...)
}

func (i *Inquiry) Website() string {
	return i.website
}

func (i *Inquiry) Status() InquiryStatus {
	return i.status
}

func (i *Inquiry) CreatedAt() time.Time {
	return i.createdAt
}

// RecordID implements feed ordering identity.
func (i *Inquiry) RecordID() string {
	return i.id
}

// OrderedAt implements the feed order key.
func (i *Inquiry) OrderedAt() time.Time {
	return i.createdAt
}

// ToggleStatus flips pending to reviewed and back.
func (i *Inquiry) ToggleStatus() {
	i.status = NextStatus(i.status)
}
