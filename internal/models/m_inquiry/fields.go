package m_inquiry

// Field constants for inquiry documents.
const (
	ColCustomerDetails = "customerDetails"
	ColItems           = "items"
	ColWebsite         = "website"
	ColStatus          = "status"
	ColCreatedAt       = "createdAt"
)

// Subfields of customerDetails.
const (
	CustColFirstName     = "firstName"
	CustColLastName      = "lastName"
	CustColEmail         = "email"
	CustColPhone         = "phone"
	CustColStreetAddress = "streetAddress"
	CustColApartment     = "apartment"
)

// Subfields of one requested item.
const (
	ItemColName     = "name"
	ItemColSKU      = "sku"
	ItemColImage    = "image"
	ItemColQuantity = "quantity"
)
