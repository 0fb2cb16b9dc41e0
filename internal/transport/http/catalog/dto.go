package catalog

import (
	"time"

	"github.com/taskflow/catalog-backoffice/internal/app/catalog/domain"
	"github.com/taskflow/catalog-backoffice/internal/app/catalog/usecases/update_product"
)

// BlockResponse is one specification block as returned by the API.
type BlockResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// ProductResponse is the transport shape of one catalog product.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	RegularPrice float64         `json:"regularPrice"`
	SalePrice    float64         `json:"salePrice"`
	Blocks       []BlockResponse `json:"descriptionBlocks"`
	MainImage    string          `json:"mainImage"`
	GalleryImage string          `json:"galleryImage,omitempty"`
	Categories   []string        `json:"categories"`
	Brands       []string        `json:"brands"`
	Website      string          `json:"website"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// CustomerResponse is the transport shape of an inquiry's customer details.
type CustomerResponse struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	StreetAddress string `json:"streetAddress"`
	Apartment     string `json:"apartment,omitempty"`
}

// InquiryItemResponse is one requested item of an inquiry.
type InquiryItemResponse struct {
	Name     string `json:"name"`
	SKU      string `json:"sku"`
	Image    string `json:"image,omitempty"`
	Quantity int    `json:"quantity"`
}

// InquiryResponse is the transport shape of one inquiry.
type InquiryResponse struct {
	ID        string                `json:"id"`
	Customer  CustomerResponse      `json:"customerDetails"`
	Items     []InquiryItemResponse `json:"items"`
	Website   string                `json:"website"`
	Status    string                `json:"status"`
	CreatedAt time.Time             `json:"createdAt"`
}

// BlockEditRequest addresses one existing block by id; nil fields are
// untouched.
type BlockEditRequest struct {
	ID    string  `json:"id"`
	Label *string `json:"label"`
	Value *string `json:"value"`
}

// UpdateProductRequest is the partial-update body of PATCH /products/:id.
type UpdateProductRequest struct {
	Name         *string            `json:"name"`
	SKU          *string            `json:"sku"`
	RegularPrice *float64           `json:"regularPrice"`
	SalePrice    *float64           `json:"salePrice"`
	MainImage    *string            `json:"mainImage"`
	GalleryImage *string            `json:"galleryImage"`
	Website      *string            `json:"website"`
	Categories   *[]string          `json:"categories"`
	Brands       *[]string          `json:"brands"`
	BlockEdits   []BlockEditRequest `json:"blockEdits"`
	AppendBlocks []string           `json:"appendBlocks"`
	RemoveBlocks []string           `json:"removeBlocks"`
}

// BlockInputRequest is one authored block of the publish form's blocks field.
type BlockInputRequest struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

func mapProduct(p *domain.Product) ProductResponse {
	blocks := p.Blocks()
	respBlocks := make([]BlockResponse, 0, len(blocks))
	for _, b := range blocks {
		respBlocks = append(respBlocks, BlockResponse{ID: b.ID, Label: b.Label, Value: b.Value})
	}
	return ProductResponse{
		ID:           p.ID(),
		Name:         p.Name(),
		SKU:          p.SKU(),
		RegularPrice: p.RegularPrice(),
		SalePrice:    p.SalePrice(),
		Blocks:       respBlocks,
		MainImage:    p.MainImage(),
		GalleryImage: p.GalleryImage(),
		Categories:   p.Categories(),
		Brands:       p.Brands(),
		Website:      p.Website(),
		CreatedAt:    p.CreatedAt(),
	}
}

func mapProducts(products []*domain.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, mapProduct(p))
	}
	return out
}

func mapInquiry(inq *domain.Inquiry) InquiryResponse {
	items := inq.Items()
	respItems := make([]InquiryItemResponse, 0, len(items))
	for _, item := range items {
		respItems = append(respItems, InquiryItemResponse{
			Name:     item.Name,
			SKU:      item.SKU,
			Image:    item.Image,
			Quantity: item.Quantity,
		})
	}
	c := inq.Customer()
	return InquiryResponse{
		ID: inq.ID(),
		Customer: CustomerResponse{
			FirstName:     c.FirstName,
			LastName:      c.LastName,
			Email:         c.Email,
			Phone:         c.Phone,
			StreetAddress: c.StreetAddress,
			Apartment:     c.Apartment,
		},
		Items:     respItems,
		Website:   inq.Website(),
		Status:    string(inq.Status()),
		CreatedAt: inq.CreatedAt(),
	}
}

func mapInquiries(inquiries []*domain.Inquiry) []InquiryResponse {
	out := make([]InquiryResponse, 0, len(inquiries))
	for _, inq := range inquiries {
		out = append(out, mapInquiry(inq))
	}
	return out
}

func mapUpdateRequest(productID string, req UpdateProductRequest) update_product.Request {
	edits := make([]update_product.BlockEdit, 0, len(req.BlockEdits))
	for _, e := range req.BlockEdits {
		edits = append(edits, update_product.BlockEdit{ID: e.ID, Label: e.Label, Value: e.Value})
	}
	return update_product.Request{
		ProductID:    productID,
		Name:         req.Name,
		SKU:          req.SKU,
		RegularPrice: req.RegularPrice,
		SalePrice:    req.SalePrice,
		MainImage:    req.MainImage,
		GalleryImage: req.GalleryImage,
		Website:      req.Website,
		Categories:   req.Categories,
		Brands:       req.Brands,
		BlockEdits:   edits,
		AppendBlocks: req.AppendBlocks,
		RemoveBlocks: req.RemoveBlocks,
	}
}
