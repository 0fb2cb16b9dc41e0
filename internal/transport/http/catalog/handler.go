package catalog

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taskflow/catalog-backoffice/internal/app/catalog/contracts"
	"github.com/taskflow/catalog-backoffice/internal/app/catalog/queries/list_inquiries"
	"github.com/taskflow/catalog-backoffice/internal/app/catalog/queries/list_products"
	"github.com/taskflow/catalog-backoffice/internal/app/catalog/search"
	"github.com/taskflow/catalog-backoffice/internal/app/catalog/usecases/delete_inquiry"
	"github.com/taskflow/catalog-backoffice/internal/app/catalog/usecases/delete_product"
	"github.com/taskflow/catalog-backoffice/internal/app/catalog/usecases/publish_product"
	"github.com/taskflow/catalog-backoffice/internal/app/catalog/usecases/toggle_inquiry"
	"github.com/taskflow/catalog-backoffice/internal/app/catalog/usecases/update_product"
)

// Commands groups write interactors.
// Keep the transport layer depending on the application layer only.
type Commands struct {
	Publish       *publish_product.Interactor
	Update        *update_product.Interactor
	DeleteProduct *delete_product.Interactor
	ToggleInquiry *toggle_inquiry.Interactor
	DeleteInquiry *delete_inquiry.Interactor
}

// Queries groups read handlers.
type Queries struct {
	Products  *list_products.Handler
	Inquiries *list_inquiries.Handler
}

// Handler is a thin HTTP transport adapter: it binds requests, maps DTOs and
// delegates to the interactors and query handlers.
type Handler struct {
	commands Commands
	queries  Queries
	log      zerolog.Logger
}

func NewHandler(cmd Commands, qry Queries, log zerolog.Logger) *Handler {
	return &Handler{
		commands: cmd,
		queries:  qry,
		log:      log.With().Str("component", "http").Logger(),
	}
}

// Register wires the catalog routes onto a group, typically /api/v1.
func (h *Handler) Register(g *echo.Group) {
	g.GET("/products", h.ListProducts)
	g.GET("/products/brands", h.ListBrands)
	g.POST("/products", h.PublishProduct)
	g.PATCH("/products/:id", h.UpdateProduct)
	g.DELETE("/products/:id", h.DeleteProduct)

	g.GET("/inquiries", h.ListInquiries)
	g.POST("/inquiries/:id/toggle-status", h.ToggleInquiryStatus)
	g.DELETE("/inquiries/:id", h.DeleteInquiry)
}

func (h *Handler) ListProducts(c echo.Context) error {
	if !h.queries.Products.Ready() {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "product feed not ready")
	}
	products := h.queries.Products.Execute(search.ProductFilter{
		Text:  c.QueryParam("search"),
		Brand: c.QueryParam("brand"),
	})
	return c.JSON(http.StatusOK, mapProducts(products))
}

func (h *Handler) ListBrands(c echo.Context) error {
	if !h.queries.Products.Ready() {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "product feed not ready")
	}
	return c.JSON(http.StatusOK, h.queries.Products.Brands())
}

func (h *Handler) PublishProduct(c echo.Context) error {
	req, err := h.bindPublishRequest(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.commands.Publish.Execute(c.Request().Context(), req)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusCreated, map[string]string{"id": result.ProductID})
}

func (h *Handler) UpdateProduct(c echo.Context) error {
	var body UpdateProductRequest
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	req := mapUpdateRequest(c.Param("id"), body)
	if err := h.commands.Update.Execute(c.Request().Context(), req); err != nil {
		return mapError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) DeleteProduct(c echo.Context) error {
	if err := h.commands.DeleteProduct.Execute(c.Request().Context(), c.Param("id")); err != nil {
		return mapError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListInquiries(c echo.Context) error {
	if !h.queries.Inquiries.Ready() {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "inquiry feed not ready")
	}
	inquiries := h.queries.Inquiries.Execute(search.InquiryFilter{
		Text:    c.QueryParam("search"),
		Website: c.QueryParam("website"),
	})
	return c.JSON(http.StatusOK, mapInquiries(inquiries))
}

func (h *Handler) ToggleInquiryStatus(c echo.Context) error {
	status, err := h.commands.ToggleInquiry.Execute(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": string(status)})
}

func (h *Handler) DeleteInquiry(c echo.Context) error {
	if err := h.commands.DeleteInquiry.Execute(c.Request().Context(), c.Param("id")); err != nil {
		return mapError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// bindPublishRequest reads the multipart publish form: scalar fields, the
// blocks JSON field, repeated categories/brands fields and the image files.
func (h *Handler) bindPublishRequest(c echo.Context) (publish_product.Request, error) {
	req := publish_product.Request{
		Name:         c.FormValue("name"),
		SKU:          c.FormValue("sku"),
		RegularPrice: parsePrice(c.FormValue("regularPrice")),
		SalePrice:    parsePrice(c.FormValue("salePrice")),
		Website:      c.FormValue("website"),
	}

	if form, err := c.MultipartForm(); err == nil {
		req.Categories = form.Value["categories"]
		req.Brands = form.Value["brands"]
	}

	if raw := c.FormValue("blocks"); raw != "" {
		var blocks []BlockInputRequest
		if err := json.Unmarshal([]byte(raw), &blocks); err != nil {
			return req, err
		}
		for _, b := range blocks {
			req.Blocks = append(req.Blocks, publish_product.BlockInput{Label: b.Label, Value: b.Value})
		}
	}

	main, err := readFormFile(c, "mainImage")
	if err != nil {
		return req, err
	}
	req.MainImage = main

	gallery, err := readFormFile(c, "galleryImage")
	if err != nil {
		return req, err
	}
	req.GalleryImage = gallery

	return req, nil
}

// readFormFile returns nil when the field is absent; absence is the publish
// pipeline's validation concern, not a bind error.
func readFormFile(c echo.Context, field string) (*contracts.Asset, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}
	return readMultipartFile(fh)
}

func readMultipartFile(fh *multipart.FileHeader) (*contracts.Asset, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &contracts.Asset{FileName: fh.Filename, Content: content}, nil
}

// parsePrice mirrors the tolerant form handling of the admin UI: anything
// unparsable counts as zero.
func parsePrice(raw string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
