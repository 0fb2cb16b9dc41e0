package publish_product

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/taskflow/catalog-backoffice/internal/app/catalog/contracts"
	"github.com/taskflow/catalog-backoffice/internal/app/catalog/domain"
	"github.com/taskflow/catalog-backoffice/internal/models/m_product"
	"github.com/taskflow/catalog-backoffice/internal/pkg/clock"
)

// State is the publish pipeline's position. The pipeline walks
// Idle → UploadingMain → UploadingGallery (optional) → WritingRecord →
// Published; Failed is terminal and reachable from any upload/write state.
type State int

const (
	StateIdle State = iota
	StateUploadingMain
	StateUploadingGallery
	StateWritingRecord
	StatePublished
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateUploadingMain:
		return "uploading_main"
	case StateUploadingGallery:
		return "uploading_gallery"
	case StateWritingRecord:
		return "writing_record"
	case StatePublished:
		return "published"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// BlockInput is one operator-authored specification section of the request.
type BlockInput struct {
	Label string
	Value string
}

// Request carries everything the operator entered on the add-product form.
// MainImage is required; GalleryImage is optional.
type Request struct {
	Name         string
	SKU          string
	RegularPrice float64
	SalePrice    float64
	Blocks       []BlockInput
	MainImage    *contracts.Asset
	GalleryImage *contracts.Asset
	Website      string
	Categories   []string
	Brands       []string
}

// Result reports where the pipeline ended and, on success, the new record id.
type Result struct {
	ProductID string
	State     State
}

// Interactor runs the publish pipeline. Each upload is a blocking step; a
// record is only ever created after all asset uploads succeeded, so no
// catalog record can reference an unresolved image. Failures surface the
// collaborator's message and are never retried automatically.
type Interactor struct {
	Store    contracts.DocumentStore
	Uploader contracts.AssetUploader
	Registry *domain.Registry
	Clock    clock.Clock
	Log      zerolog.Logger

	// OnTransition, when set, observes every state change in order.
	OnTransition func(State)
}

func NewInteractor(store contracts.DocumentStore, uploader contracts.AssetUploader, reg *domain.Registry, clk clock.Clock, log zerolog.Logger) *Interactor {
	return &Interactor{
		Store:    store,
		Uploader: uploader,
		Registry: reg,
		Clock:    clk,
		Log:      log.With().Str("component", "publish_product").Logger(),
	}
}

func (it *Interactor) Execute(ctx context.Context, req Request) (Result, error) {
	// Preconditions enforced before leaving Idle: violations are validation
	// errors, no upload is attempted and no state transition happens.
	if strings.TrimSpace(req.Name) == "" {
		return Result{State: StateIdle}, domain.ErrEmptyProductName
	}
	if req.MainImage == nil {
		return Result{State: StateIdle}, domain.ErrMissingMainImage
	}
	if !it.Registry.IsRegistered(req.Website) {
		return Result{State: StateIdle}, domain.ErrUnknownWebsite
	}
	if !it.Registry.IsValidSelection(req.Website, req.Categories, req.Brands) {
		return Result{State: StateIdle}, domain.ErrInvalidClassification
	}

	state := StateIdle

	fail := func(err error) (Result, error) {
		state = it.transition(StateFailed)
		return Result{State: state}, err
	}

	state = it.transition(StateUploadingMain)
	mainURL, err := it.Uploader.Upload(ctx, *req.MainImage)
	if err != nil {
		return fail(fmt.Errorf("upload main image: %w", err))
	}

	galleryURL := ""
	if req.GalleryImage != nil {
		state = it.transition(StateUploadingGallery)
		galleryURL, err = it.Uploader.Upload(ctx, *req.GalleryImage)
		if err != nil {
			return fail(fmt.Errorf("upload gallery image: %w", err))
		}
	}

	state = it.transition(StateWritingRecord)

	blocks := make([]domain.SpecBlock, 0, len(req.Blocks))
	for _, b := range req.Blocks {
		blocks = append(blocks, domain.SpecBlock{ID: uuid.NewString(), Label: b.Label, Value: b.Value})
	}
	if len(blocks) == 0 {
		blocks = []domain.SpecBlock{domain.DefaultSpecBlock(uuid.NewString())}
	}

	product, err := domain.NewProduct(
		"", req.Name, req.SKU,
		req.RegularPrice, req.SalePrice,
		blocks,
		mainURL, galleryURL,
		req.Website, req.Categories, req.Brands,
		it.Registry,
		it.Clock.Now(),
	)
	if err != nil {
		return fail(err)
	}

	id, err := it.Store.Create(ctx, contracts.ProductsCollection, m_product.BuildCreateMap(product))
	if err != nil {
		return fail(fmt.Errorf("write product record: %w", err))
	}

	state = it.transition(StatePublished)
	it.Log.Info().Str("product_id", id).Str("website", req.Website).Msg("product published")
	return Result{ProductID: id, State: state}, nil
}

func (it *Interactor) transition(s State) State {
	if it.OnTransition != nil {
		it.OnTransition(s)
	}
	it.Log.Debug().Stringer("state", s).Msg("publish state")
	return s
}
