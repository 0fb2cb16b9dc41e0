package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/taskflow/catalog-backoffice/config"
	"github.com/taskflow/catalog-backoffice/internal/adapters/cloudinary"
	"github.com/taskflow/catalog-backoffice/internal/adapters/firestoredb"
	"github.com/taskflow/catalog-backoffice/internal/app/catalog/contracts"
	"github.com/taskflow/catalog-backoffice/internal/app/catalog/domain"
	"github.com/taskflow/catalog-backoffice/internal/app/catalog/feed"
	"github.com/taskflow/catalog-backoffice/internal/app/catalog/queries/list_inquiries"
	"github.com/taskflow/catalog-backoffice/internal/app/catalog/queries/list_products"
	"github.com/taskflow/catalog-backoffice/internal/app/catalog/usecases/delete_inquiry"
	"github.com/taskflow/catalog-backoffice/internal/app/catalog/usecases/delete_product"
	"github.com/taskflow/catalog-backoffice/internal/app/catalog/usecases/publish_product"
	"github.com/taskflow/catalog-backoffice/internal/app/catalog/usecases/toggle_inquiry"
	"github.com/taskflow/catalog-backoffice/internal/app/catalog/usecases/update_product"
	"github.com/taskflow/catalog-backoffice/internal/models/m_inquiry"
	"github.com/taskflow/catalog-backoffice/internal/models/m_product"
	"github.com/taskflow/catalog-backoffice/internal/pkg/clock"
	"github.com/taskflow/catalog-backoffice/internal/pkg/logger"
	transport "github.com/taskflow/catalog-backoffice/internal/transport/http/catalog"
)

func main() {
	conf := config.Load(os.Args[1:])
	log := logger.New(conf.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		log.Info().Msg("shutdown signal received")
		cancel()
	}()

	client, err := firestoredb.NewClient(ctx, conf.FirestoreConfig.ProjectID, conf.FirestoreConfig.CredentialsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("firestore client")
	}
	defer client.Close()

	store := firestoredb.New(client, log)

	uploader, err := cloudinary.New(
		conf.CloudinaryConfig.CloudName,
		conf.CloudinaryConfig.APIKey,
		conf.CloudinaryConfig.APISecret,
		conf.CloudinaryConfig.UploadPreset,
		log,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("cloudinary client")
	}

	registry := domain.DefaultRegistry()
	clk := clock.RealClock{}

	productSync := feed.New(store, contracts.ProductsCollection, m_product.ColCreatedAt, contracts.Descending, m_product.Decode, log)
	inquirySync := feed.New(store, contracts.InquiriesCollection, m_inquiry.ColCreatedAt, contracts.Descending, m_inquiry.Decode, log)

	if err := productSync.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("product feed subscribe")
	}
	if err := inquirySync.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("inquiry feed subscribe")
	}

	products := feed.ProductFeed{Synchronizer: productSync}
	inquiries := feed.InquiryFeed{Synchronizer: inquirySync}

	cmds := transport.Commands{
		Publish:       publish_product.NewInteractor(store, uploader, registry, clk, log),
		Update:        update_product.NewInteractor(store, products, registry, log),
		DeleteProduct: delete_product.NewInteractor(store, products, log),
		ToggleInquiry: toggle_inquiry.NewInteractor(store, inquiries, log),
		DeleteInquiry: delete_inquiry.NewInteractor(store, inquiries, log),
	}
	qrys := transport.Queries{
		Products:  list_products.NewHandler(products),
		Inquiries: list_inquiries.NewHandler(inquiries),
	}
	h := transport.NewHandler(cmds, qrys, log)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	h.Register(e.Group("/api/v1"))

	go func() {
		log.Info().Str("addr", conf.HTTPAddr).Msg("http server listening")
		if err := e.Start(conf.HTTPAddr); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("http serve")
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}

	productSync.Stop()
	inquirySync.Stop()
	log.Info().Msg("server stopped")
}
