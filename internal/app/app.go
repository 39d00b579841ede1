package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/niksmo/storefront/config"
	"github.com/niksmo/storefront/internal/adapter"
	"github.com/niksmo/storefront/internal/adapter/httphandler"
	"github.com/niksmo/storefront/internal/adapter/kafka"
	"github.com/niksmo/storefront/internal/adapter/storage"
	"github.com/niksmo/storefront/internal/core/i18n"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/niksmo/storefront/pkg/schema"
	"github.com/twmb/franz-go/pkg/sr"
	"golang.org/x/sync/errgroup"
)

type outbound struct {
	catalog     *storage.Catalog
	sqlDB       *storage.SQLDB
	preferences port.PreferenceStore
	activity    *kafka.ActivityProducer
}

type App struct {
	ctx        context.Context
	cfg        config.Config
	outbound   outbound
	languages  *service.LanguageStore
	service    service.Service
	httpServer httphandler.HTTPServer

	unsubscribe func()
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initOutboundAdapters()
	app.initCoreService()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initOutboundAdapters() {
	const op = "App.initOutboundAdapters"

	catalog, err := storage.LoadCatalog(app.cfg.Site.CatalogFile)
	if err != nil {
		app.fallDown(op, err)
	}
	app.outbound.catalog = catalog

	app.initPreferences()
	app.initActivityProducer()
}

func (app *App) initPreferences() {
	const op = "App.initPreferences"

	if app.cfg.SQLDB == "" {
		slog.Info("preferences are kept in memory", "op", op)
		app.outbound.preferences = storage.NewMemoryPreferences()
		return
	}

	sqlDB, err := storage.NewSQLDB(app.ctx, app.cfg.SQLDB)
	if err != nil {
		app.fallDown(op, err)
	}
	app.outbound.sqlDB = &sqlDB
	app.outbound.preferences = storage.NewSQLPreferences(sqlDB)
}

func (app *App) initActivityProducer() {
	const op = "App.initActivityProducer"
	log := slog.With("op", op)

	brokerCfg := app.cfg.Broker
	if !brokerCfg.Enabled() {
		log.Info("no seed brokers, activity stream is disabled")
		return
	}

	tlsCfg, err := adapter.MakeTLSConfig(
		brokerCfg.TLS.CA, brokerCfg.TLS.Cert, brokerCfg.TLS.Key,
	)
	if err != nil {
		app.fallDown(op, err)
	}

	srOpts := []sr.ClientOpt{sr.URLs(brokerCfg.SchemaRegistryURLs...)}
	if tlsCfg != nil {
		srOpts = append(srOpts, sr.DialTLSConfig(tlsCfg))
	}
	srClient, err := sr.NewClient(srOpts...)
	if err != nil {
		app.fallDown(op, err)
	}

	serde, err := schema.NewSerdeActivityEventV1(
		app.ctx,
		schema.SubjectOpt(brokerCfg.ActivityTopic+"-value"),
		schema.SchemaIdentifierOpt(schema.NewRegistryIdentifier(srClient)),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	producer, err := kafka.NewActivityProducer(
		kafka.ProducerClientOpt(
			app.ctx, brokerCfg.SeedBrokers, brokerCfg.ActivityTopic, tlsCfg,
		),
		kafka.ProducerEncoderOpt(serde),
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.outbound.activity = &producer
	log.Info("activity stream is enabled", "topic", brokerCfg.ActivityTopic)
}

func (app *App) initCoreService() {
	const op = "App.initCoreService"

	translator, err := i18n.Default()
	if err != nil {
		app.fallDown(op, err)
	}

	languages, err := service.NewLanguageStore(
		app.ctx, app.outbound.preferences, app.cfg.Site.DefaultLanguage,
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.languages = languages
	app.unsubscribe = languages.Subscribe(func(p i18n.Presentation) {
		slog.Info("language switched", "lang", p.Lang, "dir", p.Dir)
	})

	whatsApp, err := service.NewWhatsApp(app.cfg.Site.WhatsAppPhone)
	if err != nil {
		app.fallDown(op, err)
	}

	var activity port.ActivityPublisher
	if app.outbound.activity != nil {
		activity = app.outbound.activity
	}

	app.service = service.New(
		app.outbound.catalog, translator, languages, whatsApp, activity,
	)
}

func (app *App) initInboundAdapters() {
	mux := http.NewServeMux()
	httphandler.Register(mux, app.service)
	app.httpServer = httphandler.NewHTTPServer(app.cfg.HTTPServerAddr, mux)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running", "site", app.cfg.Site.Name)
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	app.unsubscribe()

	// outbound adapters are independent once no request is in flight
	var g errgroup.Group
	if app.outbound.activity != nil {
		g.Go(func() error {
			app.outbound.activity.Close(ctx)
			return nil
		})
	}
	if app.outbound.sqlDB != nil {
		g.Go(func() error {
			app.outbound.sqlDB.Close()
			return nil
		})
	}
	_ = g.Wait()

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
