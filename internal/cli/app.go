package cli

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/campaign-loader/internal/application/services"
	"github.com/DanielPopoola/campaign-loader/internal/config"
	"github.com/DanielPopoola/campaign-loader/internal/domain"
	"github.com/DanielPopoola/campaign-loader/internal/infrastructure/marketing"
	"github.com/DanielPopoola/campaign-loader/internal/infrastructure/persistence/postgres"
	"github.com/DanielPopoola/campaign-loader/internal/ratelimit"
)

// app holds everything a command needs. It is built once per invocation and passed
// down; nothing is kept in package state.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *postgres.DB
	leads  *postgres.LeadRepository
}

func loadApp(opts *rootOptions) (*app, error) {
	cfg, err := config.LoadConfig(opts.configFile)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		return nil, err
	}
	if opts.logLevel != "" {
		cfg.Logger.Level = opts.logLevel
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	return &app{cfg: cfg, logger: logger}, nil
}

// requireCampaign checks the credentials only the dispatching commands need.
func (a *app) requireCampaign() error {
	if err := a.cfg.OAuth.Validate(); err != nil {
		a.logger.Error("campaign credentials are not configured", "error", err)
		return err
	}
	return nil
}

func (a *app) connect(ctx context.Context) error {
	db, err := postgres.Connect(ctx, &a.cfg.Database, a.logger)
	if err != nil {
		return err
	}
	a.db = db
	a.leads = postgres.NewLeadRepository(db)
	return nil
}

func (a *app) close() {
	if a.db != nil {
		a.db.Close()
	}
}

func (a *app) offerCodeService() *services.OfferCodeService {
	return services.NewOfferCodeService(a.leads, domain.NewCodeGenerator(nil), a.logger)
}

func (a *app) importService() (*services.ImportService, error) {
	limiter, err := ratelimit.New(ratelimit.Config{
		Capacity: a.cfg.RateLimit.Capacity,
		Window:   a.cfg.RateLimit.Window,
		Lockout:  a.cfg.RateLimit.Lockout,
	}, ratelimit.WithLogger(a.logger))
	if err != nil {
		return nil, err
	}

	tokens := marketing.NewTokenCache(a.cfg.OAuth, marketing.WithTokenLogger(a.logger))
	client := marketing.NewClient(a.cfg.Marketing)

	return services.NewImportService(
		a.leads,
		limiter,
		tokens,
		client,
		a.logger,
		services.WithSuccessStatus(a.cfg.Marketing.SuccessCode),
	), nil
}

func (a *app) pipelineService() (*services.PipelineService, error) {
	importer, err := a.importService()
	if err != nil {
		return nil, err
	}

	cfg := services.PipelineConfig{
		InboundBatch: a.cfg.Offer.InboundBatch,
		URLPolicy: domain.OfferURLPolicy{
			BrandURL:      a.cfg.Offer.BrandURL,
			DefaultURL:    a.cfg.Offer.DefaultURL,
			BrandDealerID: a.cfg.Offer.BrandDealerID,
		},
	}

	return services.NewPipelineService(a.leads, a.offerCodeService(), importer, cfg, a.logger), nil
}
