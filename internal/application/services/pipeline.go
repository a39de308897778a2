package services

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/DanielPopoola/campaign-loader/internal/application"
	"github.com/DanielPopoola/campaign-loader/internal/domain"
	"github.com/google/uuid"
)

// PipelineConfig selects the rows a run picks up and how their offer URLs are built.
type PipelineConfig struct {
	InboundBatch string
	URLPolicy    domain.OfferURLPolicy
}

// PipelineResult describes one run. Import is nil when the run stopped before the
// contact import.
type PipelineResult struct {
	RunID            string
	BatchID          domain.BatchID
	PendingSales     int
	Invoices         int
	Assignments      int
	UpdatedRows      int64
	VerifiedInvoices int64
	Import           *ImportReport
}

type PipelineOption func(*PipelineService)

func WithPipelineClock(now func() time.Time) PipelineOption {
	return func(s *PipelineService) { s.now = now }
}

func WithPipelineRand(rng *rand.Rand) PipelineOption {
	return func(s *PipelineService) { s.rng = rng }
}

// PipelineService takes unprocessed sales through offer code assignment and into the
// campaign.
type PipelineService struct {
	sales    application.SaleRepository
	codes    *OfferCodeService
	importer *ImportService
	cfg      PipelineConfig
	logger   *slog.Logger

	now func() time.Time
	rng *rand.Rand
}

func NewPipelineService(
	sales application.SaleRepository,
	codes *OfferCodeService,
	importer *ImportService,
	cfg PipelineConfig,
	logger *slog.Logger,
	opts ...PipelineOption,
) *PipelineService {
	s := &PipelineService{
		sales:    sales,
		codes:    codes,
		importer: importer,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run processes every pending sale. A run with nothing pending returns a result without
// a batch id. Datastore failures abort the run.
func (s *PipelineService) Run(ctx context.Context) (*PipelineResult, error) {
	result := &PipelineResult{RunID: uuid.NewString()}
	logger := s.logger.With("run_id", result.RunID)

	logger.Info("fetching records to process", "inbound_batch", s.cfg.InboundBatch)
	sales, err := s.sales.FindPendingSales(ctx, s.cfg.InboundBatch)
	if err != nil {
		logger.Error("failed to fetch pending sales", "error", err)
		return result, application.NewFetchError("pending sales", err)
	}
	result.PendingSales = len(sales)

	if len(sales) == 0 {
		logger.Warn("no records found to process")
		return result, nil
	}

	result.BatchID = domain.NewBatchID(s.now(), s.rng)
	logger = logger.With("batch_id", result.BatchID.String())
	logger.Info("processing records", "count", len(sales))

	invoices := domain.UniqueInvoices(sales)
	result.Invoices = len(invoices)

	codes, err := s.codes.Generate(ctx, len(invoices))
	if err != nil {
		return result, err
	}
	if len(codes) != len(invoices) {
		return result, application.NewInternalError(
			fmt.Errorf("generated %d offer codes for %d invoices", len(codes), len(invoices)))
	}

	byInvoice := make(map[string]string, len(invoices))
	for i, invoice := range invoices {
		byInvoice[invoice] = codes[i]
	}

	assignments := domain.BuildAssignments(sales, byInvoice, result.BatchID, s.cfg.URLPolicy)
	result.Assignments = len(assignments)
	if len(assignments) == 0 {
		logger.Warn("no valid rows to update after dropping blank invoice or dealer ids")
		return result, nil
	}

	logger.Info("loading offer assignments", "count", len(assignments))
	updated, err := s.sales.ApplyOfferAssignments(ctx, assignments)
	if err != nil {
		logger.Error("failed to apply offer assignments", "error", err)
		return result, application.NewPersistError("offer assignments", err)
	}
	result.UpdatedRows = updated
	logger.Info("committed offer assignments", "rows_affected", updated)

	verified, err := s.sales.CountBatchInvoices(ctx, result.BatchID)
	if err != nil {
		logger.Warn("verification query failed", "error", err)
	} else {
		result.VerifiedInvoices = verified
		logger.Info("db verification", "unique_invoices", verified)
	}

	report, err := s.importer.Import(ctx, result.BatchID)
	result.Import = report
	if err != nil {
		return result, err
	}

	return result, nil
}
