package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/DanielPopoola/campaign-loader/internal/application"
	"github.com/DanielPopoola/campaign-loader/internal/domain"
)

const defaultSuccessStatus = "success"

// ImportReport summarises one pass over a batch.
type ImportReport struct {
	BatchID             domain.BatchID
	Total               int
	Succeeded           int
	RateLimited         int
	Rejected            int
	Failed              int
	SkippedNoCredential int
	SucceededCodes      []string
	MarkedRows          int64
}

func (r *ImportReport) record(outcome application.Outcome, code string) {
	switch outcome {
	case application.OutcomeSucceeded:
		r.Succeeded++
		r.SucceededCodes = append(r.SucceededCodes, code)
	case application.OutcomeRateLimited:
		r.RateLimited++
	case application.OutcomeRejected:
		r.Rejected++
	case application.OutcomeNoCredential:
		r.SkippedNoCredential++
	default:
		r.Failed++
	}
}

type ImportOption func(*ImportService)

// WithSuccessStatus sets the body status that marks a subscription as accepted.
func WithSuccessStatus(status string) ImportOption {
	return func(s *ImportService) {
		if status != "" {
			s.successStatus = status
		}
	}
}

func WithImportClock(now func() time.Time) ImportOption {
	return func(s *ImportService) { s.now = now }
}

// ImportService pushes the contacts of a batch to the campaign API one at a time and
// records which of them were accepted.
type ImportService struct {
	contacts    application.ContactRepository
	limiter     application.RateLimiter
	credentials application.CredentialProvider
	client      application.CampaignClient
	logger      *slog.Logger

	successStatus string
	now           func() time.Time
}

func NewImportService(
	contacts application.ContactRepository,
	limiter application.RateLimiter,
	credentials application.CredentialProvider,
	client application.CampaignClient,
	logger *slog.Logger,
	opts ...ImportOption,
) *ImportService {
	s := &ImportService{
		contacts:      contacts,
		limiter:       limiter,
		credentials:   credentials,
		client:        client,
		logger:        logger,
		successStatus: defaultSuccessStatus,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Import dispatches every contact of batchID exactly once, then stamps the load date on
// the accepted ones in a single update. Per-contact failures are counted, not returned.
// If ctx is cancelled mid-pass the contacts accepted so far are still recorded before
// the cancellation is returned.
func (s *ImportService) Import(ctx context.Context, batchID domain.BatchID) (*ImportReport, error) {
	if batchID <= 0 {
		return nil, application.NewInvalidInputError(domain.NewInvalidBatchIDError(batchID.String(), nil))
	}

	logger := s.logger.With("batch_id", batchID.String())
	logger.Info("starting contact import")

	contacts, err := s.contacts.FindBatchContacts(ctx, batchID)
	if err != nil {
		logger.Error("failed to fetch contacts", "error", err)
		return nil, application.NewFetchError("batch contacts", err)
	}

	report := &ImportReport{BatchID: batchID, Total: len(contacts)}
	logger.Info("found unique contacts to process", "count", len(contacts))
	if len(contacts) == 0 {
		return report, nil
	}

	var cancelErr error
	for _, contact := range contacts {
		if err := s.limiter.Wait(ctx); err != nil {
			cancelErr = err
			break
		}

		outcome := s.dispatch(ctx, logger, contact)
		report.record(outcome, contact.OfferCode)
	}

	persistCtx := ctx
	if cancelErr != nil {
		logger.Warn("import interrupted, recording contacts accepted so far",
			"processed", report.Succeeded+report.RateLimited+report.Rejected+report.Failed+report.SkippedNoCredential,
			"total", report.Total,
			"error", cancelErr,
		)
		persistCtx = context.WithoutCancel(ctx)
	}

	if err := s.markLoaded(persistCtx, logger, report); err != nil {
		return report, err
	}

	logger.Info("finished contact import",
		"total", report.Total,
		"succeeded", report.Succeeded,
		"rate_limited", report.RateLimited,
		"rejected", report.Rejected,
		"failed", report.Failed,
		"skipped_no_credential", report.SkippedNoCredential,
	)

	return report, cancelErr
}

// dispatch performs the outbound call for one contact and translates the result.
func (s *ImportService) dispatch(ctx context.Context, logger *slog.Logger, contact domain.Contact) application.Outcome {
	logger = logger.With("email", contact.PrimaryEmail(), "offer_code", contact.OfferCode)

	token, err := s.credentials.Token(ctx)
	if err != nil {
		logger.Error("failed to get access token, skipping", "error", err)
		return application.CategorizeError(err)
	}

	resp, err := s.client.Subscribe(ctx, token, contact)
	if err == nil && resp.Status != s.successStatus {
		err = domain.NewCampaignRejectedError(resp.Status, resp.Message)
	}

	outcome := application.CategorizeError(err)
	switch outcome {
	case application.OutcomeSucceeded:
		logger.Info("added contact to campaign")
	case application.OutcomeRateLimited:
		logger.Error("campaign API rate limit hit", "error", err)
		s.limiter.TriggerLockout()
	case application.OutcomeRejected:
		logger.Error("campaign API rejected contact", "error", err)
	default:
		if application.IsUnauthorized(err) {
			s.credentials.Invalidate()
		}
		logger.Error("failed to add contact to campaign", "error", err)
	}

	return outcome
}

func (s *ImportService) markLoaded(ctx context.Context, logger *slog.Logger, report *ImportReport) error {
	if len(report.SucceededCodes) == 0 {
		logger.Warn("no contacts were successfully processed, nothing to update")
		return nil
	}

	logger.Info("updating database for processed contacts", "count", len(report.SucceededCodes))
	rows, err := s.contacts.MarkCampaignLoaded(ctx, report.SucceededCodes, s.now())
	if err != nil {
		logger.Error("failed to perform bulk update", "error", err)
		return application.NewPersistError("campaign load date", err)
	}
	report.MarkedRows = rows

	return nil
}
