package application

import (
	"context"
	"time"

	"github.com/DanielPopoola/campaign-loader/internal/domain"
	"github.com/DanielPopoola/campaign-loader/internal/infrastructure/marketing"
)

// RateLimiter gates every outbound campaign call.
type RateLimiter interface {
	Wait(ctx context.Context) error
	TriggerLockout()
}

// CredentialProvider hands out access tokens for the campaign API.
type CredentialProvider interface {
	Token(ctx context.Context) (string, error)
	Invalidate()
}

// CampaignClient is the port for the external marketing API.
type CampaignClient interface {
	Subscribe(ctx context.Context, accessToken string, contact domain.Contact) (*marketing.SubscribeResponse, error)
}

// SaleRepository reads unprocessed sales and stamps offer codes onto them.
type SaleRepository interface {
	FindPendingSales(ctx context.Context, inboundBatch string) ([]domain.PendingSale, error)
	ApplyOfferAssignments(ctx context.Context, assignments []domain.OfferAssignment) (int64, error)
	CountBatchInvoices(ctx context.Context, batchID domain.BatchID) (int64, error)
}

type OfferCodeRepository interface {
	ExistingOfferCodes(ctx context.Context, codes []string) (map[string]struct{}, error)
}

// ContactRepository feeds the import loop and records its successes.
type ContactRepository interface {
	FindBatchContacts(ctx context.Context, batchID domain.BatchID) ([]domain.Contact, error)
	MarkCampaignLoaded(ctx context.Context, codes []string, loadDate time.Time) (int64, error)
}
