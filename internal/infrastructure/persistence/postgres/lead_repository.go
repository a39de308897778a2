package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/DanielPopoola/campaign-loader/internal/domain"
	"github.com/jackc/pgx/v5"
)

const stagingTable = "offer_assignment_staging"

// LeadRepository reads and updates mpos_post_sale_marketing.
type LeadRepository struct {
	q Executor
}

func NewLeadRepository(db *DB) *LeadRepository {
	return &LeadRepository{q: db.Pool}
}

// FindPendingSales returns rows flagged for processing, optionally restricted to one
// inbound batch.
func (r *LeadRepository) FindPendingSales(ctx context.Context, inboundBatch string) ([]domain.PendingSale, error) {
	query := `
		SELECT id, invoice_number, dealer_id, landing_page_offer_code
		FROM mpos_post_sale_marketing
		WHERE needs_python_proccess = '1'
		  AND ($1::text = '' OR inbound_batch_id = $1::text)
		ORDER BY id
	`

	rows, err := r.q.Query(ctx, query, inboundBatch)
	if err != nil {
		return nil, fmt.Errorf("query pending sales: %w", err)
	}

	sales, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PendingSale, error) {
		var m pendingSaleModel
		err := row.Scan(&m.ID, &m.InvoiceNumber, &m.DealerID, &m.OfferCode)
		return toPendingSale(m), err
	})
	if err != nil {
		return nil, fmt.Errorf("scan pending sales: %w", err)
	}

	return sales, nil
}

// ExistingOfferCodes returns the subset of codes already stored.
func (r *LeadRepository) ExistingOfferCodes(ctx context.Context, codes []string) (map[string]struct{}, error) {
	existing := make(map[string]struct{})
	if len(codes) == 0 {
		return existing, nil
	}

	query := `
		SELECT DISTINCT landing_page_offer_code
		FROM mpos_post_sale_marketing
		WHERE landing_page_offer_code = ANY($1)
	`

	rows, err := r.q.Query(ctx, query, codes)
	if err != nil {
		return nil, fmt.Errorf("query existing offer codes: %w", err)
	}

	found, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan existing offer codes: %w", err)
	}

	for _, code := range found {
		existing[code] = struct{}{}
	}
	return existing, nil
}

// ApplyOfferAssignments stages assignments with COPY and applies them in a single
// UPDATE ... FROM keyed on (invoice_number, dealer_id). It returns the number of
// sales rows updated.
func (r *LeadRepository) ApplyOfferAssignments(ctx context.Context, assignments []domain.OfferAssignment) (int64, error) {
	if len(assignments) == 0 {
		return 0, nil
	}

	var affected int64
	err := withTransaction(ctx, r.q, func(tx pgx.Tx) error {
		createStaging := `
			CREATE TEMP TABLE ` + stagingTable + ` (
				invoice_number          TEXT NOT NULL,
				dealer_id               TEXT NOT NULL,
				landing_page_offer_code TEXT NOT NULL,
				offer_code_url          TEXT NOT NULL,
				batch_id                TEXT NOT NULL
			) ON COMMIT DROP
		`
		if _, err := tx.Exec(ctx, createStaging); err != nil {
			return fmt.Errorf("create staging table: %w", err)
		}

		columns := []string{"invoice_number", "dealer_id", "landing_page_offer_code", "offer_code_url", "batch_id"}
		copied, err := tx.CopyFrom(ctx, pgx.Identifier{stagingTable}, columns,
			pgx.CopyFromSlice(len(assignments), func(i int) ([]any, error) {
				a := assignments[i]
				return []any{a.InvoiceNumber, a.DealerID, a.OfferCode, a.OfferCodeURL, a.BatchID.String()}, nil
			}),
		)
		if err != nil {
			return fmt.Errorf("copy offer assignments: %w", err)
		}
		if copied != int64(len(assignments)) {
			return fmt.Errorf("copy offer assignments: staged %d of %d rows", copied, len(assignments))
		}

		update := `
			UPDATE mpos_post_sale_marketing AS main
			SET
				activity_plan_purchased_date = NULL,
				landing_page_offer_code = s.landing_page_offer_code,
				batch_id = s.batch_id,
				offer_code_url = s.offer_code_url,
				needs_python_proccess = '0'
			FROM ` + stagingTable + ` AS s
			WHERE main.invoice_number = s.invoice_number
			  AND main.dealer_id = s.dealer_id
		`
		tag, err := tx.Exec(ctx, update)
		if err != nil {
			return fmt.Errorf("apply offer assignments: %w", err)
		}
		affected = tag.RowsAffected()

		return nil
	})
	if err != nil {
		return 0, err
	}

	return affected, nil
}

// CountBatchInvoices counts distinct invoices stamped with batchID.
func (r *LeadRepository) CountBatchInvoices(ctx context.Context, batchID domain.BatchID) (int64, error) {
	query := `
		SELECT COUNT(DISTINCT invoice_number)
		FROM mpos_post_sale_marketing
		WHERE batch_id = $1
	`

	var count int64
	if err := r.q.QueryRow(ctx, query, batchID.String()).Scan(&count); err != nil {
		return 0, fmt.Errorf("count batch invoices: %w", err)
	}
	return count, nil
}

// FindBatchContacts returns one contact per offer code in the batch, skipping rows
// without an email address.
func (r *LeadRepository) FindBatchContacts(ctx context.Context, batchID domain.BatchID) ([]domain.Contact, error) {
	query := `
		SELECT DISTINCT ON (landing_page_offer_code)
		       customer_email, customer_first_name, customer_last_name,
		       offer_code_url, landing_page_offer_code, campaign_start_date,
		       manufacturer, department, campaign_duration
		FROM mpos_post_sale_marketing
		WHERE batch_id = $1
		  AND customer_email IS NOT NULL AND customer_email <> ''
		ORDER BY landing_page_offer_code, id
	`

	rows, err := r.q.Query(ctx, query, batchID.String())
	if err != nil {
		return nil, fmt.Errorf("query batch contacts: %w", err)
	}

	contacts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Contact, error) {
		var m contactModel
		err := row.Scan(
			&m.Email, &m.FirstName, &m.LastName,
			&m.OfferCodeURL, &m.OfferCode, &m.CampaignStartDate,
			&m.Manufacturer, &m.Department, &m.CampaignDuration,
		)
		return toContact(m), err
	})
	if err != nil {
		return nil, fmt.Errorf("scan batch contacts: %w", err)
	}

	return contacts, nil
}

// MarkCampaignLoaded stamps the load date on every row carrying one of codes.
func (r *LeadRepository) MarkCampaignLoaded(ctx context.Context, codes []string, loadDate time.Time) (int64, error) {
	if len(codes) == 0 {
		return 0, nil
	}

	query := `
		UPDATE mpos_post_sale_marketing
		SET activity_zoho_campaign_load = $1
		WHERE landing_page_offer_code = ANY($2)
	`

	day := time.Date(loadDate.Year(), loadDate.Month(), loadDate.Day(), 0, 0, 0, 0, time.UTC)

	var affected int64
	err := withTransaction(ctx, r.q, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, query, day, codes)
		if err != nil {
			return fmt.Errorf("mark campaign loaded: %w", err)
		}
		affected = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, err
	}

	return affected, nil
}
