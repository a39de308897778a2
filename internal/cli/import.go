package cli

import (
	"github.com/DanielPopoola/campaign-loader/internal/application"
	"github.com/DanielPopoola/campaign-loader/internal/domain"
	"github.com/spf13/cobra"
)

func newImportCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <batch_id>",
		Short: "Subscribe the contacts of an already assigned batch to the campaign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			batchID, err := domain.ParseBatchID(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			a, err := loadApp(opts)
			if err != nil {
				return err
			}
			if err := a.requireCampaign(); err != nil {
				return err
			}
			if err := a.connect(ctx); err != nil {
				return err
			}
			defer a.close()

			importer, err := a.importService()
			if err != nil {
				return err
			}

			report, err := importer.Import(ctx, batchID)
			if err != nil && application.IsCancellation(err) && report != nil {
				a.logger.Warn("import interrupted",
					"batch_id", batchID.String(),
					"succeeded", report.Succeeded,
					"marked_rows", report.MarkedRows,
				)
				return err
			}
			if err != nil {
				a.logger.Error("import failed", "batch_id", batchID.String(), "error", err)
				return err
			}

			a.logger.Info("import complete",
				"batch_id", batchID.String(),
				"succeeded", report.Succeeded,
				"total", report.Total,
			)
			return nil
		},
	}
}
