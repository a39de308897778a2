package cli

import (
	"github.com/spf13/cobra"
)

func newProcessCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "process",
		Short: "Assign offer codes to pending sales and import the batch into the campaign",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
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

			pipeline, err := a.pipelineService()
			if err != nil {
				return err
			}

			a.logger.Info("--- Starting Full Processing Pipeline ---")
			result, err := pipeline.Run(ctx)
			if err != nil {
				a.logger.Error("pipeline failed", "run_id", result.RunID, "error", err)
				return err
			}

			a.logger.Info("--- Pipeline Finished ---",
				"run_id", result.RunID,
				"batch_id", result.BatchID.String(),
				"pending_sales", result.PendingSales,
				"updated_rows", result.UpdatedRows,
			)
			return nil
		},
	}
}
