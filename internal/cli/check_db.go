package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckDBCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check-db",
		Short: "Verify the database is reachable with the configured credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := loadApp(opts)
			if err != nil {
				return err
			}

			a.logger.Info("checking database connection", "dsn", a.cfg.Database.RedactedConnString())
			if err := a.connect(ctx); err != nil {
				return fmt.Errorf("database check failed: %w", err)
			}
			defer a.close()

			if err := a.db.Ping(ctx); err != nil {
				return fmt.Errorf("database check failed: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "database connection OK")
			return err
		},
	}
}
