package cli

import (
	"context"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configFile string
	logLevel   string
}

// NewRootCommand builds the loader command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "loader",
		Short: "Assigns offer codes to new sales and loads their customers into the marketing campaign",
		Long: `loader picks up unprocessed sales, stamps each invoice with a unique offer code
and subscribes the customers to the marketing campaign list, staying within the
campaign API's rate limits.

Use the subcommands to run the whole pipeline or a single stage.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "optional YAML config file; LOADER_* environment variables take precedence")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override the configured log level (debug, info, warn, error)")

	root.AddCommand(
		newProcessCommand(opts),
		newImportCommand(opts),
		newCodesCommand(opts),
		newCheckDBCommand(opts),
	)

	return root
}

// Execute runs the command tree until it finishes or ctx is cancelled.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}
