package cli

import (
	"fmt"
	"strconv"

	"github.com/DanielPopoola/campaign-loader/internal/domain"
	"github.com/spf13/cobra"
)

func newCodesCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "codes <n>",
		Short: "Print n offer codes not yet used by any sale",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseCodeCount(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			a, err := loadApp(opts)
			if err != nil {
				return err
			}
			if err := a.connect(ctx); err != nil {
				return err
			}
			defer a.close()

			codes, err := a.offerCodeService().Generate(ctx, n)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, code := range codes {
				if _, err := fmt.Fprintln(out, code); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func parseCodeCount(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, domain.NewInvalidCodeCountError(raw)
	}
	return n, nil
}
