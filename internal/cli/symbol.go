package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSymbolCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "symbol",
		Short: "Print the currency symbol placed in front of amounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := a.formatter()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), f.Symbol())
			return err
		},
	}
}
