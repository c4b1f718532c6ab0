package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"whisper/internal/domain"
)

func profileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile <account>",
		Short: "Show an account's registered key and metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok, err := api.GetProfile(cmd.Context(), domain.AccountID(args[0]))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("no profile registered")
				return nil
			}
			return printJSON(p)
		},
	}
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show directory totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := api.Stats(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(st)
		},
	}
}
