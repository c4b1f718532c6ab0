package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"whisper/internal/domain"
)

func registerCmd() *cobra.Command {
	var deposit uint64
	cmd := &cobra.Command{
		Use:   "register <pubkey-base64>",
		Short: "Register or rotate your messaging key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := callerID()
			if err != nil {
				return err
			}
			err = api.RegisterKey(cmd.Context(), from, domain.Amount(deposit), args[0], optStr(cmd, "name"))
			if err != nil {
				return err
			}
			fmt.Println("key registered")
			return nil
		},
	}
	cmd.Flags().String("name", "", "display name (replaces any previous name)")
	cmd.Flags().Uint64Var(&deposit, "deposit", uint64(domain.StorageDeposit), "attached deposit in nano units (first registration only)")
	return cmd
}

func faucetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "faucet <account> <amount>",
		Short: "Fund an account on the relay's host",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			if err := api.Faucet(cmd.Context(), domain.AccountID(args[0]), amount); err != nil {
				return err
			}
			fmt.Println("funded")
			return nil
		},
	}
}
