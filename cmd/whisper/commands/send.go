package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"whisper/internal/domain"
)

func sendCmd() *cobra.Command {
	var nonce string
	var keyVersion uint32
	cmd := &cobra.Command{
		Use:   "send <to> <body-base64>",
		Short: "Relay an encrypted message to an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := callerID()
			if err != nil {
				return err
			}
			to := domain.AccountID(args[0])
			err = api.SendMessage(cmd.Context(), from, to, args[1], nonce, keyVersion, optStr(cmd, "reply-to"))
			if err != nil {
				return err
			}
			fmt.Println("sent")
			return nil
		},
	}
	cmd.Flags().StringVar(&nonce, "nonce", "", "base64 nonce the body was encrypted with")
	cmd.Flags().Uint32Var(&keyVersion, "key-version", 1, "recipient key version the body targets")
	cmd.Flags().String("reply-to", "", "id of the message this replies to")
	_ = cmd.MarkFlagRequired("nonce")
	return cmd
}

func payCmd() *cobra.Command {
	var nonce string
	var keyVersion uint32
	cmd := &cobra.Command{
		Use:   "pay <to> <amount> <body-base64>",
		Short: "Relay a message with attached value forwarded to the recipient",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := callerID()
			if err != nil {
				return err
			}
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			to := domain.AccountID(args[0])
			err = api.SendPaidMessage(cmd.Context(), from, to, amount, args[2], nonce, keyVersion, optStr(cmd, "reply-to"))
			if err != nil {
				return err
			}
			fmt.Println("sent with payment")
			return nil
		},
	}
	cmd.Flags().StringVar(&nonce, "nonce", "", "base64 nonce the body was encrypted with")
	cmd.Flags().Uint32Var(&keyVersion, "key-version", 1, "recipient key version the body targets")
	cmd.Flags().String("reply-to", "", "id of the message this replies to")
	_ = cmd.MarkFlagRequired("nonce")
	return cmd
}

// parseAmount reads a nano value-unit count.
func parseAmount(s string) (domain.Amount, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad amount %q: %w", s, err)
	}
	return domain.Amount(n), nil
}
