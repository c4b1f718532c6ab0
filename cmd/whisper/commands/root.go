package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"whisper/internal/client"
	"whisper/internal/domain"
)

var (
	relayURL string
	caller   string
	api      *client.Client
)

// Execute runs the whisper CLI.
func Execute() error {
	root := &cobra.Command{
		Use:   "whisper",
		Short: "Client for the whisper key directory and message relay",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			api = client.New(relayURL)
		},
	}

	root.PersistentFlags().StringVar(&relayURL, "relay", "http://127.0.0.1:8551", "relay base URL")
	root.PersistentFlags().StringVar(&caller, "as", "", "calling account id")

	root.AddCommand(
		keygenCmd(),
		faucetCmd(),
		registerCmd(),
		sendCmd(),
		payCmd(),
		groupCmd(),
		profileCmd(),
		statsCmd(),
	)
	return root.Execute()
}

// callerID resolves the --as flag; most commands need an acting account.
func callerID() (domain.AccountID, error) {
	if caller == "" {
		return "", fmt.Errorf("calling account required (--as)")
	}
	return domain.AccountID(caller), nil
}

// optStr returns a string flag as a pointer, nil when the flag was not
// given. The relay treats absent and empty optional fields differently on
// the wire.
func optStr(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}
