package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"whisper/internal/crypto"
)

func keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate an X25519 key pair for registration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			priv, pub, err := crypto.GenerateX25519()
			if err != nil {
				return err
			}
			// The relay only ever sees the public half; keep the private
			// key with whatever the messages are encrypted by.
			fmt.Printf("public key:  %s\n", crypto.EncodeKey(pub[:]))
			fmt.Printf("private key: %s\n", crypto.EncodeKey(priv[:]))
			fmt.Printf("fingerprint: %s\n", crypto.Fingerprint(pub[:]))
			return nil
		},
	}
}
