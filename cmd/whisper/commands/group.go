package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"whisper/internal/domain"
)

func groupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group",
		Short: "Create, inspect, and message group chats",
	}
	cmd.AddCommand(groupCreateCmd(), groupSendCmd(), groupGetCmd())
	return cmd
}

func groupCreateCmd() *cobra.Command {
	var deposit uint64
	var memberKeys string
	cmd := &cobra.Command{
		Use:   "create <group-id>",
		Short: "Create a group chat",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := callerID()
			if err != nil {
				return err
			}
			id := domain.GroupID(args[0])
			err = api.CreateGroup(cmd.Context(), from, domain.Amount(deposit), id, optStr(cmd, "name"), memberKeys)
			if err != nil {
				return err
			}
			fmt.Println("group created")
			return nil
		},
	}
	cmd.Flags().String("name", "", "group display name")
	cmd.Flags().StringVar(&memberKeys, "member-keys", "", "JSON blob of per-member encrypted group keys, relayed verbatim")
	cmd.Flags().Uint64Var(&deposit, "deposit", uint64(domain.StorageDeposit), "attached deposit in nano units")
	_ = cmd.MarkFlagRequired("member-keys")
	return cmd
}

func groupSendCmd() *cobra.Command {
	var nonce string
	var keyVersion uint32
	cmd := &cobra.Command{
		Use:   "send <group-id> <body-base64>",
		Short: "Relay an encrypted message to a group",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := callerID()
			if err != nil {
				return err
			}
			id := domain.GroupID(args[0])
			if err := api.SendGroupMessage(cmd.Context(), from, id, args[1], nonce, keyVersion); err != nil {
				return err
			}
			fmt.Println("sent")
			return nil
		},
	}
	cmd.Flags().StringVar(&nonce, "nonce", "", "base64 nonce the body was encrypted with")
	cmd.Flags().Uint32Var(&keyVersion, "key-version", 1, "group key version the body targets")
	_ = cmd.MarkFlagRequired("nonce")
	return cmd
}

func groupGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <group-id>",
		Short: "Show a group's metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, ok, err := api.GetGroup(cmd.Context(), domain.GroupID(args[0]))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("no such group")
				return nil
			}
			return printJSON(g)
		},
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
