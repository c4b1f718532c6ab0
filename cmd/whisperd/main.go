// Command whisperd runs the whisper directory and relay over HTTP, backed
// by an in-process host and a JSON state file. Notifications are written
// as EVENT_JSON lines to stdout or a configured log file.
package main

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"whisper/internal/config"
	"whisper/internal/domain"
	"whisper/internal/event"
	"whisper/internal/host"
	"whisper/internal/logging"
	"whisper/internal/server"
	"whisper/internal/store"
	"whisper/internal/whisper"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var cfgPath string

	root := &cobra.Command{
		Use:   "whisperd",
		Short: "Whisper key directory and encrypted-message relay daemon",
	}

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve the relay API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if cfgPath != "" {
				loaded, err := config.Load(cfgPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			log := logging.Init("whisperd", cfg.LogLevel)

			st, err := store.OpenFile(cfg.StateFile)
			if err != nil {
				return err
			}

			var eventOut io.Writer = os.Stdout
			if cfg.EventLog != "" {
				f, err := os.OpenFile(cfg.EventLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
				if err != nil {
					return fmt.Errorf("open event log %s: %w", cfg.EventLog, err)
				}
				defer f.Close()
				eventOut = f
			}

			contract := whisper.New(st, event.NewLogSink(eventOut, log))
			contract.SetTokenTag(cfg.TokenTag)
			h := host.NewMemory()

			// Establish the instance on first boot; later boots reuse the
			// state file and a second Init would be rejected.
			initialized, err := contract.Initialized()
			if err != nil {
				return err
			}
			if !initialized {
				owner := domain.AccountID(cfg.Owner)
				if err := h.Invoke(owner, 0, contract.Init); err != nil {
					return err
				}
				log.Info().Str("owner", cfg.Owner).Msg("instance initialized")
			}

			srv := server.New(contract, h, log)
			log.Info().Str("addr", cfg.ListenAddr).Str("state", cfg.StateFile).Msg("listening")
			return http.ListenAndServe(cfg.ListenAddr, srv.Handler())
		},
	}
	serve.Flags().StringVar(&cfgPath, "config", "", "path to TOML config file")

	root.AddCommand(serve)
	return root.Execute()
}
