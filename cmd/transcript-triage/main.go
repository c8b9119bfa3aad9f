package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/transcript-triage/internal/config"
	"github.com/nguyentantai21042004/transcript-triage/internal/logger"
	"github.com/nguyentantai21042004/transcript-triage/internal/scanner"
	"github.com/nguyentantai21042004/transcript-triage/internal/watcher"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		configPath string
		folder     string
		threshold  float64
		logPath    string
		apply      bool
		watch      bool
	)

	cmd := &cobra.Command{
		Use:   "transcript-triage",
		Short: "Score transcript quality and strip AI chatter",
		Long: `transcript-triage scans a folder of .txt transcripts, scores each file's
trustworthiness (100 = no placeholders, no repetition), strips conversational
wrappers a generative transcription process may have added, and reports the
results as JSON on stdout.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			// CLI flags override file values.
			flags := cmd.Flags()
			if flags.Changed("folder") {
				cfg.Paths.Folder = folder
			}
			if flags.Changed("threshold") {
				t := threshold
				cfg.Scan.Threshold = &t
			}
			if flags.Changed("log") {
				cfg.Paths.Log = logPath
			}
			if flags.Changed("apply") {
				cfg.Scan.Apply = apply
			}
			if flags.Changed("watch") {
				cfg.Scan.Watch = watch
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			return run(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	cmd.Flags().StringVarP(&folder, "folder", "f", "", "Directory containing .txt transcripts to scan")
	cmd.Flags().Float64VarP(&threshold, "threshold", "t", 0, "Confidence threshold; entries at or below it populate \"over\"")
	cmd.Flags().StringVar(&logPath, "log", "", "Path to append removal logs (with --apply)")
	cmd.Flags().BoolVar(&apply, "apply", false, "Rewrite files in place with chatter removed")
	cmd.Flags().BoolVar(&watch, "watch", false, "Keep running and rescan when transcripts change")

	return cmd
}

func run(ctx context.Context, cfg *config.Config) error {
	log := logger.New(cfg.Logging.Level)
	scan := scanner.New(cfg, log)

	rescan := func(ctx context.Context) error {
		result, err := scan.Scan(ctx, cfg.Paths.Folder)
		if err != nil {
			writeJSON(map[string]string{"error": err.Error()})
			return err
		}
		writeJSON(result)
		return nil
	}

	if err := rescan(ctx); err != nil {
		return err
	}
	if !cfg.Scan.Watch {
		return nil
	}

	w, err := watcher.New(cfg.Paths.Folder, rescan, log)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		return err
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
		return err
	}

	cancel()
	return nil
}

func writeJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(v)
}
