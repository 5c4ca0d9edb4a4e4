package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/uglygus/sambactl/internal/cli/output"
	"github.com/uglygus/sambactl/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the configuration file for share changes",
	Long: `Watch the Samba configuration file and print the share list
whenever it changes.

Useful while editing smb.conf by hand or while another tool is making
changes. Press Ctrl+C to stop.`,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(cfg.Samba.ConfPath); err != nil {
		return fmt.Errorf("failed to watch %s: %w", cfg.Samba.ConfPath, err)
	}

	// Set up signal handling for graceful exit
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		cancel()
	}()

	reg, _ := buildRegistry(cfg)

	printShares := func() {
		shares, err := reg.List(ctx)
		if err != nil {
			logger.Error("failed to list shares", "error", err)
			return
		}
		if len(shares) == 0 {
			fmt.Println("No shares found.")
			return
		}
		if err := output.PrintTable(os.Stdout, ShareList(shares)); err != nil {
			logger.Error("failed to render share table", "error", err)
		}
	}

	fmt.Fprintf(os.Stderr, "Watching %s (Ctrl+C to stop)...\n", cfg.Samba.ConfPath)
	printShares()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				printShares()
			}

			// Atomic replaces remove the watched path; re-add it.
			if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				_ = watcher.Add(cfg.Samba.ConfPath)
				printShares()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("file watcher error", "error", err)
		}
	}
}
