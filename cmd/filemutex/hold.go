package main

import (
	"log"
	"time"

	"github.com/spf13/cobra"

	filemutex "github.com/stryku/file-mutex"
	"github.com/stryku/file-mutex/internal/config"
)

var holdCmd = &cobra.Command{
	Use:   "hold <target>",
	Short: "Acquire the lock and hold it for a duration",
	Long: `hold acquires the lock on <target> and sleeps while holding it. Use
--shared for sharable (reader) ownership: any number of shared holders may
overlap, while an exclusive holder excludes everyone.`,
	Args: cobra.ExactArgs(1),
	RunE: runHold,
}

func init() {
	holdCmd.Flags().BoolVar(&cfg.Shared, "shared", false, "acquire sharable (reader) ownership")
	holdCmd.Flags().DurationVar(&cfg.Timeout, "timeout", 0, "max wait for the lock (0 waits forever)")
	holdCmd.Flags().DurationVar(&cfg.HoldFor, "for", cfg.HoldFor, "how long to hold the lock")
	rootCmd.AddCommand(holdCmd)
}

func runHold(_ *cobra.Command, args []string) error {
	target := args[0]
	if err := config.ValidateTarget(target); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	mu, err := filemutex.New(target, filemutex.WithSuffix(cfg.Suffix))
	if err != nil {
		return err
	}
	defer mu.Close()

	mode := "exclusive"
	if cfg.Shared {
		mode = "sharable"
	}
	log.Printf("waiting for %s lock on %s", mode, mu.Path())

	if cfg.Timeout > 0 {
		deadline := time.Now().Add(cfg.Timeout)
		var locked bool
		if cfg.Shared {
			locked, err = mu.TryRLockUntil(deadline)
		} else {
			locked, err = mu.TryLockUntil(deadline)
		}
		if err != nil {
			return err
		}
		if !locked {
			return filemutex.ErrLockTimeout
		}
	} else {
		if cfg.Shared {
			err = mu.RLock()
		} else {
			err = mu.Lock()
		}
		if err != nil {
			return err
		}
	}

	log.Printf("holding %s lock on %s for %s", mode, mu.Path(), cfg.HoldFor)
	time.Sleep(cfg.HoldFor)

	if cfg.Shared {
		return mu.RUnlock()
	}
	return mu.Unlock()
}
