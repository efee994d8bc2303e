package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	filemutex "github.com/stryku/file-mutex"
	"github.com/stryku/file-mutex/internal/config"
)

var writeCmd = &cobra.Command{
	Use:   "write <target> <tag>",
	Short: "Append tagged lines to a file under the exclusive lock",
	Long: `write takes the exclusive lock on <target> and appends <tag> lines to it,
pausing between lines. Start it from two shells with different tags: the
second blocks until the first finishes, so lines from each run stay together.`,
	Args: cobra.ExactArgs(2),
	RunE: runWrite,
}

func init() {
	writeCmd.Flags().IntVar(&cfg.Count, "count", cfg.Count, "number of lines to write")
	writeCmd.Flags().DurationVar(&cfg.Interval, "interval", cfg.Interval, "pause between lines")
	rootCmd.AddCommand(writeCmd)
}

func runWrite(_ *cobra.Command, args []string) error {
	target, tag := args[0], args[1]
	if err := config.ValidateTarget(target); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	file, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", target, err)
	}
	defer file.Close()

	mu, err := filemutex.New(target, filemutex.WithSuffix(cfg.Suffix))
	if err != nil {
		return err
	}
	// Close releases the lock on every exit path.
	defer mu.Close()

	log.Printf("waiting for exclusive lock on %s", mu.Path())
	if err := mu.Lock(); err != nil {
		return err
	}

	for i := 0; i < cfg.Count; i++ {
		log.Printf("writing %d %s", i, tag)
		if _, err := fmt.Fprintln(file, tag); err != nil {
			return fmt.Errorf("writing to %s: %w", target, err)
		}
		time.Sleep(cfg.Interval)
	}
	return nil
}
