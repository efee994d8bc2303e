package main

import (
	"github.com/spf13/cobra"

	"github.com/stryku/file-mutex/internal/config"
)

var cfg = config.Default()

var rootCmd = &cobra.Command{
	Use:   "filemutex",
	Short: "Exercise a file-based mutex from the command line",
	Long: `filemutex demonstrates cross-process file locking. Run the same command
from several shells against one target path to watch exclusive and sharable
locking interleave. The lock file lives next to the target at <target><suffix>.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfg.Suffix, "suffix", cfg.Suffix, "suffix appended to the target path to name the lock file")
}
