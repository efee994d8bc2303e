package main

import (
	"log"

	"github.com/spf13/cobra"

	filemutex "github.com/stryku/file-mutex"
)

var removeCmd = &cobra.Command{
	Use:   "remove <target>",
	Short: "Delete the lock file for a target path",
	Long: `remove deletes <target><suffix>. It does not check for current holders:
a process that already holds the lock keeps its handle, so remove the file
only once all parties are known to have released it.`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(_ *cobra.Command, args []string) error {
	target := args[0]
	if err := cfg.Validate(); err != nil {
		return err
	}

	removed, err := filemutex.Remove(target, filemutex.WithSuffix(cfg.Suffix))
	if err != nil {
		return err
	}
	if removed {
		log.Printf("removed %s", target+cfg.Suffix)
	} else {
		log.Printf("%s does not exist", target+cfg.Suffix)
	}
	return nil
}
