package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/plusiam/bucket-list2/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default settings",
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path := configPath()
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}
	if err := config.WriteDefault(path); err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	fmt.Printf("Created %s\n", path)
	return nil
}
