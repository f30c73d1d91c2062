package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plusiam/bucket-list2/internal/export"
	"github.com/plusiam/bucket-list2/internal/snapshot"
	"github.com/plusiam/bucket-list2/internal/storage"
)

var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Export the saved list as markdown",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	_, store, err := openStore()
	if err != nil {
		return err
	}
	var snap snapshot.Snapshot
	if !store.Get(storage.KeyData, &snap) {
		return fmt.Errorf("no saved list to export")
	}
	path := "bucketlist.md"
	if len(args) == 1 {
		path = args[0]
	}
	if err := export.WriteFile(path, snap); err != nil {
		return fmt.Errorf("exporting: %w", err)
	}
	fmt.Printf("Exported %s\n", path)
	return nil
}
