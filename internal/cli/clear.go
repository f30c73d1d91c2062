package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plusiam/bucket-list2/internal/history"
	"github.com/plusiam/bucket-list2/internal/storage"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the saved list, history and onboarding state",
	RunE:  runClear,
}

func init() {
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, args []string) error {
	_, store, err := openStore()
	if err != nil {
		return err
	}
	history.New(store).Clear()
	store.Remove(storage.KeyData)
	store.Remove(storage.KeyOnboarding)
	fmt.Println("Saved data cleared.")
	return nil
}
