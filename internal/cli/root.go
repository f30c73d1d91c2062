package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/plusiam/bucket-list2/internal/config"
	"github.com/plusiam/bucket-list2/internal/history"
	"github.com/plusiam/bucket-list2/internal/snapshot"
	"github.com/plusiam/bucket-list2/internal/storage"
	"github.com/plusiam/bucket-list2/internal/tui"
)

var (
	flagConfig  string
	flagDataDir string
)

var rootCmd = &cobra.Command{
	Use:          "bucketlist",
	Short:        "Create, customize and keep a bucket list from the terminal",
	RunE:         runWizard,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "override the data directory")
}

func Execute() error {
	return rootCmd.Execute()
}

func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	return config.DefaultPath()
}

func openStore() (config.Config, *storage.SafeStore, error) {
	cfg, err := config.Load(configPath())
	if err != nil {
		return cfg, nil, err
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	return cfg, storage.New(cfg.DataDir, newLogger(cfg.DataDir)), nil
}

// newLogger writes structured logs to a file in the data dir; the
// terminal belongs to the TUI. Logging is best effort.
func newLogger(dataDir string) *slog.Logger {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	f, err := os.OpenFile(filepath.Join(dataDir, "bucketlist.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return slog.New(slog.NewJSONHandler(f, nil))
}

func runWizard(cmd *cobra.Command, args []string) error {
	cfg, store, err := openStore()
	if err != nil {
		return err
	}

	memoryOnly := !store.IsAvailable()

	state := snapshot.DefaultState()
	var saved snapshot.Snapshot
	if store.Get(storage.KeyData, &saved) {
		snapshot.Restore(&state, saved)
	} else if cfg.Theme != state.Customization.Theme {
		snapshot.ApplyTheme(&state.Customization, cfg.Theme)
	}

	hist := history.New(store)
	hist.Load()

	model := tui.NewModel(state, store, hist, time.Duration(cfg.DebounceMs)*time.Millisecond, memoryOnly)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running wizard: %w", err)
	}
	return nil
}
