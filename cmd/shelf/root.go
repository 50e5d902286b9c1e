package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/shelf/internal/adapter"
	"github.com/mmcdole/shelf/internal/domain"
	"github.com/mmcdole/shelf/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	configPath string
	globalApp  *app
)

var rootCmd = &cobra.Command{
	Use:   "shelf",
	Short: "Track the books you read and the movies you watch",
	Long: `shelf keeps a local list of books and movies with ratings and comments,
and unlocks achievements as the collection grows.

Run without a subcommand to open the interactive view.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if skipsApp(cmd) {
			return nil
		}

		cfg, err := adapter.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Fall back to null logger if file logging fails
		logger, closer, err := adapter.SetupLogger(&cfg.Logging)
		if err != nil {
			logger = adapter.NullLogger()
		}
		slog.SetDefault(logger)
		logger.Info("starting shelf", "version", Version, "command", cmd.Name())

		a, err := openApp(cfg, logger)
		if err != nil {
			if closer != nil {
				_ = closer.Close()
			}
			return err
		}
		a.logCloser = closer
		globalApp = a
		return nil
	},
	RunE: runRoot,
}

// closeApp releases the storage and log file opened by PersistentPreRunE.
// It runs after Execute returns, so failed commands are cleaned up too.
func closeApp() error {
	if globalApp == nil {
		return nil
	}
	globalApp.logger.Info("shutting down")
	err := globalApp.Close()
	globalApp = nil
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/shelf/config.yaml)")
	rootCmd.SetVersionTemplate("shelf {{.Version}}\n")
}

// skipsApp reports whether cmd runs without opening storage
func skipsApp(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch {
		case c == configCmd:
			return true
		case c.Name() == "help", c.Name() == "completion", c.Name() == cobra.ShellCompRequestCmd:
			return true
		}
	}
	return false
}

func runRoot(cmd *cobra.Command, args []string) error {
	a := globalApp

	// Piped output gets the plain listing instead of the full-screen UI
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return listEntries(a, cmd.OutOrStdout(), domain.Kinds())
	}

	model := tui.NewModel(a.store, a.tracker, a.theme, a.cfg.DefaultKind(), a.logger)

	p := tea.NewProgram(model, tea.WithAltScreen())
	a.announcer.SetOnExpire(tui.ExpiryNotifier(p))
	defer a.announcer.SetOnExpire(nil)

	a.logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		a.logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
