package main

import (
	"fmt"
	"os"

	"github.com/mmcdole/shelf/internal/adapter"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	RunE:  runConfigShow,
}

var configForce bool

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		path = adapter.DefaultConfigFile()
	}
	if !configForce && fileExists(path) {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := adapter.SaveConfig(adapter.DefaultConfig(), path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := adapter.LoadConfig(configPath)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	storage := cfg.Storage.Path
	if storage == "" {
		storage = "(memory only)"
	}
	fmt.Fprintf(w, "storage.path:        %s\n", storage)
	fmt.Fprintf(w, "ui.default_tab:      %s\n", cfg.DefaultKind())
	fmt.Fprintf(w, "ui.announce_seconds: %g\n", cfg.UI.AnnounceSeconds)
	fmt.Fprintf(w, "logging.file:        %s\n", cfg.Logging.File)
	fmt.Fprintf(w, "logging.level:       %s\n", cfg.Logging.Level)
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
