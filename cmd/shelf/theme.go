package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mmcdole/shelf/internal/theme"
	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:       "theme [dark|light|toggle]",
	Short:     "Show or change the display theme",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{theme.Dark, theme.Light, "toggle"},
	RunE:      runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

func runTheme(cmd *cobra.Command, args []string) error {
	action := ""
	if len(args) == 1 {
		action = args[0]
	}
	return setTheme(globalApp, cmd.OutOrStdout(), action)
}

// setTheme applies action ("" only prints the current theme)
func setTheme(a *app, w io.Writer, action string) error {
	var err error
	switch strings.ToLower(action) {
	case "":
	case theme.Dark:
		err = a.theme.Set(true)
	case theme.Light:
		err = a.theme.Set(false)
	case "toggle":
		_, err = a.theme.Toggle()
	default:
		return fmt.Errorf("unknown theme %q (want dark, light or toggle)", action)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(w, a.theme.Name())
	return nil
}
