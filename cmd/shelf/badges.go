package main

import (
	"fmt"
	"io"

	"github.com/mmcdole/shelf/internal/achievement"
	"github.com/mmcdole/shelf/internal/domain"
	"github.com/spf13/cobra"
)

var badgesCmd = &cobra.Command{
	Use:     "badges [books|movies]",
	Aliases: []string{"achievements"},
	Short:   "Show achievements",
	Args:    cobra.MaximumNArgs(1),
	RunE:    runBadges,
}

func init() {
	rootCmd.AddCommand(badgesCmd)
}

func runBadges(cmd *cobra.Command, args []string) error {
	kinds, err := kindsFromArgs(args)
	if err != nil {
		return err
	}
	printBadges(globalApp, cmd.OutOrStdout(), kinds)
	return nil
}

// printBadges lists every achievement of each kind with its state
func printBadges(a *app, w io.Writer, kinds []domain.Kind) {
	for i, kind := range kinds {
		if i > 0 {
			fmt.Fprintln(w)
		}
		catalog := achievement.Catalog(kind)
		unlocked := a.tracker.Unlocked(kind)

		fmt.Fprintf(w, "%s achievements (%d/%d)\n", kind.Label(), len(unlocked), len(catalog))
		for _, def := range catalog {
			mark := " "
			if unlocked.Contains(def.ID) {
				mark = "✓"
			}
			fmt.Fprintf(w, "  [%s] %s %-18s %s\n", mark, def.Icon, def.Label, def.Description)
		}
	}
}
