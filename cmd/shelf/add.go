package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mmcdole/shelf/internal/achievement"
	"github.com/mmcdole/shelf/internal/collection"
	"github.com/mmcdole/shelf/internal/domain"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <books|movies>",
	Short: "Add an entry",
	Long:  "Add a book or movie to the front of its list. Title and rating (1-10) are required.",
	Example: `  shelf add books --title "Dune" --creator "Frank Herbert" --year 1965 --rating 9
  shelf add movie --title "Alien" --rating 10 --comment "in space"`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

// Flags
var (
	addTitle   string
	addCreator string
	addYear    string
	addComment string
	addRating  string
)

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "Title (required)")
	addCmd.Flags().StringVarP(&addCreator, "creator", "c", "", "Author or director")
	addCmd.Flags().StringVarP(&addYear, "year", "y", "", "Year")
	addCmd.Flags().StringVar(&addComment, "comment", "", "Comment")
	addCmd.Flags().StringVarP(&addRating, "rating", "r", "", "Rating 1-10 (required)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}
	entry := domain.Entry{
		Title:   strings.TrimSpace(addTitle),
		Creator: strings.TrimSpace(addCreator),
		Year:    collection.ParseNumber(addYear),
		Comment: strings.TrimSpace(addComment),
		Rating:  collection.ParseNumber(addRating),
	}
	return addEntry(globalApp, cmd.OutOrStdout(), kind, entry)
}

// addEntry validates and stores entry, then prints any achievements it unlocked
func addEntry(a *app, w io.Writer, kind domain.Kind, entry domain.Entry) error {
	if err := a.store.Validator().CheckForm(entry); err != nil {
		return err
	}

	before := a.tracker.Unlocked(kind)
	if err := a.store.Add(kind, entry); err != nil {
		return fmt.Errorf("failed to add %s: %w", kind.Singular(), err)
	}

	fmt.Fprintf(w, "Added %q to %s\n", entry.Title, strings.ToLower(kind.Label()))
	printUnlocked(w, kind, before, a.tracker.Unlocked(kind))
	return nil
}

// printUnlocked prints the achievements in after that are not in before
func printUnlocked(w io.Writer, kind domain.Kind, before, after domain.UnlockedSet) {
	for _, def := range achievement.Catalog(kind) {
		if after.Contains(def.ID) && !before.Contains(def.ID) {
			fmt.Fprintf(w, "New achievement: %s %s!\n", def.Icon, def.Label)
		}
	}
}
