package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mmcdole/shelf/internal/domain"
	"github.com/mmcdole/shelf/internal/tui/components"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [books|movies]",
	Short: "List entries",
	Long:  "Print entries newest first with the index used by rm. Lists both kinds when none is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	kinds, err := kindsFromArgs(args)
	if err != nil {
		return err
	}
	return listEntries(globalApp, cmd.OutOrStdout(), kinds)
}

// kindsFromArgs parses an optional kind argument; none means both
func kindsFromArgs(args []string) ([]domain.Kind, error) {
	if len(args) == 0 {
		return domain.Kinds(), nil
	}
	kind, err := parseKind(args[0])
	if err != nil {
		return nil, err
	}
	return []domain.Kind{kind}, nil
}

func parseKind(s string) (domain.Kind, error) {
	kind, ok := domain.ParseKind(s)
	if !ok {
		return "", fmt.Errorf("%w: %q (want books or movies)", domain.ErrUnknownKind, s)
	}
	return kind, nil
}

// listEntries prints the entries of each kind
func listEntries(a *app, w io.Writer, kinds []domain.Kind) error {
	for i, kind := range kinds {
		if i > 0 {
			fmt.Fprintln(w)
		}
		entries := a.store.Entries(kind)
		fmt.Fprintf(w, "%s (%d)\n", kind.Label(), len(entries))
		if len(entries) == 0 {
			fmt.Fprintf(w, "  No %s yet\n", strings.ToLower(kind.Label()))
			continue
		}
		for idx, e := range entries {
			fmt.Fprintln(w, formatEntry(kind, idx, e))
		}
	}
	return nil
}

// formatEntry renders one entry as a line plus an optional comment line
func formatEntry(kind domain.Kind, idx int, e domain.Entry) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%3d. %s", idx, e.Title)
	if e.Year > 0 {
		fmt.Fprintf(&b, " (%d)", e.Year)
	}

	b.WriteString("  " + components.CreatorText(kind, e.Creator))

	if e.Rating > 0 {
		b.WriteString("  " + components.RatingText(e.Rating))
	}
	if e.Comment != "" {
		fmt.Fprintf(&b, "\n     %s", e.Comment)
	}
	return b.String()
}
