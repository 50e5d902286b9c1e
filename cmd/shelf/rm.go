package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mmcdole/shelf/internal/domain"
	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:     "rm <books|movies> <index>",
	Aliases: []string{"remove", "delete"},
	Short:   "Remove an entry",
	Long:    "Remove the entry at index, as shown by list. Entries below it move up by one.",
	Args:    cobra.ExactArgs(2),
	RunE:    runRm,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(cmd *cobra.Command, args []string) error {
	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}
	index, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid index %q: %w", args[1], err)
	}
	return removeEntry(globalApp, cmd.OutOrStdout(), kind, index)
}

// removeEntry deletes the entry at index
func removeEntry(a *app, w io.Writer, kind domain.Kind, index int) error {
	entry, ok := a.store.Entry(kind, index)
	if !ok {
		return fmt.Errorf("%w: %d (have %d %s)", domain.ErrIndexOutOfRange,
			index, a.store.Len(kind), strings.ToLower(kind.Label()))
	}
	if err := a.store.Remove(kind, index); err != nil {
		return fmt.Errorf("failed to remove %s: %w", kind.Singular(), err)
	}
	fmt.Fprintf(w, "Removed %q from %s\n", entry.Title, strings.ToLower(kind.Label()))
	return nil
}
