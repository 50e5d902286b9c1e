package main

import (
	"fmt"
	"os"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	if err := execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// execute runs the command line and always closes what the command opened
func execute(args []string) (err error) {
	defer func() {
		if cerr := closeApp(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}
