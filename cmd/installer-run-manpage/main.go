package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/lgulich/dotfiles/internal/cli"
	"github.com/lgulich/dotfiles/internal/version"
)

func main() {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "INSTALLER-RUN",
		Section: "1",
		Source:  "installer-run " + version.Version,
		Manual:  "installer-run manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
