package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/hyperdoc"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of hyperdoc",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("hyperdoc version %s\n", strings.TrimSpace(hyperdoc.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
