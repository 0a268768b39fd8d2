package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current document",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		doc, err := s.current(cmd)
		if err != nil {
			return err
		}
		fmt.Println(doc)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
