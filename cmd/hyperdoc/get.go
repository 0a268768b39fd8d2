package main

import (
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get URL",
	Short: "Fetch a document and make it the current one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}

		result, err := s.client.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return s.remember(cmd, result)
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
