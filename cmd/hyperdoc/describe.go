package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/hyperdoc/internal/cli"
	"github.com/aretw0/hyperdoc/pkg/domain"
)

var describeCmd = &cobra.Command{
	Use:   "describe KEY...",
	Short: "Describe a link in the current document",
	Long:  `Shows the method, target, description and parameters of the action at the given key path, rendered for the terminal.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		doc, err := s.current(cmd)
		if err != nil {
			return err
		}

		action, err := domain.LookupAction(doc, parseKeys(args))
		if err != nil {
			return err
		}

		render := cli.NewMarkdownRenderer()
		out, err := render(cli.DescribeAction(action))
		if err != nil {
			// Fall back to the raw markdown on rendering problems.
			out = cli.DescribeAction(action)
		}
		fmt.Println(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
