package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/hyperdoc/internal/cli"
)

// bookmarkPrefix namespaces bookmark keys away from the history entry.
const bookmarkPrefix = "bookmark:"

var bookmarksCmd = &cobra.Command{
	Use:   "bookmarks",
	Short: "Manage named bookmarks of fetched documents",
}

var bookmarksAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Bookmark the current document under a name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		doc, err := s.current(cmd)
		if err != nil {
			return err
		}
		if err := s.store.Save(cmd.Context(), bookmarkPrefix+args[0], doc); err != nil {
			return err
		}
		fmt.Printf("Bookmarked %q as %s\n", doc.Origin(), args[0])
		return nil
	},
}

var bookmarksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bookmarks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		keys, err := s.store.List(cmd.Context())
		if err != nil {
			return err
		}
		cli.PrintHeader("Bookmarks")
		for _, key := range keys {
			name, ok := strings.CutPrefix(key, bookmarkPrefix)
			if !ok {
				continue
			}
			doc, err := s.store.Load(cmd.Context(), key)
			if err != nil {
				continue
			}
			fmt.Printf("%s\t%s\n", name, doc.Origin())
		}
		return nil
	},
}

var bookmarksRemoveCmd = &cobra.Command{
	Use:   "remove NAME",
	Short: "Remove a bookmark",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		return s.store.Delete(cmd.Context(), bookmarkPrefix+args[0])
	},
}

var bookmarksOpenCmd = &cobra.Command{
	Use:   "open NAME",
	Short: "Make a bookmarked document the current one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		doc, err := s.store.Load(cmd.Context(), bookmarkPrefix+args[0])
		if err != nil {
			return err
		}
		return s.remember(cmd, doc)
	},
}

func init() {
	rootCmd.AddCommand(bookmarksCmd)
	bookmarksCmd.AddCommand(bookmarksAddCmd)
	bookmarksCmd.AddCommand(bookmarksListCmd)
	bookmarksCmd.AddCommand(bookmarksRemoveCmd)
	bookmarksCmd.AddCommand(bookmarksOpenCmd)
}
