package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/hyperdoc"
)

var actionCmd = &cobra.Command{
	Use:   "action KEY...",
	Short: "Follow a link in the current document",
	Long: `Resolves the action at the given key path in the current document and
dispatches it. Integer keys index into arrays.

Parameters are given as --param name=value. Values parse as JSON when
possible (numbers, booleans, structures) and fall back to plain strings.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		doc, err := s.current(cmd)
		if err != nil {
			return err
		}

		rawParams, _ := cmd.Flags().GetStringArray("param")
		params, err := parseParams(rawParams)
		if err != nil {
			return err
		}

		var overrides []hyperdoc.ActionOverride
		if method, _ := cmd.Flags().GetString("method"); method != "" {
			overrides = append(overrides, hyperdoc.OverrideMethod(method))
		}
		if encoding, _ := cmd.Flags().GetString("encoding"); encoding != "" {
			overrides = append(overrides, hyperdoc.OverrideEncoding(encoding))
		}

		result, err := s.client.Action(cmd.Context(), doc, parseKeys(args), params, overrides...)
		if err != nil {
			return err
		}
		return s.remember(cmd, result)
	},
}

func init() {
	rootCmd.AddCommand(actionCmd)

	actionCmd.Flags().StringArrayP("param", "p", nil, "Action parameter as name=value (repeatable)")
	actionCmd.Flags().String("method", "", "Override the link's method")
	actionCmd.Flags().String("encoding", "", "Override the link's request encoding")
}

// parseKeys turns command arguments into a key path. Arguments that read as
// integers become array indexes.
func parseKeys(args []string) []any {
	keys := make([]any, 0, len(args))
	for _, arg := range args {
		if n, err := strconv.Atoi(arg); err == nil {
			keys = append(keys, n)
		} else {
			keys = append(keys, arg)
		}
	}
	return keys
}

func parseParams(raw []string) (hyperdoc.Params, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	params := hyperdoc.Params{}
	for _, pair := range raw {
		name, value, found := strings.Cut(pair, "=")
		if !found || name == "" {
			return nil, fmt.Errorf("invalid --param %q (expected name=value)", pair)
		}
		var parsed any
		if err := json.Unmarshal([]byte(value), &parsed); err == nil {
			params[name] = parsed
		} else {
			params[name] = value
		}
	}
	return params, nil
}
