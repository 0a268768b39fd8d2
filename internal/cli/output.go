package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"

	"github.com/aretw0/hyperdoc/pkg/domain"
)

// PrintHeader prints a styled section header.
func PrintHeader(text string) {
	p := termenv.ColorProfile()
	styled := termenv.String(text).Foreground(p.Color("#818cf8")).Bold()
	fmt.Println(styled)
}

// NewMarkdownRenderer returns a function that renders markdown for the
// terminal using glamour.
func NewMarkdownRenderer() func(string) (string, error) {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)
	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// DescribeAction renders an action as markdown: its method, target, and a
// table of its fields.
func DescribeAction(action *domain.Action) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## %s %s\n\n", strings.ToUpper(action.Method()), action.Target())
	if desc := action.Description(); desc != "" {
		fmt.Fprintf(&b, "%s\n\n", desc)
	}
	if encoding := action.Encoding(); encoding != "" {
		fmt.Fprintf(&b, "Encoding: `%s`\n\n", encoding)
	}

	fields := action.Fields()
	if len(fields) == 0 {
		b.WriteString("No parameters.\n")
		return b.String()
	}

	b.WriteString("| Parameter | Required | Location |\n")
	b.WriteString("| --- | --- | --- |\n")
	for _, field := range fields {
		required := "no"
		if field.Required {
			required = "yes"
		}
		location := field.Location
		if location == "" {
			location = "default"
		}
		fmt.Fprintf(&b, "| %s | %s | %s |\n", field.Name, required, location)
	}
	return b.String()
}
