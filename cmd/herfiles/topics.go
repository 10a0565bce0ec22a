package main

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/herfiles/herfiles/pkg/errors"
)

//go:embed docs/*.md
var topicsFS embed.FS

var topicsCmd = &cobra.Command{
	Use:   "topics [topic]",
	Short: "Show help topics",
	Long:  `Without an argument, lists the available help topics. With one, renders it.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			names, err := topicNames()
			if err != nil {
				return err
			}
			fmt.Println("Available topics:")
			for _, name := range names {
				fmt.Printf("  %s\n", name)
			}
			return nil
		}

		content, err := topicsFS.ReadFile("docs/" + args[0] + ".md")
		if err != nil {
			return errors.Newf(errors.ErrNotFound, "unknown topic %q", args[0])
		}

		fmt.Print(renderMarkdown(string(content)))
		return nil
	},
}

func topicNames() ([]string, error) {
	entries, err := topicsFS.ReadDir("docs")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".md"))
	}
	sort.Strings(names)
	return names, nil
}

// renderMarkdown converts markdown to terminal output, falling back to
// the plain text when rendering fails.
func renderMarkdown(content string) string {
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
